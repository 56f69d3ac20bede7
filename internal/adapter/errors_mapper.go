package adapter

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a completed response into an error when its status
// is not 2xx. The upstream body is left out of the error; it is not ours to
// echo back to callers.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return fmt.Errorf("%w: status code %d", ErrUpstreamStatus, resp.StatusCode())
}
