package adapter

import (
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-soap-gateway/internal/logger"
)

// restyLogger routes resty's internal messages into the gateway logger.
type restyLogger struct {
	logger *logger.Logger
}

var _ resty.Logger = (*restyLogger)(nil)

func (l *restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

func (l *restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

func (l *restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}
