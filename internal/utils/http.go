package utils

import (
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
)

// Response content types used by the gateway.
const (
	ContentTypeJSON = "application/json; charset=utf-8"
	ContentTypeXML  = "application/xml; charset=utf-8"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to [ContentTypeJSON] and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := sonic.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteXML writes a raw XML payload with [ContentTypeXML]. The payload is
// written as is.
func WriteXML(w http.ResponseWriter, payload []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", ContentTypeXML)
	w.WriteHeader(statusCode)

	return w.Write(payload)
}
