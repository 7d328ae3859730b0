package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// apiError is the error envelope returned by the RSpace API.
type apiError struct {
	Status   string   `json:"status"`
	HTTPCode int      `json:"httpCode"`
	Message  string   `json:"message"`
	Errors   []string `json:"errors"`
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp.Body())

	switch {
	case code == http.StatusUnauthorized:
		return ErrUnauthorized
	case code == http.StatusForbidden:
		return ErrForbidden
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusTooManyRequests:
		return ErrTooManyRequests
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, detail)
	}

	if detail == "" {
		detail = http.StatusText(code)
	}
	return fmt.Errorf("http %d: %s", code, detail)
}

// errorDetail extracts a human-readable message from the API error envelope,
// falling back to the raw body.
func errorDetail(body []byte) string {
	trimmedBody := strings.TrimSpace(string(body))
	if trimmedBody == "" {
		return ""
	}

	var envelope apiError
	if err := json.Unmarshal(body, &envelope); err == nil {
		if len(envelope.Errors) > 0 {
			return strings.Join(envelope.Errors, "; ")
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return trimmedBody
}
