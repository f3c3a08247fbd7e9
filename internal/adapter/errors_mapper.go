package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and a [*RemoteError] otherwise.
func mapHTTPError(op string, resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	return &RemoteError{
		Op:     op,
		Status: status,
		Body:   decodeErrorBody(resp.Body()),
		Err:    sentinelForStatus(status),
	}
}

func sentinelForStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusForbidden:
		return ErrForbidden
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	case status >= http.StatusInternalServerError:
		return ErrServerError
	default:
		return ErrUnexpectedStatus
	}
}

// decodeErrorBody returns the JSON-decoded body when possible, the trimmed
// text otherwise, and nil for an empty body.
func decodeErrorBody(body []byte) any {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return nil
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err == nil {
		return decoded
	}
	return text
}
