package adapter

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by [RemoteError]. Match them with [errors.Is].
var (
	ErrTransport        = errors.New("transport failure")
	ErrMalformedBody    = errors.New("malformed response body")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrRateLimited      = errors.New("rate limited")
	ErrServerError      = errors.New("remote server error")
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// RemoteError describes a failed call to the note service: a network
// failure, a non-2xx response or an undecodable body.
type RemoteError struct {
	// Op is the request line, e.g. "GET /notes".
	Op string

	// Status is the HTTP status code, or 0 when no response was received.
	Status int

	// Body is the decoded JSON error body when the service sent one,
	// the raw text otherwise, or nil.
	Body any

	// Err is one of the sentinel errors of this package, possibly wrapping
	// the underlying transport or decoding error.
	Err error
}

func (e *RemoteError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Op, e.Err)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s: http %d: %v", e.Op, e.Status, e.Err)
	}
	if e.Body != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Body)
	}
	return msg
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
