// Package api implements the client for the remote job-board REST API.
// Every operation maps to exactly one HTTP request; failures are normalized
// into RequestFailure regardless of whether the transport or the server
// rejected the call.
package api

import (
	"errors"
	"fmt"
	"net/http"
)

// RequestFailure represents a failed API operation. StatusCode is 0 when the
// request never reached the server (transport failure); otherwise it carries
// the HTTP status and, when the server supplied one, its message.
type RequestFailure struct {
	Op         string
	StatusCode int
	Message    string
	Cause      error
}

func (e *RequestFailure) Error() string {
	switch {
	case e.StatusCode == 0 && e.Cause != nil:
		return fmt.Sprintf("%s: request failed: %v", e.Op, e.Cause)
	case e.Message != "":
		return fmt.Sprintf("%s: server returned %d: %s", e.Op, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("%s: server returned %d", e.Op, e.StatusCode)
	}
}

func (e *RequestFailure) Unwrap() error {
	return e.Cause
}

// Transport reports whether the request never reached the server.
func (e *RequestFailure) Transport() bool {
	return e.StatusCode == 0
}

// AuthRejected reports whether the server refused the credentials or token.
func (e *RequestFailure) AuthRejected() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// AsRequestFailure unwraps err into a *RequestFailure if one is present.
func AsRequestFailure(err error) (*RequestFailure, bool) {
	var rf *RequestFailure
	if errors.As(err, &rf) {
		return rf, true
	}
	return nil, false
}
