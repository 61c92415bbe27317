package prc

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrServerLinkNotFound is returned when the key store has no key for a server id.
	ErrServerLinkNotFound = errors.New("API Key not found")
	// ErrClientClosed is wrapped in a TransportError when a closed client is used.
	ErrClientClosed = errors.New("prc client is closed")
)

const detailUnexpected = "Unexpected Error"

var statusDetails = map[int]string{
	http.StatusTooManyRequests:     "Rate limited",
	http.StatusBadRequest:          "Bad Request",
	http.StatusForbidden:           "Unauthorized",
	http.StatusUnprocessableEntity: "The private server has no players in it",
	http.StatusInternalServerError: "Problem communicating with Roblox",
}

// ResponseFailure is a non-200 answer from the upstream API.
// Data holds the decoded error envelope as returned by the API.
type ResponseFailure struct {
	Data   json.RawMessage
	Detail string
	Code   int
}

func (e *ResponseFailure) Error() string {
	if e.Code == 0 {
		return fmt.Sprintf("prc: %s", e.Detail)
	}
	return fmt.Sprintf("prc: %s (status %d)", e.Detail, e.Code)
}

func newResponseFailure(statusCode int, data json.RawMessage) *ResponseFailure {
	detail, ok := statusDetails[statusCode]
	if !ok {
		detail = detailUnexpected
	}
	return &ResponseFailure{
		Data:   data,
		Detail: detail,
		Code:   statusCode,
	}
}

// TransportError covers failures that are not a classified upstream status:
// connection errors, timeouts, undecodable bodies and use after Close.
type TransportError struct {
	Method     string
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("prc: %s %s (status %d): %v", e.Method, e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("prc: %s %s: %v", e.Method, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsRateLimited reports whether err is a ResponseFailure with status 429.
func IsRateLimited(err error) bool {
	var failure *ResponseFailure
	return errors.As(err, &failure) && failure.Code == http.StatusTooManyRequests
}
