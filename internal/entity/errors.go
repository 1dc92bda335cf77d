package entity

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Every failure of a settlement run belongs to exactly one of these classes.
var (
	ErrNetwork  = errors.New("network error")
	ErrHTTP     = errors.New("http error")
	ErrParse    = errors.New("parse error")
	ErrNotFound = errors.New("not found")
)

// HTTPError is returned when the remote side answers with a non-success status code.
type HTTPError struct {
	Status     int
	StatusText string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: %d %s", ErrHTTP, e.Status, e.StatusText)
}

func (e *HTTPError) Is(target error) bool {
	return target == ErrHTTP
}

// NetworkError marks err as a transport failure, keeping the original cause.
func NetworkError(err error) error {
	return errors.Mark(errors.Wrap(err, ErrNetwork.Error()), ErrNetwork)
}

// ParseError marks err as a payload decoding or shape failure.
func ParseError(err error) error {
	return errors.Mark(errors.Wrap(err, ErrParse.Error()), ErrParse)
}

// NotFoundError marks err as a request for a resource the remote side does not know.
func NotFoundError(err error) error {
	return errors.Mark(errors.Wrap(err, ErrNotFound.Error()), ErrNotFound)
}

// Kind names the error class of err, or returns an empty string for errors
// outside of the settlement taxonomy.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "NotFoundError"
	case errors.Is(err, ErrHTTP):
		return "HttpError"
	case errors.Is(err, ErrParse):
		return "ParseError"
	case errors.Is(err, ErrNetwork):
		return "NetworkError"
	default:
		return ""
	}
}

// Is reports whether err belongs to the class of target. It understands both
// plain %w wrapping and marks applied by NetworkError and ParseError.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// AsHTTPError extracts the status details of an HttpError.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}

	return nil, false
}
