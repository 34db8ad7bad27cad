package inference

import (
	"errors"
	"fmt"
)

// ErrPayloadTooLarge is returned when the upstream model rejects the input
// with HTTP 413.
var ErrPayloadTooLarge = errors.New("upstream rejected input: payload too large")

// TransportError is a network-level failure or unexpected HTTP status from
// the upstream API.
type TransportError struct {
	StatusCode int // zero when the request never completed
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream request failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("upstream request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ShapeError reports an upstream response body that is missing the expected
// fields.
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string {
	return "invalid response format from API: " + e.Reason
}
