package adapter

import (
	"context"
	"errors"
)

var (
	// ErrTransport covers network failures, timeouts and non-2xx statuses.
	ErrTransport = errors.New("model request failed")
	// ErrParse means the response body was not JSON.
	ErrParse = errors.New("failed to parse model response")
	// ErrShape means the body was JSON but candidates[0] could not be walked.
	ErrShape = errors.New("unexpected model response shape")
)

// Kind returns a short label for err, used for metrics and logs.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrParse):
		return "parse"
	case errors.Is(err, ErrShape):
		return "shape"
	default:
		return "other"
	}
}
