package providers

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound means the source does not have the requested dataset. It is never retried.
	ErrNotFound = errors.New("dataset not found")
	// ErrUnknownDataset is returned for names outside Files().
	ErrUnknownDataset = errors.New("unknown dataset")
)

// RateLimitError captures rate limit responses from remote sources.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// DecodeError reports a dataset that was fetched but could not be parsed.
type DecodeError struct {
	File string
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("decode %s line %d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.File, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
