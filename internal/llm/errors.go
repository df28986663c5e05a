package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the LLM returned content that does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrAuth indicates the provider rejected the API key. It is never retried.
type ErrAuth struct {
	Status int
	Err    error
}

func (e *ErrAuth) Error() string {
	return fmt.Sprintf("LLM provider rejected credentials (HTTP %d): %v", e.Status, e.Err)
}

func (e *ErrAuth) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// IsInvalidResponse reports whether err means the model answered but the
// answer could not be used.
func IsInvalidResponse(err error) bool {
	var inv *ErrInvalidResponse
	var maxTok *ErrMaxTokensExceeded
	return errors.As(err, &inv) || errors.As(err, &maxTok)
}

// classifyStatus maps the HTTP status carried by an SDK error onto the
// package error types. header may be nil.
func classifyStatus(err error, status int, header http.Header) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	switch {
	case status == http.StatusTooManyRequests:
		return &ErrRateLimit{RetryAfter: retryAfter(header, time.Now()), Err: err}
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &ErrAuth{Status: status, Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}

// retryAfter reads a Retry-After header given either in seconds or as an
// HTTP date. It returns zero when the header is absent or unparsable.
func retryAfter(header http.Header, now time.Time) time.Duration {
	v := header.Get("Retry-After")
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil && t.After(now) {
		return t.Sub(now)
	}
	return 0
}
