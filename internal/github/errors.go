package github

import (
	"errors"
	"fmt"

	gh "github.com/google/go-github/v57/github"
)

// NotFoundError means the subject does not exist or is private.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// RateLimitError covers 403/429 responses: rate limiting or missing
// permissions. Transient, so the retry executor will back off and retry.
type RateLimitError struct {
	StatusCode int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded or forbidden (status %d)", e.StatusCode)
}

func (e *RateLimitError) Transient() bool { return true }

// RequestError is the generic transport failure.
type RequestError struct {
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request failed (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

func (e *RequestError) Transient() bool {
	switch e.StatusCode {
	case 429, 502, 503:
		return true
	}
	return false
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsRateLimited(err error) bool {
	var rl *RateLimitError
	return errors.As(err, &rl)
}

// mapError converts a go-github failure into our taxonomy. resource names
// the thing being fetched so NotFound messages stay useful.
func mapError(resp *gh.Response, err error, resource string) error {
	var rateErr *gh.RateLimitError
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return &RateLimitError{StatusCode: 403}
	}

	if resp != nil {
		switch resp.StatusCode {
		case 404:
			return &NotFoundError{Resource: resource}
		case 403, 429:
			return &RateLimitError{StatusCode: resp.StatusCode}
		default:
			return &RequestError{StatusCode: resp.StatusCode, Err: err}
		}
	}

	return &RequestError{Err: err}
}
