package upstream

import (
	"fmt"
)

// FetchError is a transport failure or a non-2xx answer from an upstream feed.
// StatusCode is zero when no response was received.
type FetchError struct {
	Feed       string
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch %s. Status: %d", e.Feed, e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.Feed, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError is a body that could not be decoded.
type ParseError struct {
	Feed string
	URL  string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Feed, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
