// Package distributor provides best-effort component search against the
// Mouser and Digikey catalogs, with rate limiting, bounded retries, and
// deterministic fallback data so a lookup always completes with a result.
package distributor

import "fmt"

// RateLimitedError reports that a distributor kept answering 429 after the
// retry budget was exhausted.
type RateLimitedError struct {
	URL      string
	Attempts int
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited after %d attempts: %s", e.Attempts, e.URL)
}

// RequestError reports a transport or HTTP failure that survived retries.
type RequestError struct {
	URL     string
	Message string
	Cause   error
}

func (e *RequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("request error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("request error for %s: %s", e.URL, e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}
