// Package clients provides the instrumented HTTP client quotectl uses to
// reach the quotation API.
package clients

import "errors"

// Transport failures. The acl package translates these into domain errors.
var (
	// ErrCircuitOpen is returned while the breaker blocks requests to an unhealthy API.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last failure once every attempt is used up.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
