// Package domain defines domain-level errors for the prices feature.
package domain

import (
	"errors"
	"fmt"
)

// Domain errors for price series operations.
// These errors represent distinct failure kinds and should be branched on
// with errors.Is / errors.As by upper layers.
var (
	// ErrUnknownCoin indicates that the requested coin id is not part of the
	// supported coin set. The dashboard selector cannot produce such an id,
	// but the JSON API can be called with arbitrary values.
	ErrUnknownCoin = errors.New("unknown coin id")

	// ErrMalformedPayload indicates that the market data API responded with a
	// body that could not be decoded into the expected shape (undecodable
	// JSON, missing prices field, or a pair that is not [timestamp, price]).
	ErrMalformedPayload = errors.New("malformed market data payload")

	// ErrUpstreamUnreachable indicates a transport-level failure before any
	// HTTP response was received (DNS failure, connection refused, timeout).
	// This is deliberately a separate kind from a non-200 response.
	ErrUpstreamUnreachable = errors.New("market data service unreachable")
)

// UpstreamStatusError reports that the market data API answered with a
// non-200 status code. All non-200 codes are treated uniformly.
type UpstreamStatusError struct {
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("market data api returned status %d", e.StatusCode)
}
