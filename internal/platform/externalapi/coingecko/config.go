// Package coingecko provides a client for the CoinGecko market data API.
package coingecko

import "time"

// DefaultBaseURL is the public CoinGecko API v3 endpoint.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// Config holds configuration for the CoinGecko API client.
// The public endpoint needs no API key.
type Config struct {
	BaseURL string        // Base URL for the API (e.g., "https://api.coingecko.com/api/v3")
	Timeout time.Duration // HTTP request timeout
}
