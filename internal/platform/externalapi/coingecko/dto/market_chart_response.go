// Package dto defines data transfer objects for the CoinGecko API responses.
package dto

// MarketChartResponse represents the JSON response from the CoinGecko
// /coins/{id}/market_chart endpoint. Each element of Prices is expected to be
// a two-element [epoch_milliseconds, price] pair. Prices stays nil when the
// field is absent from the payload, which callers treat as malformed.
type MarketChartResponse struct {
	Prices [][]float64 `json:"prices"`
}
