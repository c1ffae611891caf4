// Package entity defines the domain models for the prices feature.
package entity

import "time"

// PricePoint is a single observation of a coin's price in the quote currency.
// Time is derived from the upstream epoch-millisecond timestamp and is always UTC;
// the conversion is exact, so p.Time.UnixMilli() recovers the original value.
type PricePoint struct {
	Time  time.Time // Observation time (UTC)
	Price float64   // Price in the quote currency (e.g., USD)
}

// PriceSeries is the price history of one coin over a fixed lookback window.
// Points keep the order the upstream API returned them in (chronologically
// ascending); the series is never re-sorted.
type PriceSeries struct {
	CoinID     string       // CoinGecko coin id (e.g., "bitcoin")
	VsCurrency string       // Quote currency (e.g., "usd")
	Days       int          // Lookback window length in days
	Points     []PricePoint // Observations, oldest first
}

// Tail returns the chronologically last min(n, len) points of the series.
// It returns nil for n <= 0 and the full slice when n exceeds the length.
func (s PriceSeries) Tail(n int) []PricePoint {
	if n <= 0 || len(s.Points) == 0 {
		return nil
	}
	if n >= len(s.Points) {
		return s.Points
	}
	return s.Points[len(s.Points)-n:]
}
