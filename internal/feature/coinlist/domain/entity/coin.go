// Package entity defines the domain models for the coinlist feature.
package entity

// Coin represents one selectable cryptocurrency.
// The set of coins is fixed at build time; there is no persistence behind it.
type Coin struct {
	ID      string // CoinGecko coin id used in API paths (e.g., "bitcoin")
	Name    string // Display name shown in the selector (e.g., "Bitcoin")
	SortKey int    // Display ordering in the selector, ascending
}
