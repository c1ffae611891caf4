// Package dto defines data transfer objects for the coinlist HTTP API.
package dto

// CoinItem represents a coin in the API response.
// It contains only the public-facing fields needed by clients.
type CoinItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
