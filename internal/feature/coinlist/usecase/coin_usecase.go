// Package usecase implements the business logic for coin-list operations.
package usecase

import (
	"context"

	"crypto_tracker/internal/feature/coinlist/domain/entity"
)

// CoinRepository abstracts the backing store for the supported coin set.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CoinRepository interface {
	List(ctx context.Context) ([]entity.Coin, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// CoinUsecase provides business logic for coin-list operations.
type CoinUsecase struct {
	repo CoinRepository
}

// NewCoinUsecase creates a new CoinUsecase with the given repository.
func NewCoinUsecase(r CoinRepository) *CoinUsecase {
	return &CoinUsecase{repo: r}
}

// ListCoins returns all supported coins in selector display order.
func (u *CoinUsecase) ListCoins(ctx context.Context) ([]entity.Coin, error) {
	return u.repo.List(ctx)
}
