// Package adapters はcoinlistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"crypto_tracker/internal/feature/coinlist/domain/entity"
	"crypto_tracker/internal/feature/coinlist/usecase"
)

// coinStatic はCoinRepositoryインターフェースの固定インメモリ実装です。
// サポートするコインの集合はビルド時に閉じており、永続化層はありません。
type coinStatic struct {
	coins []entity.Coin
}

var _ usecase.CoinRepository = (*coinStatic)(nil)

// NewCoinRepository はサポートされる3コインを保持するcoinStaticリポジトリの
// 新しいインスタンスを生成します。
func NewCoinRepository() *coinStatic {
	return &coinStatic{
		coins: []entity.Coin{
			{ID: "bitcoin", Name: "Bitcoin", SortKey: 1},
			{ID: "ethereum", Name: "Ethereum", SortKey: 2},
			{ID: "dogecoin", Name: "Dogecoin", SortKey: 3},
		},
	}
}

// List はSortKey順にすべてのサポートコインを返します。
// 呼び出し側による変更を防ぐためコピーを返します。
func (r *coinStatic) List(ctx context.Context) ([]entity.Coin, error) {
	out := make([]entity.Coin, len(r.coins))
	copy(out, r.coins)
	return out, nil
}

// Exists は指定されたIDがサポート集合に含まれるかを返します。
func (r *coinStatic) Exists(ctx context.Context, id string) (bool, error) {
	for _, c := range r.coins {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}
