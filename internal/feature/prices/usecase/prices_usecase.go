// Package usecase は価格シリーズ操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"crypto_tracker/internal/feature/prices/domain"
	"crypto_tracker/internal/feature/prices/domain/entity"
)

const (
	// DefaultVsCurrency は価格の建て通貨です。
	DefaultVsCurrency = "usd"
	// DefaultDays は取得する過去データの固定ウィンドウ（日数）です。
	DefaultDays = 7
)

// MarketRepository は外部の市場データAPIからの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	// GetMarketChart は指定コインの価格履歴を取得します。
	GetMarketChart(ctx context.Context, coinID, vsCurrency string, days int) ([]entity.PricePoint, error)
}

// CoinSet はサポートされるコインの閉じた集合を抽象化します。
type CoinSet interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// pricesUsecase は価格シリーズ取得のユースケースを定義します。
type pricesUsecase struct {
	market MarketRepository
	coins  CoinSet
}

// NewPricesUsecase はpricesUsecaseの新しいインスタンスを生成します。
func NewPricesUsecase(market MarketRepository, coins CoinSet) *pricesUsecase {
	return &pricesUsecase{market: market, coins: coins}
}

// GetPriceSeries は指定されたコインの直近7日間のUSD建て価格シリーズを取得します。
// コインIDはサポート集合に対して検証され、未知のIDはErrUnknownCoinになります。
// ポイントの順序は上流APIの返却順（時系列昇順）をそのまま保持します。
func (pu *pricesUsecase) GetPriceSeries(ctx context.Context, coinID string) (entity.PriceSeries, error) {
	ok, err := pu.coins.Exists(ctx, coinID)
	if err != nil {
		return entity.PriceSeries{}, err
	}
	if !ok {
		return entity.PriceSeries{}, fmt.Errorf("%w: %q", domain.ErrUnknownCoin, coinID)
	}

	points, err := pu.market.GetMarketChart(ctx, coinID, DefaultVsCurrency, DefaultDays)
	if err != nil {
		return entity.PriceSeries{}, err
	}

	return entity.PriceSeries{
		CoinID:     coinID,
		VsCurrency: DefaultVsCurrency,
		Days:       DefaultDays,
		Points:     points,
	}, nil
}
