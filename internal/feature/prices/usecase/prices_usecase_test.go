package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"crypto_tracker/internal/feature/prices/domain"
	"crypto_tracker/internal/feature/prices/domain/entity"
	"crypto_tracker/internal/feature/prices/usecase"

	"github.com/stretchr/testify/assert"
)

// ErrFetch はモックと期待値の間で共有されるセンチネルエラーです。
var ErrFetch = errors.New("fetch failed")

// mockMarketRepository はMarketRepositoryインターフェースのモック実装です。
type mockMarketRepository struct {
	GetMarketChartFunc func(ctx context.Context, coinID, vsCurrency string, days int) ([]entity.PricePoint, error)
}

func (m *mockMarketRepository) GetMarketChart(ctx context.Context, coinID, vsCurrency string, days int) ([]entity.PricePoint, error) {
	return m.GetMarketChartFunc(ctx, coinID, vsCurrency, days)
}

// mockCoinSet はCoinSetインターフェースのモック実装です。
type mockCoinSet struct {
	ExistsFunc func(ctx context.Context, id string) (bool, error)
}

func (m *mockCoinSet) Exists(ctx context.Context, id string) (bool, error) {
	return m.ExistsFunc(ctx, id)
}

// knownCoins は既知の3コインのみtrueを返すExistsFuncです。
func knownCoins(ctx context.Context, id string) (bool, error) {
	switch id {
	case "bitcoin", "ethereum", "dogecoin":
		return true, nil
	}
	return false, nil
}

// TestPricesUsecase_GetPriceSeries はGetPriceSeriesの検証・取得・整形をテストします。
func TestPricesUsecase_GetPriceSeries(t *testing.T) {
	ctx := context.Background()
	testTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	expectedPoints := []entity.PricePoint{
		{Time: testTime, Price: 93500.25},
		{Time: testTime.Add(time.Hour), Price: 93712.5},
	}

	testCases := []struct {
		name           string
		inputCoinID    string
		mockGetChart   func(ctx context.Context, coinID, vsCurrency string, days int) ([]entity.PricePoint, error)
		expectedSeries entity.PriceSeries
		expectedErr    error
	}{
		{
			name:        "success: known coin with fixed window",
			inputCoinID: "bitcoin",
			mockGetChart: func(ctx context.Context, coinID, vsCurrency string, days int) ([]entity.PricePoint, error) {
				// 固定パラメータがそのまま渡されること
				assert.Equal(t, "bitcoin", coinID)
				assert.Equal(t, "usd", vsCurrency)
				assert.Equal(t, 7, days)
				return expectedPoints, nil
			},
			expectedSeries: entity.PriceSeries{
				CoinID:     "bitcoin",
				VsCurrency: "usd",
				Days:       7,
				Points:     expectedPoints,
			},
		},
		{
			name:        "success: empty series is not an error",
			inputCoinID: "dogecoin",
			mockGetChart: func(ctx context.Context, coinID, vsCurrency string, days int) ([]entity.PricePoint, error) {
				return []entity.PricePoint{}, nil
			},
			expectedSeries: entity.PriceSeries{
				CoinID:     "dogecoin",
				VsCurrency: "usd",
				Days:       7,
				Points:     []entity.PricePoint{},
			},
		},
		{
			name:        "error: unknown coin is rejected before fetching",
			inputCoinID: "notacoin",
			mockGetChart: func(ctx context.Context, coinID, vsCurrency string, days int) ([]entity.PricePoint, error) {
				t.Fatal("market repository must not be called for an unknown coin")
				return nil, nil
			},
			expectedErr: domain.ErrUnknownCoin,
		},
		{
			name:        "error: repository error propagates",
			inputCoinID: "ethereum",
			mockGetChart: func(ctx context.Context, coinID, vsCurrency string, days int) ([]entity.PricePoint, error) {
				return nil, ErrFetch
			},
			expectedErr: ErrFetch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			market := &mockMarketRepository{GetMarketChartFunc: tc.mockGetChart}
			coins := &mockCoinSet{ExistsFunc: knownCoins}

			uc := usecase.NewPricesUsecase(market, coins)

			series, err := uc.GetPriceSeries(ctx, tc.inputCoinID)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedSeries, series)
		})
	}
}

// TestPricesUsecase_GetPriceSeries_CoinSetError はコイン集合の照会エラーが
// そのまま伝播することをテストします。
func TestPricesUsecase_GetPriceSeries_CoinSetError(t *testing.T) {
	errLookup := errors.New("lookup failed")
	market := &mockMarketRepository{
		GetMarketChartFunc: func(ctx context.Context, coinID, vsCurrency string, days int) ([]entity.PricePoint, error) {
			t.Fatal("market repository must not be called")
			return nil, nil
		},
	}
	coins := &mockCoinSet{
		ExistsFunc: func(ctx context.Context, id string) (bool, error) {
			return false, errLookup
		},
	}

	uc := usecase.NewPricesUsecase(market, coins)

	_, err := uc.GetPriceSeries(context.Background(), "bitcoin")
	assert.ErrorIs(t, err, errLookup)
}
