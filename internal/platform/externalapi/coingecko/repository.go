package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"crypto_tracker/internal/feature/prices/domain"
	"crypto_tracker/internal/feature/prices/domain/entity"
	"crypto_tracker/internal/feature/prices/usecase"
	"crypto_tracker/internal/platform/externalapi/coingecko/dto"
)

// CoinGeckoMarket はCoinGecko外部APIから価格履歴を取得するMarketRepository実装です。
type CoinGeckoMarket struct {
	cfg    Config
	client *http.Client
}

// CoinGeckoMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*CoinGeckoMarket)(nil)

// NewCoinGeckoMarket は指定された設定とHTTPクライアントでCoinGeckoMarketの新しいインスタンスを生成します。
func NewCoinGeckoMarket(cfg Config, client *http.Client) *CoinGeckoMarket {
	return &CoinGeckoMarket{cfg: cfg, client: client}
}

// GetMarketChart はCoinGecko APIから指定コインの価格履歴を取得し、
// entity.PricePointのスライスとして返します。順序はAPIの返却順を保持します。
//
// エラーは種類ごとに区別されます:
//   - トランスポート障害（DNS失敗・接続拒否・タイムアウト）→ domain.ErrUpstreamUnreachable
//   - 非200ステータス → *domain.UpstreamStatusError
//   - デコード不能・期待形状でないボディ → domain.ErrMalformedPayload
func (g *CoinGeckoMarket) GetMarketChart(ctx context.Context, coinID, vsCurrency string, days int) ([]entity.PricePoint, error) {
	q := url.Values{}
	// クエリパラメータを追加
	q.Set("vs_currency", vsCurrency)
	q.Set("days", strconv.Itoa(days))

	// URLを生成
	u := fmt.Sprintf("%s/coins/%s/market_chart?%s", g.cfg.BaseURL, url.PathEscape(coinID), q.Encode())

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	// リクエストを実行
	res, err := g.client.Do(req)
	if err != nil {
		// レスポンスを受け取る前の障害は到達不能として扱う
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnreachable, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	// 成功は200のみ。それ以外は一律に失敗として扱う
	if res.StatusCode != http.StatusOK {
		return nil, &domain.UpstreamStatusError{StatusCode: res.StatusCode}
	}

	// JSONレスポンスをDTOにデコード
	var body dto.MarketChartResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}
	if body.Prices == nil {
		return nil, fmt.Errorf("%w: missing prices field", domain.ErrMalformedPayload)
	}

	points := make([]entity.PricePoint, 0, len(body.Prices))
	for i, pair := range body.Prices {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: prices[%d] has %d elements, want 2", domain.ErrMalformedPayload, i, len(pair))
		}
		// エポックミリ秒をtime.Timeに変換する。
		// CoinGeckoのタイムスタンプはfloat64で正確に表現できる範囲に収まる。
		points = append(points, entity.PricePoint{
			Time:  time.UnixMilli(int64(pair[0])).UTC(),
			Price: pair[1],
		})
	}
	return points, nil
}
