// Package handler はpricesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"crypto_tracker/internal/feature/prices/domain"
	"crypto_tracker/internal/feature/prices/domain/entity"
	"crypto_tracker/internal/feature/prices/transport/http/dto"

	"github.com/gin-gonic/gin"
)

// PricesUsecase は価格シリーズ取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type PricesUsecase interface {
	GetPriceSeries(ctx context.Context, coinID string) (entity.PriceSeries, error)
}

// PricesHandler は価格シリーズのHTTPリクエストを処理します。
type PricesHandler struct {
	uc PricesUsecase
}

// NewPricesHandler は指定されたusecaseでPricesHandlerの新しいインスタンスを生成します。
func NewPricesHandler(uc PricesUsecase) *PricesHandler {
	return &PricesHandler{uc: uc}
}

// GetPriceSeriesHandler はコインIDを受け取り、直近7日間の価格シリーズをJSONで返します。
//
// エンドポイント例:
// GET /api/prices/bitcoin
//
// エラーの対応:
//   - 未知のコインID → 404
//   - 上流の非200ステータス → 502（upstream_statusに元のコードを含む）
//   - 到達不能・不正ペイロード → 502
func (h *PricesHandler) GetPriceSeriesHandler(c *gin.Context) {
	coinID := c.Param("coin")

	series, err := h.uc.GetPriceSeries(c.Request.Context(), coinID)
	if err != nil {
		var statusErr *domain.UpstreamStatusError
		switch {
		case errors.Is(err, domain.ErrUnknownCoin):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.As(err, &statusErr):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "upstream_status": statusErr.StatusCode})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	// データをフォーマット
	out := dto.PriceSeriesResponse{
		Coin:       series.CoinID,
		VsCurrency: series.VsCurrency,
		Days:       series.Days,
		Prices:     make([]dto.PricePointItem, 0, len(series.Points)),
	}
	for _, p := range series.Points {
		out.Prices = append(out.Prices, dto.PricePointItem{
			Time:        p.Time.UTC().Format(time.RFC3339),
			TimestampMS: p.Time.UnixMilli(),
			Price:       p.Price,
		})
	}

	c.JSON(http.StatusOK, out)
}
