package handler

import (
	"context"
	"net/http"

	"crypto_tracker/internal/feature/coinlist/domain/entity"
	"crypto_tracker/internal/feature/coinlist/transport/http/dto"

	"github.com/gin-gonic/gin"
)

// CoinUsecase はコイン一覧に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CoinUsecase interface {
	ListCoins(ctx context.Context) ([]entity.Coin, error)
}

// CoinHandler はコイン一覧に関するHTTPリクエストを処理します。
type CoinHandler struct {
	uc CoinUsecase
}

// NewCoinHandler は新しい CoinHandler を作成します。
func NewCoinHandler(uc CoinUsecase) *CoinHandler {
	return &CoinHandler{uc: uc}
}

// List はサポートされるコインの一覧を取得するAPIです。
// Usecaseを呼び出してコイン一覧を取得し、DTOに変換してJSONレスポンスとして返します。
// Usecaseでエラーが発生した場合は500 Internal Server Errorを返します。
func (h *CoinHandler) List(c *gin.Context) {
	coins, err := h.uc.ListCoins(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.CoinItem, 0, len(coins))
	for _, coin := range coins {
		out = append(out, dto.CoinItem{ID: coin.ID, Name: coin.Name})
	}
	c.JSON(http.StatusOK, out)
}
