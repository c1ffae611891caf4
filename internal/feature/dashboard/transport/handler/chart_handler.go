package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"crypto_tracker/internal/feature/prices/domain"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ChartHandler は折れ線チャートページのHTTPリクエストを処理します。
// ダッシュボードページのiframeから埋め込まれる想定ですが、単体でも動作します。
type ChartHandler struct {
	prices PricesUsecase
}

// NewChartHandler は指定されたusecaseでChartHandlerの新しいインスタンスを生成します。
func NewChartHandler(prices PricesUsecase) *ChartHandler {
	return &ChartHandler{prices: prices}
}

// GetChart は指定コインの価格シリーズを時間軸の折れ線チャートとして描画します。
//
// エンドポイント例:
// GET /chart?coin=bitcoin
func (h *ChartHandler) GetChart(c *gin.Context) {
	coinID := c.Query("coin")
	if coinID == "" {
		c.String(http.StatusBadRequest, "missing coin parameter")
		return
	}

	series, err := h.prices.GetPriceSeries(c.Request.Context(), coinID)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownCoin) {
			c.String(http.StatusNotFound, "unknown coin: %s", coinID)
			return
		}
		c.String(http.StatusBadGateway, "Error fetching data from API")
		return
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fmt.Sprintf("%s price chart", series.CoinID),
			Width:     "100%",
			Height:    "440px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s — last %d days (%s)", series.CoinID, series.Days, strings.ToUpper(series.VsCurrency)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	x := make([]string, 0, len(series.Points))
	y := make([]opts.LineData, 0, len(series.Points))
	for _, p := range series.Points {
		x = append(x, p.Time.UTC().Format("2006-01-02 15:04"))
		y = append(y, opts.LineData{Value: p.Price})
	}
	line.SetXAxis(x).AddSeries("price", y,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := line.Render(c.Writer); err != nil {
		slog.Warn("failed to render chart", "error", err)
	}
}
