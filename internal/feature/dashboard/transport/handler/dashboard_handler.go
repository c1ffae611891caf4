// Package handler はdashboardフィーチャーのHTTPハンドラーを提供します。
// ダッシュボードは状態を持たず、リクエストごとに選択コインを受け取って
// 取得・整形・描画をやり直します。
package handler

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	coinentity "crypto_tracker/internal/feature/coinlist/domain/entity"
	"crypto_tracker/internal/feature/prices/domain"
	pricesentity "crypto_tracker/internal/feature/prices/domain/entity"

	"github.com/gin-gonic/gin"
)

// tailRows はテーブルに表示する末尾行数です。
const tailRows = 5

// PricesUsecase は価格シリーズ取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type PricesUsecase interface {
	GetPriceSeries(ctx context.Context, coinID string) (pricesentity.PriceSeries, error)
}

// CoinUsecase はコイン一覧取得のユースケースインターフェースを定義します。
type CoinUsecase interface {
	ListCoins(ctx context.Context) ([]coinentity.Coin, error)
}

// DashboardHandler はダッシュボードページのHTTPリクエストを処理します。
type DashboardHandler struct {
	prices PricesUsecase
	coins  CoinUsecase
}

// NewDashboardHandler は指定されたusecaseでDashboardHandlerの新しいインスタンスを生成します。
func NewDashboardHandler(prices PricesUsecase, coins CoinUsecase) *DashboardHandler {
	return &DashboardHandler{prices: prices, coins: coins}
}

// tailRow はテーブル1行分の表示用データです。
type tailRow struct {
	Time  string
	Price string
}

// dashboardView はテンプレートに渡すビューモデルです。
type dashboardView struct {
	Title        string
	Coins        []coinentity.Coin
	Selected     string
	HasStatus    bool
	StatusCode   int
	ErrorMessage string
	HasData      bool
	ChartURL     string
	Rows         []tailRow
}

// GetDashboard はダッシュボードページを描画します。
//
// エンドポイント例:
// GET /?coin=bitcoin
//
// coinパラメータが無い場合はコイン一覧の先頭がデフォルト選択になります。
// 取得成功時はステータスコード行・チャート・末尾テーブルを、
// 上流が非200の場合はそのコードとエラーバナーのみを表示します。
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	coins, err := h.coins.ListCoins(ctx)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load coin list")
		return
	}

	selected := c.Query("coin")
	if selected == "" && len(coins) > 0 {
		selected = coins[0].ID
	}

	view := dashboardView{
		Title:    "Crypto Price Tracker",
		Coins:    coins,
		Selected: selected,
	}

	series, err := h.prices.GetPriceSeries(ctx, selected)
	var statusErr *domain.UpstreamStatusError
	switch {
	case err == nil:
		view.HasStatus = true
		view.StatusCode = http.StatusOK
		view.HasData = true
		view.ChartURL = "/chart?coin=" + url.QueryEscape(selected)
		for _, p := range series.Tail(tailRows) {
			view.Rows = append(view.Rows, tailRow{
				Time:  p.Time.UTC().Format("2006-01-02 15:04:05"),
				Price: strconv.FormatFloat(p.Price, 'f', -1, 64),
			})
		}
	case errors.As(err, &statusErr):
		// 上流のステータスコードはそのまま表示する
		view.HasStatus = true
		view.StatusCode = statusErr.StatusCode
		view.ErrorMessage = "Error fetching data from API"
	case errors.Is(err, domain.ErrUpstreamUnreachable):
		view.ErrorMessage = "Market data service is unreachable"
	case errors.Is(err, domain.ErrMalformedPayload):
		view.ErrorMessage = "Received a malformed response from the API"
	default:
		view.ErrorMessage = "Error fetching data from API"
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := dashboardTmpl.Execute(c.Writer, view); err != nil {
		slog.Warn("failed to render dashboard", "error", err)
	}
}

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardHTML))

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2rem auto; max-width: 960px; padding: 0 1rem; }
select { font-size: 1rem; padding: 0.2rem; }
.status { color: #555; }
.error { background: #fdecea; border: 1px solid #f5c6cb; color: #a94442; padding: 0.8rem 1rem; border-radius: 4px; }
iframe { border: none; width: 100%; height: 460px; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.8rem; text-align: right; }
th { background: #f4f4f4; }
</style>
</head>
<body>
<h1>💹 {{.Title}}</h1>
<form method="get" action="/">
<label for="coin">Select a cryptocurrency:</label>
<select id="coin" name="coin" onchange="this.form.submit()">
{{range .Coins}}<option value="{{.ID}}"{{if eq .ID $.Selected}} selected{{end}}>{{.Name}}</option>
{{end}}</select>
</form>
{{if .HasStatus}}<p class="status">Status code: {{.StatusCode}}</p>
{{end}}{{if .ErrorMessage}}<div class="error">{{.ErrorMessage}}</div>
{{end}}{{if .HasData}}<iframe src="{{.ChartURL}}" title="price chart"></iframe>
{{if .Rows}}<h2>Last {{len .Rows}} rows</h2>
<table>
<thead><tr><th>timestamp</th><th>price</th></tr></thead>
<tbody>
{{range .Rows}}<tr><td>{{.Time}}</td><td>{{.Price}}</td></tr>
{{end}}</tbody>
</table>
{{else}}<p>No price data for the selected window.</p>
{{end}}{{end}}</body>
</html>
`
