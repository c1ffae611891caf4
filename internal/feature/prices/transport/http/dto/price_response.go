// Package dto defines data transfer objects for the prices HTTP API.
package dto

// PricePointItem はシリーズ内の1観測点のレスポンスDTOです。
// TimestampMS は上流のエポックミリ秒値をそのまま復元したものです。
type PricePointItem struct {
	Time        string  `json:"time"`         // RFC 3339 (UTC)
	TimestampMS int64   `json:"timestamp_ms"` // エポックミリ秒
	Price       float64 `json:"price"`        // 建て通貨での価格
}

// PriceSeriesResponse は価格シリーズのレスポンスDTOです。
type PriceSeriesResponse struct {
	Coin       string           `json:"coin"`
	VsCurrency string           `json:"vs_currency"`
	Days       int              `json:"days"`
	Prices     []PricePointItem `json:"prices"`
}
