package main

import (
	"log"
	"os"

	"crypto_tracker/internal/app/router"
	"crypto_tracker/internal/config"
	coinadapters "crypto_tracker/internal/feature/coinlist/adapters"
	coinhandler "crypto_tracker/internal/feature/coinlist/transport/handler"
	coinusecase "crypto_tracker/internal/feature/coinlist/usecase"
	dashhandler "crypto_tracker/internal/feature/dashboard/transport/handler"
	priceshandler "crypto_tracker/internal/feature/prices/transport/handler"
	pricesusecase "crypto_tracker/internal/feature/prices/usecase"
	"crypto_tracker/internal/platform/externalapi/coingecko"
	platformhttp "crypto_tracker/internal/platform/http"
)

func main() {
	// 設定読み込み（ファイルが無ければデフォルト値で動作する）
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal(err)
	}

	// Repository
	client := platformhttp.NewHTTPClient(cfg.Timeout())
	market := coingecko.NewCoinGeckoMarket(coingecko.Config{
		BaseURL: cfg.MarketData.BaseURL,
		Timeout: cfg.Timeout(),
	}, client)
	coinRepo := coinadapters.NewCoinRepository()

	// Usecase
	coinUC := coinusecase.NewCoinUsecase(coinRepo)
	pricesUC := pricesusecase.NewPricesUsecase(market, coinRepo)

	// Handler
	coinH := coinhandler.NewCoinHandler(coinUC)
	pricesH := priceshandler.NewPricesHandler(pricesUC)
	dashboardH := dashhandler.NewDashboardHandler(pricesUC, coinUC)
	chartH := dashhandler.NewChartHandler(pricesUC)

	// ルータ生成
	r := router.NewRouter(dashboardH, chartH, pricesH, coinH)

	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal(err)
	}
}
