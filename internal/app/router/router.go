package router

import (
	coinhandler "crypto_tracker/internal/feature/coinlist/transport/handler"
	dashhandler "crypto_tracker/internal/feature/dashboard/transport/handler"
	priceshandler "crypto_tracker/internal/feature/prices/transport/handler"
	"crypto_tracker/internal/platform/http/handler"

	"github.com/gin-gonic/gin"
)

func NewRouter(dashboard *dashhandler.DashboardHandler, chart *dashhandler.ChartHandler,
	prices *priceshandler.PricesHandler, coins *coinhandler.CoinHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", handler.Health)

	// HTMLダッシュボードとチャート
	r.GET("/", dashboard.GetDashboard)
	r.GET("/chart", chart.GetChart)

	// JSON API
	api := r.Group("/api")
	{
		api.GET("/coins", coins.List)
		api.GET("/prices/:coin", prices.GetPriceSeriesHandler)
	}

	return r
}
