package router

import (
	pricehandler "pricing_backend/internal/feature/pricing/transport/handler"
	"pricing_backend/internal/platform/http/handler"

	"github.com/gin-gonic/gin"
)

func NewRouter(prices *pricehandler.PriceHandler, store handler.Pinger) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	// ストア疎通確認
	ready := handler.Ready(store)
	r.GET("/readyz", ready)
	r.HEAD("/readyz", ready)

	api := r.Group("/api")
	{
		api.GET("/prices", prices.GetApplicablePrice)
	}

	return r
}
