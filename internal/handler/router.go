package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func NewRouter(shopHandler *ShopHandler) *gin.Engine {
	router := gin.Default()
	// "zhumagul-order-service" - имя, по которому ищем трейсы в Jaeger
	router.Use(otelgin.Middleware("zhumagul-order-service"))

	router.Use(MetricsMiddleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/catalog", shopHandler.GetCatalogHandler)
	router.POST("/catalog", shopHandler.AddProductHandler)
	router.DELETE("/catalog/:id", shopHandler.RemoveProductHandler)
	router.POST("/catalog/:id/reviews", shopHandler.AddReviewHandler)

	router.GET("/shipping/districts", shopHandler.DistrictsHandler)
	router.GET("/shipping/quote", shopHandler.QuoteHandler)

	cartGroup := router.Group("/cart")
	{
		cartGroup.GET("", shopHandler.GetCartHandler)
		cartGroup.POST("/items", shopHandler.AddCartItemHandler)
		cartGroup.PATCH("/items", shopHandler.UpdateCartItemHandler)
		cartGroup.DELETE("/items", shopHandler.RemoveCartItemHandler)
	}

	router.POST("/checkout", shopHandler.CheckoutHandler)

	orderGroup := router.Group("/order")
	{
		orderGroup.GET("/:order_uid", shopHandler.GetOrderHandler)
		orderGroup.GET("/:order_uid/summary", shopHandler.OrderSummaryHandler)
		orderGroup.PATCH("/:order_uid/status", shopHandler.SetStatusHandler)
	}
	router.GET("/orders", shopHandler.ListOrdersHandler)

	return router
}
