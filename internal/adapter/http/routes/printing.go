package routes

import (
	"printlite/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
	PathQuotes = "/quotes"
)

func addPrintingRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, quoteHandler *handlers.QuoteHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
		orders.PATCH("/:id/payment", orderHandler.UpdatePaymentStatus)
		orders.DELETE("/:id", orderHandler.DeleteOrder)

		// Customer-safe tracking projection; everything above is admin surface.
		orders.GET("/:id/track", orderHandler.TrackOrder)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
	}
}
