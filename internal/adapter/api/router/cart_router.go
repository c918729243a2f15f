package router

import (
	"github.com/labstack/echo/v4"

	"lokapasar/internal/adapter/api/handler"
	"lokapasar/internal/adapter/api/middleware"
)

func SetupCartRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/v1/cart")
	cart.Use(authMiddleware.Authenticate)
	cart.GET("", cartHandler.GetCart)
	cart.POST("/items", cartHandler.AddToCart)
	cart.PUT("/items", cartHandler.UpdateQuantity)
	cart.DELETE("/items", cartHandler.RemoveFromCart)
	cart.DELETE("", cartHandler.ClearCart)
	cart.DELETE("/stores/:storeId", cartHandler.ClearStoreCart)
	cart.GET("/stores/:storeId/summary", cartHandler.GetStoreSummary)
}
