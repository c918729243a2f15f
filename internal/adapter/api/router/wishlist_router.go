package router

import (
	"github.com/labstack/echo/v4"

	"lokapasar/internal/adapter/api/handler"
	"lokapasar/internal/adapter/api/middleware"
)

func SetupWishlistRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	wishlistHandler := handler.GetWishlistHandler()

	wishlist := e.Group("/v1/wishlist")
	wishlist.Use(authMiddleware.Authenticate)
	wishlist.GET("", wishlistHandler.GetWishlist)
	wishlist.POST("", wishlistHandler.AddToWishlist)
	wishlist.GET("/:productId", wishlistHandler.CheckWishlist)
	wishlist.DELETE("/:productId", wishlistHandler.RemoveFromWishlist)
}
