package router

import (
	"github.com/labstack/echo/v4"

	"lokapasar/internal/adapter/api/handler"
	"lokapasar/internal/adapter/api/middleware"
)

func SetupStoreRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	storeHandler := handler.GetStoreHandler()

	stores := e.Group("/v1/stores")
	stores.GET("", storeHandler.ListStores)
	stores.GET("/slug/:slug", storeHandler.GetStoreBySlug)
	stores.GET("/:storeId", storeHandler.GetStore)

	myStore := e.Group("/v1/my-store")
	myStore.Use(authMiddleware.Authenticate)
	myStore.GET("", storeHandler.MyStore)
	myStore.POST("", storeHandler.CreateStore)
	myStore.PUT("", storeHandler.UpdateStore)
}
