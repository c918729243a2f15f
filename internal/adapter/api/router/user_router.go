package router

import (
	"github.com/labstack/echo/v4"

	"lokapasar/internal/adapter/api/handler"
	"lokapasar/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/profile")
	users.Use(authMiddleware.Authenticate)
	users.PUT("", userHandler.UpdateProfile)
	users.GET("/addresses", userHandler.ListAddresses)
	users.POST("/addresses", userHandler.AddAddress)
	users.PUT("/addresses/:id", userHandler.UpdateAddress)
	users.DELETE("/addresses/:id", userHandler.RemoveAddress)
	users.POST("/addresses/:id/default", userHandler.SetDefaultAddress)
}
