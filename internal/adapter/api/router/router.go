package router

import (
	"github.com/labstack/echo/v4"

	"lokapasar/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware)
	SetupStoreRouter(e, authMiddleware)
	SetupCategoryRouter(e)
	SetupCartRouter(e, authMiddleware)
	SetupWishlistRouter(e, authMiddleware)
	SetupVoucherRouter(e)
	SetupUserRouter(e, authMiddleware)
}
