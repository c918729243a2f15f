package router

import (
	"github.com/labstack/echo/v4"

	"lokapasar/internal/adapter/api/handler"
)

func SetupVoucherRouter(e *echo.Echo) {
	voucherHandler := handler.GetVoucherHandler()

	vouchers := e.Group("/v1/vouchers")
	vouchers.GET("", voucherHandler.ListVouchers)
	vouchers.POST("/apply", voucherHandler.ApplyVoucher)
}
