package handler

import (
	"github.com/labstack/echo/v4"

	"lokapasar/internal/usecase"
	"lokapasar/pkg/response"
)

type VoucherHandler struct {
	voucherUseCase *usecase.VoucherUseCase
}

func NewVoucherHandler(voucherUseCase *usecase.VoucherUseCase) *VoucherHandler {
	return &VoucherHandler{
		voucherUseCase: voucherUseCase,
	}
}

func (h *VoucherHandler) ListVouchers(c echo.Context) error {
	vouchers, err := h.voucherUseCase.ListVouchers(c.Request().Context(), c.QueryParam("store_id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, vouchers)
}

type applyVoucherRequest struct {
	Code     string  `json:"code" validate:"required"`
	Subtotal float64 `json:"subtotal" validate:"required,gt=0"`
}

func (h *VoucherHandler) ApplyVoucher(c echo.Context) error {
	var req applyVoucherRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	quote, err := h.voucherUseCase.ApplyCode(c.Request().Context(), req.Code, req.Subtotal)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, quote)
}
