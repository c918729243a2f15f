package handler

import (
	"github.com/labstack/echo/v4"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/usecase"
	"lokapasar/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateProfileRequest struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatar_url"`
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		Name:      req.Name,
		Phone:     req.Phone,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) ListAddresses(c echo.Context) error {
	uid := c.Get("uid").(string)
	return response.Success(c, h.userUseCase.ListAddresses(c.Request().Context(), uid))
}

type addressRequest struct {
	Label      string `json:"label" validate:"required"`
	Recipient  string `json:"recipient" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	Province   string `json:"province" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
}

func (h *UserHandler) AddAddress(c echo.Context) error {
	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	address := h.userUseCase.AddAddress(c.Request().Context(), uid, entity.Address{
		Label:      req.Label,
		Recipient:  req.Recipient,
		Phone:      req.Phone,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		PostalCode: req.PostalCode,
	})

	return response.Created(c, address)
}

func (h *UserHandler) UpdateAddress(c echo.Context) error {
	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	address := entity.Address{
		ID:         c.Param("id"),
		Label:      req.Label,
		Recipient:  req.Recipient,
		Phone:      req.Phone,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		PostalCode: req.PostalCode,
	}
	if err := h.userUseCase.UpdateAddress(c.Request().Context(), uid, address); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, address)
}

func (h *UserHandler) RemoveAddress(c echo.Context) error {
	uid := c.Get("uid").(string)
	h.userUseCase.RemoveAddress(c.Request().Context(), uid, c.Param("id"))
	return response.Success(c, map[string]string{"status": "removed"})
}

func (h *UserHandler) SetDefaultAddress(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.userUseCase.SetDefaultAddress(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "default set"})
}
