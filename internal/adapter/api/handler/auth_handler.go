package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"lokapasar/internal/usecase"
	"lokapasar/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
	homeURL     string
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase, homeURL string) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		homeURL:     homeURL,
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"user":  result.User,
		"token": result.Token,
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"user":  result.User,
		"token": result.Token,
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.authUseCase.Logout(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "signed out"})
}

func (h *AuthHandler) Me(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.authUseCase.GetUserByID(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

// Callback is the landing destination for the OAuth redirect flow. The
// provider reports failures through the error and error_description query
// parameters; their absence means the sign-in settled successfully.
func (h *AuthHandler) Callback(c echo.Context) error {
	if errCode := c.QueryParam("error"); errCode != "" {
		description := c.QueryParam("error_description")
		if description == "" {
			description = "Authentication failed"
		}
		return c.JSON(http.StatusUnauthorized, response.Response{
			Success:   false,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Error: &response.ErrorInfo{
				Code:    "AUTH_CALLBACK_ERROR",
				Message: description,
			},
		})
	}

	return c.Redirect(http.StatusTemporaryRedirect, h.homeURL)
}
