package handler

import (
	"github.com/labstack/echo/v4"

	"lokapasar/internal/usecase"
	"lokapasar/pkg/response"
)

type CategoryHandler struct {
	categoryUseCase *usecase.CategoryUseCase
}

func NewCategoryHandler(categoryUseCase *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
	}
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryUseCase.ListCategories(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, categories)
}

func (h *CategoryHandler) GetCategoryBySlug(c echo.Context) error {
	category, err := h.categoryUseCase.GetCategoryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, category)
}
