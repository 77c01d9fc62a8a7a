package rest

import (
	"context"
	"net/http"
	"time"

	"wiseBuy/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	ShoppingListsHandler struct {
		validate *validator.Validate
		service  ShoppingListService
		timeout  time.Duration
	}

	ShoppingListService interface {
		LogShoppingList(ctx context.Context, listID, groupID string, productIDs []string) error
	}

	ShoppingListRequest struct {
		ListID     string   `json:"list_id" validate:"required"`
		GroupID    string   `json:"group_id"`
		ProductIDs []string `json:"product_ids" validate:"required,min=1,dive,required"`
	}
)

func NewShoppingListsHandler(service ShoppingListService) *ShoppingListsHandler {
	return &ShoppingListsHandler{
		validate: validator.New(),
		service:  service,
		timeout:  10 * time.Second,
	}
}

// POST /api/v1/shopping-lists
func (h *ShoppingListsHandler) LogShoppingList(c echo.Context) error {
	var req ShoppingListRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid shopping list request body", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.service.LogShoppingList(ctx, req.ListID, req.GroupID, req.ProductIDs); err != nil {
		logger.Error("Failed to log shopping list", "error", err, "list_id", req.ListID)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("shopping list recorded"))
}
