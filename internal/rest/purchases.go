package rest

import (
	"context"
	"net/http"
	"time"

	"wiseBuy/domain"
	"wiseBuy/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type (
	PurchasesHandler struct {
		validate *validator.Validate
		service  PurchaseService
		timeout  time.Duration
	}

	PurchaseService interface {
		LogPurchase(ctx context.Context, event domain.PurchaseEvent) error
	}

	PurchaseRequest struct {
		UserID      uint           `json:"user_id" validate:"required"`
		ProductID   string         `json:"product_id" validate:"required"`
		Category    string         `json:"category"`
		PurchasedAt string         `json:"purchased_at" validate:"omitempty"`
		Context     map[string]any `json:"context"`
	}
)

func NewPurchasesHandler(service PurchaseService) *PurchasesHandler {
	return &PurchasesHandler{
		validate: validator.New(),
		service:  service,
		timeout:  10 * time.Second,
	}
}

// POST /api/v1/purchases
func (h *PurchasesHandler) LogPurchase(c echo.Context) error {
	var req PurchaseRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid purchase request body", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	// malformed timestamps default to now rather than failing the event
	purchasedAt := time.Now()
	if req.PurchasedAt != "" {
		if t, err := time.Parse(time.RFC3339, req.PurchasedAt); err == nil {
			purchasedAt = t
		}
	}

	event := domain.PurchaseEvent{
		UserID:      req.UserID,
		ProductID:   req.ProductID,
		Category:    req.Category,
		PurchasedAt: purchasedAt,
	}
	if req.Context != nil {
		event.Context = datatypes.JSONMap(req.Context)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.service.LogPurchase(ctx, event); err != nil {
		logger.Error("Failed to log purchase", "error", err, "user_id", req.UserID)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("purchase recorded"))
}
