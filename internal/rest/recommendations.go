package rest

import (
	"context"
	"net/http"
	"time"

	"wiseBuy/domain"
	"wiseBuy/pkg/logger"
	"wiseBuy/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type (
	RecommendationsHandler struct {
		validate *validator.Validate
		service  RecommendationService
		timeout  time.Duration
	}

	RecommendationService interface {
		Recommend(ctx context.Context, userID uint, cartProductIDs []string, perCategory int) ([]domain.Recommendation, error)
	}

	RecommendRequest struct {
		UserID         uint     `json:"user_id" validate:"required"`
		CartProductIDs []string `json:"cartProductIds"`
		PerCategory    int      `json:"perCategory" validate:"omitempty,min=1,max=20"`
	}
)

func NewRecommendationsHandler(service RecommendationService) *RecommendationsHandler {
	return &RecommendationsHandler{
		validate: validator.New(),
		service:  service,
		timeout:  10 * time.Second,
	}
}

// POST /api/v1/recommendations
func (h *RecommendationsHandler) Recommend(c echo.Context) error {
	start := time.Now()

	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid recommend request body", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.service.Recommend(ctx, req.UserID, req.CartProductIDs, req.PerCategory)
	if err != nil {
		logger.Error("Failed to build recommendations", "error", err, "user_id", req.UserID)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendRequests.Inc()
	metrics.RecommendLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(domain.RecommendationResult{
		Recommendations: recs,
	}))
}
