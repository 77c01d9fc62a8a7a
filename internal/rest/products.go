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
)

type (
	ProductsHandler struct {
		validate *validator.Validate
		service  ProductService
		timeout  time.Duration
	}

	ProductService interface {
		GetAllProducts(ctx context.Context) ([]domain.Product, error)
		GetProduct(ctx context.Context, productID string) (domain.Product, error)
		CreateProduct(ctx context.Context, product *domain.Product) error
	}

	ProductRequest struct {
		ProductID string `json:"product_id" validate:"required"`
		Itemcode  string `json:"itemcode"`
		Title     string `json:"title"`
		Category  string `json:"category"`
		Brand     string `json:"brand"`
		Image     string `json:"image"`
	}
)

func NewProductsHandler(service ProductService) *ProductsHandler {
	return &ProductsHandler{
		validate: validator.New(),
		service:  service,
		timeout:  10 * time.Second,
	}
}

// GET /api/v1/products
func (h *ProductsHandler) GetAllProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.service.GetAllProducts(ctx)
	if err != nil {
		logger.Error("Failed to list products", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}

// GET /api/v1/products/:productId
func (h *ProductsHandler) GetProduct(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.service.GetProduct(ctx, c.Param("productId"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(product))
}

// POST /api/v1/products
func (h *ProductsHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid product request body", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product := domain.Product{
		ProductID: req.ProductID,
		Itemcode:  req.Itemcode,
		Title:     req.Title,
		Category:  req.Category,
		Brand:     req.Brand,
		Image:     req.Image,
	}
	if err := h.service.CreateProduct(ctx, &product); err != nil {
		logger.Error("Failed to create product", "error", err, "product_id", req.ProductID)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(product))
}
