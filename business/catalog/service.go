package catalog

import (
	"context"
	"fmt"

	"wiseBuy/domain"
	"wiseBuy/pkg/logger"
)

// ProductRepository is the read path; behind it may sit the cache.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

// ProductStore is the write/lookup path, always the database.
type ProductStore interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByProductID(ctx context.Context, productID string) (domain.Product, error)
}

type CatalogCache interface {
	Invalidate(ctx context.Context) error
}

type Service struct {
	repo  ProductRepository
	store ProductStore
	cache CatalogCache
}

// NewService wires the catalog read and write paths; cache may be nil.
func NewService(repo ProductRepository, store ProductStore, cache CatalogCache) *Service {
	return &Service{repo: repo, store: store, cache: cache}
}

func (s *Service) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (s *Service) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}
	if productID == "" {
		return domain.Product{}, fmt.Errorf("product_id is required")
	}

	return s.store.FindByProductID(ctx, productID)
}

// CreateProduct inserts a catalog entry and drops the cached catalog so the
// next read sees it.
func (s *Service) CreateProduct(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if product.ProductID == "" {
		return fmt.Errorf("product_id is required")
	}

	if err := s.store.Create(ctx, product); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			logger.Warn("failed to invalidate catalog cache", "error", err)
		}
	}

	return nil
}
