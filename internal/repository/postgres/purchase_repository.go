package postgres

import (
	"context"
	"fmt"

	"wiseBuy/domain"

	"gorm.io/gorm"
)

type PurchaseRepository struct {
	DB *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{
		DB: db,
	}
}

func (r *PurchaseRepository) SaveEvent(ctx context.Context, event domain.PurchaseEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("failed to save purchase event: %w", err)
	}

	return nil
}

func (r *PurchaseRepository) FindByUser(ctx context.Context, userID uint) ([]domain.PurchaseEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var events []domain.PurchaseEvent
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchased_at DESC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find user purchases: %w", err)
	}

	return events, nil
}

func (r *PurchaseRepository) FindAll(ctx context.Context) ([]domain.PurchaseEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var events []domain.PurchaseEvent
	err := r.DB.WithContext(ctx).Order("purchased_at DESC").Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find purchases: %w", err)
	}

	return events, nil
}
