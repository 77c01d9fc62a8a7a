package postgres

import (
	"context"
	"fmt"

	"wiseBuy/domain"

	"gorm.io/gorm"
)

type ShoppingListRepository struct {
	DB *gorm.DB
}

func NewShoppingListRepository(db *gorm.DB) *ShoppingListRepository {
	return &ShoppingListRepository{
		DB: db,
	}
}

func (r *ShoppingListRepository) AddEntry(ctx context.Context, entry *domain.ShoppingListEntry) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to add shopping list entry: %w", err)
	}

	return nil
}

// FindAllLists groups item rows by list_id into the list shape the engine
// consumes for co-occurrence counting.
func (r *ShoppingListRepository) FindAllLists(ctx context.Context) ([]domain.ShoppingList, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var entries []domain.ShoppingListEntry
	err := r.DB.WithContext(ctx).Order("list_id, id").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find shopping list entries: %w", err)
	}

	lists := make([]domain.ShoppingList, 0)
	index := make(map[string]int)
	for _, entry := range entries {
		i, ok := index[entry.ListID]
		if !ok {
			i = len(lists)
			index[entry.ListID] = i
			lists = append(lists, domain.ShoppingList{})
		}
		lists[i].Items = append(lists[i].Items, domain.ShoppingListItemRef{
			ProductID: entry.ProductID,
		})
	}

	return lists, nil
}
