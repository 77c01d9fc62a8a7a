package domain

import "time"

// ShoppingListEntry is one item row of a group shopping list. Lists are
// reconstructed by grouping entries on list_id; only co-occurrence matters,
// so no temporal columns are read by the engine.
type ShoppingListEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ListID    string    `gorm:"column:list_id;not null;index" json:"list_id"`
	GroupID   string    `gorm:"column:group_id" json:"group_id"`
	ProductID string    `gorm:"column:product_id;not null" json:"product_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ShoppingListEntry) TableName() string {
	return "shopping_list_items"
}
