package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.purchase_events (
//     id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     user_id      BIGINT NOT NULL,
//     product_id   TEXT NOT NULL,
//     category     TEXT,
//     purchased_at TIMESTAMPTZ NOT NULL,
//     context      JSONB,
//     created_at   TIMESTAMPTZ DEFAULT NOW()
// );

type PurchaseEvent struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	ProductID   string    `gorm:"column:product_id;not null" json:"product_id"`
	Category    string    `gorm:"column:category;type:text" json:"category"`
	PurchasedAt time.Time `gorm:"column:purchased_at;not null" json:"purchased_at"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	// optional client metadata (platform, checkout session, etc.)
	Context datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context"`
}

func (PurchaseEvent) TableName() string {
	return "purchase_events"
}
