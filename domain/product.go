package domain

import (
	"time"
)

// CREATE TABLE public.products (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_id  TEXT NOT NULL UNIQUE,
//     itemcode    TEXT,
//     title       TEXT,
//     category    TEXT,
//     brand       TEXT,
//     image       TEXT,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID string    `gorm:"column:product_id;uniqueIndex" json:"product_id"`
	Itemcode  string    `gorm:"column:itemcode;type:text" json:"itemcode"`
	Title     string    `gorm:"column:title;type:text" json:"title"`
	Category  string    `gorm:"column:category;type:text" json:"category"`
	Brand     string    `gorm:"column:brand;type:text" json:"brand"`
	Image     string    `gorm:"column:image;type:text" json:"image"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}
