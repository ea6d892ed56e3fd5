package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Price must be strictly positive on every
// write; description defaults to the empty string.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:120;not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	Description string          `json:"description" gorm:"type:text"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}
