package model

import "time"

// CartItem links one user to one product, representing one unit of intent
// to purchase. There is no quantity column: adding the same product twice
// creates two rows.
//
// Referential integrity is enforced by existence checks in the cart
// service, not by database constraints: deleting a product leaves its
// cart rows in place and the cart view skips them.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"-"`
}
