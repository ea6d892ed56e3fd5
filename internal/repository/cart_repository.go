package repository

import (
	"context"

	"gorm.io/gorm"

	"shopcart/internal/model"
)

// CartRepository defines cart item persistence operations.
type CartRepository interface {
	Create(ctx context.Context, item *model.CartItem) error
	FirstByUserAndProduct(ctx context.Context, userID, productID uint) (*model.CartItem, error)
	ListByUser(ctx context.Context, userID uint) ([]model.CartItem, error)
	Delete(ctx context.Context, id uint) error
	DeleteByUser(ctx context.Context, userID uint) error
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// Create inserts a new cart item row.
func (r *cartRepository) Create(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FirstByUserAndProduct returns the first cart row for the (user, product)
// pair, matching the remove semantics: one row per call, never all of them.
func (r *cartRepository) FirstByUserAndProduct(ctx context.Context, userID, productID uint) (*model.CartItem, error) {
	var item model.CartItem
	if err := r.db.WithContext(ctx).Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByUser returns every cart row owned by the user.
func (r *cartRepository) ListByUser(ctx context.Context, userID uint) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a single cart row by its ID.
func (r *cartRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.CartItem{}, id).Error
}

// DeleteByUser removes all cart rows owned by the user in one statement.
func (r *cartRepository) DeleteByUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.CartItem{}).Error
}
