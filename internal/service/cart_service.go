package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shopcart/internal/errors"
	"shopcart/internal/model"
	"shopcart/internal/repository"
)

// CartLine is one row of the cart view: the cart item joined with the
// product it references.
type CartLine struct {
	ID           uint            `json:"id"`
	UserID       uint            `json:"user_id"`
	ProductID    uint            `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
}

// CartService handles per-user cart operations.
type CartService interface {
	Add(ctx context.Context, userID, productID uint) error
	Remove(ctx context.Context, userID, productID uint) error
	View(ctx context.Context, userID uint) ([]CartLine, error)
	Checkout(ctx context.Context, userID uint) error
}

type cartService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
}

// NewCartService creates a new cart service.
func NewCartService(userRepo repository.UserRepository, productRepo repository.ProductRepository, cartRepo repository.CartRepository) CartService {
	return &cartService{
		userRepo:    userRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
	}
}

// Add inserts a new cart row for the user and product. Both are re-resolved
// first; a failed lookup of either reports the same generic failure. Each
// call inserts its own row, so adding the same product twice yields two.
func (s *cartService) Add(ctx context.Context, userID, productID uint) error {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return errors.ErrCartAddFailed
	}
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return errors.ErrCartAddFailed
	}

	item := &model.CartItem{
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.cartRepo.Create(ctx, item); err != nil {
		return fmt.Errorf("create cart item: %w", err)
	}
	return nil
}

// Remove deletes the first cart row matching the (user, product) pair.
func (s *cartService) Remove(ctx context.Context, userID, productID uint) error {
	item, err := s.cartRepo.FirstByUserAndProduct(ctx, userID, productID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrCartRemoveFailed
		}
		return err
	}

	if err := s.cartRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// View lists the user's cart, re-resolving each product. Rows whose
// product no longer exists are skipped, not reported: the stale cart row
// stays in storage and simply drops out of the view.
func (s *cartService) View(ctx context.Context, userID uint) ([]CartLine, error) {
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}

	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return nil, fmt.Errorf("resolve product %d: %w", item.ProductID, err)
		}

		lines = append(lines, CartLine{
			ID:           item.ID,
			UserID:       item.UserID,
			ProductID:    item.ProductID,
			ProductName:  product.Name,
			ProductPrice: product.Price,
		})
	}
	return lines, nil
}

// Checkout clears every cart row owned by the user. No order or receipt
// record is written.
func (s *cartService) Checkout(ctx context.Context, userID uint) error {
	if err := s.cartRepo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
