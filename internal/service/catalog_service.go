package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shopcart/internal/errors"
	"shopcart/internal/model"
	"shopcart/internal/repository"
)

// UpdateProductInput carries a partial product update. Nil fields were
// absent from the request and stay untouched. Price stays raw JSON so
// the number-only rule below can tell `12.00` apart from `"12.00"`.
type UpdateProductInput struct {
	Name        *string
	Price       json.RawMessage
	Description *string
}

// numericPrice parses raw as a JSON number. Strings, booleans, and null
// are not prices, even when their content looks numeric.
func numericPrice(raw json.RawMessage) (decimal.Decimal, bool) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil || n == "" {
		return decimal.Decimal{}, false
	}
	price, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	return price, true
}

// CatalogService handles product catalog operations.
type CatalogService interface {
	Create(ctx context.Context, name string, price json.RawMessage, description string) (*model.Product, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, id uint, input UpdateProductInput) error
	Delete(ctx context.Context, id uint) error
}

type catalogService struct {
	productRepo repository.ProductRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogService{productRepo: productRepo}
}

// Create validates and inserts a new product. The price must be a JSON
// number and strictly positive; validation failure leaves storage
// untouched.
func (s *catalogService) Create(ctx context.Context, name string, price json.RawMessage, description string) (*model.Product, error) {
	amount, ok := numericPrice(price)
	if name == "" || !ok || !amount.GreaterThan(decimal.Zero) {
		return nil, errors.ErrInvalidProduct
	}

	product := &model.Product{
		Name:        name,
		Price:       amount,
		Description: description,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// Get returns a product by ID.
func (s *catalogService) Get(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// List returns all products in storage order.
func (s *catalogService) List(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.List(ctx)
}

// Update applies only the fields present in the input. Name and description
// replace unconditionally (including an explicit empty description); a
// price that is not a JSON number or not strictly positive is silently
// ignored while the other fields still apply.
func (s *catalogService) Update(ctx context.Context, id uint, input UpdateProductInput) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrProductNotFound
		}
		return err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if amount, ok := numericPrice(input.Price); ok && amount.GreaterThan(decimal.Zero) {
		product.Price = amount
	}
	if input.Description != nil {
		product.Description = *input.Description
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete removes a product by ID.
func (s *catalogService) Delete(ctx context.Context, id uint) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrProductNotFound
		}
		return err
	}
	return nil
}
