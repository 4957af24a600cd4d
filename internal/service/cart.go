package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/craftline/shop/internal/models"
	"github.com/craftline/shop/internal/repo"
)

type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) Get(ctx context.Context, sessionID uuid.UUID) ([]models.CartItem, error) {
	items, err := s.Repo.GetCart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: get cart: %v", ErrFetch, err)
	}
	return items, nil
}

// Add puts a fresh snapshot of the product into the cart at quantity 1.
// Adding a product that is already in the cart is a no-op, not an
// increment; quantity only moves through Increase and Decrease.
func (s *CartService) Add(ctx context.Context, sessionID, productID uuid.UUID) (*models.CartItem, bool, error) {
	if productID == uuid.Nil {
		return nil, false, fmt.Errorf("%w: product_id required", ErrValidation)
	}

	product, err := s.Repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, fmt.Errorf("%w: product %s", ErrNotFound, productID)
		}
		return nil, false, fmt.Errorf("%w: get product: %v", ErrFetch, err)
	}

	item := models.CartItem{
		SessionID:   sessionID,
		ProductID:   product.ID,
		Name:        product.Name,
		UnitPrice:   product.Price,
		DiscountPct: product.DiscountPct,
		Size:        product.Size,
		Category:    product.Category,
		Image:       product.CoverImage(),
		Quantity:    1,
	}

	created, err := s.Repo.AddToCart(ctx, &item)
	if err != nil {
		return nil, false, fmt.Errorf("%w: add to cart: %v", ErrPersistence, err)
	}
	return &item, created, nil
}

func (s *CartService) Remove(ctx context.Context, sessionID, productID uuid.UUID) error {
	if productID == uuid.Nil {
		return fmt.Errorf("%w: product_id required", ErrValidation)
	}
	if err := s.Repo.RemoveFromCart(ctx, sessionID, productID); err != nil {
		return fmt.Errorf("%w: remove from cart: %v", ErrPersistence, err)
	}
	return nil
}

func (s *CartService) Increase(ctx context.Context, sessionID, productID uuid.UUID) (*models.CartItem, error) {
	return s.updateQuantity(ctx, sessionID, productID, +1)
}

// Decrease lowers the quantity by one but never below one: a quantity-1
// item stays in the cart. Removal happens only through Remove.
func (s *CartService) Decrease(ctx context.Context, sessionID, productID uuid.UUID) (*models.CartItem, error) {
	return s.updateQuantity(ctx, sessionID, productID, -1)
}

func (s *CartService) updateQuantity(ctx context.Context, sessionID, productID uuid.UUID, delta int) (*models.CartItem, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("%w: product_id required", ErrValidation)
	}
	item, err := s.Repo.UpdateQuantity(ctx, sessionID, productID, delta)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cart item %s", ErrNotFound, productID)
		}
		return nil, fmt.Errorf("%w: update quantity: %v", ErrPersistence, err)
	}
	return item, nil
}

func (s *CartService) Clear(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.Repo.ClearCart(ctx, sessionID); err != nil {
		return fmt.Errorf("%w: clear cart: %v", ErrPersistence, err)
	}
	return nil
}
