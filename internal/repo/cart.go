package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/craftline/shop/internal/models"
)

func (r *GormRepo) GetCart(ctx context.Context, sessionID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.DB.WithContext(ctx).Where("session_id = ?", sessionID).Order("added_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart inserts the snapshot unless the session already has this
// product, in which case the stored row is returned untouched. Duplicate
// adds never increment quantity. Reports whether a row was created.
func (r *GormRepo) AddToCart(ctx context.Context, item *models.CartItem) (bool, error) {
	created := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.CartItem
		err := tx.Where("session_id = ? AND product_id = ?", item.SessionID, item.ProductID).First(&existing).Error
		if err == nil {
			*item = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}

// RemoveFromCart deletes the item if present; removing an absent product
// is a no-op.
func (r *GormRepo) RemoveFromCart(ctx context.Context, sessionID, productID uuid.UUID) error {
	return r.DB.WithContext(ctx).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		Delete(&models.CartItem{}).Error
}

// UpdateQuantity applies delta to the item's quantity, flooring at 1.
// A quantity-1 item that is decremented stays in the cart at quantity 1.
func (r *GormRepo) UpdateQuantity(ctx context.Context, sessionID, productID uuid.UUID, delta int) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ? AND product_id = ?", sessionID, productID).First(&item).Error; err != nil {
			return err
		}
		q := int(item.Quantity) + delta
		if q < 1 {
			q = 1
		}
		item.Quantity = uint(q)
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) ClearCart(ctx context.Context, sessionID uuid.UUID) error {
	return r.DB.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error
}
