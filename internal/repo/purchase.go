package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/craftline/shop/internal/models"
)

// ArchiveAndClear appends the purchase records and empties the session's
// cart in one transaction. Either both happen or neither does; the
// checkout counter and the chat hand-off are deliberately outside it.
func (r *GormRepo) ArchiveAndClear(ctx context.Context, sessionID uuid.UUID, records []models.PurchaseRecord) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(records) > 0 {
			if err := tx.Create(&records).Error; err != nil {
				return err
			}
		}
		return tx.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error
	})
}

func (r *GormRepo) ListPurchases(ctx context.Context, sessionID uuid.UUID) ([]models.PurchaseRecord, error) {
	var records []models.PurchaseRecord
	if err := r.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("purchased_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// IncrementCheckoutCount bumps the single counter row, creating it on
// first use, and returns the new total.
func (r *GormRepo) IncrementCheckoutCount(ctx context.Context) (int64, error) {
	var ctr models.CheckoutCounter
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.FirstOrCreate(&ctr, models.CheckoutCounter{ID: 1}).Error; err != nil {
			return err
		}
		ctr.Count++
		return tx.Save(&ctr).Error
	})
	if err != nil {
		return 0, err
	}
	return ctr.Count, nil
}

func (r *GormRepo) GetCheckoutCount(ctx context.Context) (int64, error) {
	var ctr models.CheckoutCounter
	err := r.DB.WithContext(ctx).Where("id = ?", 1).First(&ctr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return ctr.Count, nil
}
