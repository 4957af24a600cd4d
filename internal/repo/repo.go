package repo

import (
	"gorm.io/gorm"

	"github.com/craftline/shop/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

// Migrate creates or updates every table the shop owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Product{},
		&models.CartItem{},
		&models.PurchaseRecord{},
		&models.CheckoutCounter{},
	)
}
