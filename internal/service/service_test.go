package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/craftline/shop/internal/models"
	"github.com/craftline/shop/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repo.Migrate(db))
	return &repo.GormRepo{DB: db}
}

func seedProduct(t *testing.T, r *repo.GormRepo, name string, price int64) *models.Product {
	t.Helper()

	prod := models.Product{
		Name:        name,
		Description: name + " description",
		Price:       price,
		Size:        "M",
		Category:    "Baskets",
		Images:      []string{"https://img.example/" + name + ".jpg"},
		InStock:     true,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, r.CreateProduct(context.Background(), &prod))
	return &prod
}
