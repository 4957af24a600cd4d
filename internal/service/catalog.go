package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/craftline/shop/internal/catalog"
	"github.com/craftline/shop/internal/logging"
	"github.com/craftline/shop/internal/models"
	"github.com/craftline/shop/internal/mykafka"
	"github.com/craftline/shop/internal/repo"
	"github.com/craftline/shop/internal/search"
	"github.com/craftline/shop/internal/transport"
)

type CatalogService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
	Search   *search.Client
}

// ListResult is one page of the storefront listing.
type ListResult struct {
	Views   []catalog.View
	Total   int
	Visible int
}

// ListProducts fetches the catalog newest first, decorates it, applies the
// query and windows the result to the requested visible count.
func (s *CatalogService) ListProducts(ctx context.Context, q catalog.Query, favorites map[uuid.UUID]struct{}, visible int) (*ListResult, error) {
	products, err := s.Repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list products: %v", ErrFetch, err)
	}

	views := catalog.Decorate(products, time.Now(), favorites, nil)
	views = catalog.Apply(views, q)

	total := len(views)
	windowed := catalog.Window(views, visible)
	return &ListResult{Views: windowed, Total: total, Visible: len(windowed)}, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*catalog.View, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: get product: %v", ErrFetch, err)
	}

	views := catalog.Decorate([]models.Product{*product}, time.Now(), nil, nil)
	return &views[0], nil
}

func validatePrice(price int64, discount uint) error {
	if price < 0 {
		return fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if discount > 100 {
		return fmt.Errorf("%w: discount_pct must be <= 100", ErrValidation)
	}
	return nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	if err := validatePrice(req.Price, req.DiscountPct); err != nil {
		return nil, err
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}
	size := req.Size
	if size == "" {
		size = "0"
	}

	prod := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DiscountPct: req.DiscountPct,
		Size:        size,
		Category:    req.Category,
		Images:      req.Images,
		InStock:     inStock,
		Rating:      req.Rating,
	}

	if err := s.Repo.CreateProduct(ctx, &prod); err != nil {
		return nil, fmt.Errorf("%w: create product: %v", ErrPersistence, err)
	}

	s.publish(ctx, map[string]any{"type": "product_created", "product_id": prod.ID, "name": prod.Name})
	s.syncIndex(ctx, &prod)
	return &prod, nil
}

func (s *CatalogService) PatchProduct(ctx context.Context, req transport.PatchProductRequest, id uuid.UUID) (*models.Product, error) {
	if req.Price != nil && *req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if req.DiscountPct != nil && *req.DiscountPct > 100 {
		return nil, fmt.Errorf("%w: discount_pct must be <= 100", ErrValidation)
	}

	prod, err := s.Repo.PatchProduct(ctx, req, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: patch product: %v", ErrPersistence, err)
	}

	s.publish(ctx, map[string]any{"type": "product_updated", "product_id": prod.ID, "name": prod.Name})
	s.syncIndex(ctx, prod)
	return prod, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return fmt.Errorf("%w: delete product: %v", ErrPersistence, err)
	}

	s.publish(ctx, map[string]any{"type": "product_deleted", "product_id": id})
	if s.Search != nil {
		if err := s.Search.DeleteProduct(ctx, id); err != nil {
			logging.FromContext(ctx).Warn("search_delete_failed", "product_id", id, "error", err)
		}
	}
	return nil
}

func (s *CatalogService) publish(ctx context.Context, event map[string]any) {
	if s.Producer == nil {
		return
	}
	key := fmt.Sprint(event["product_id"])
	if err := s.Producer.PublishEvent(ctx, "product_events", key, event); err != nil {
		logging.FromContext(ctx).Warn("kafka_publish_failed", "topic", "product_events", "error", err)
	}
}

func (s *CatalogService) syncIndex(ctx context.Context, prod *models.Product) {
	if s.Search == nil {
		return
	}
	if err := s.Search.IndexProduct(ctx, prod); err != nil {
		logging.FromContext(ctx).Warn("search_index_failed", "product_id", prod.ID, "error", err)
	}
}
