package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/craftline/shop/internal/checkout"
	"github.com/craftline/shop/internal/logging"
	"github.com/craftline/shop/internal/models"
	"github.com/craftline/shop/internal/mykafka"
	"github.com/craftline/shop/internal/repo"
	"github.com/craftline/shop/internal/transport"
)

type CheckoutService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer

	// Phone is the shop's WhatsApp number in international format
	// without the leading plus.
	Phone string

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *CheckoutService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Checkout reconciles the session's cart into a single outbound order:
// build the message and deep link, archive the purchases and clear the
// cart atomically, then bump the counter and emit the event best effort.
// A counter or event failure never loses an order; an archive failure
// aborts before any link is handed out.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID uuid.UUID) (*transport.CheckoutResponse, error) {
	items, err := s.Repo.GetCart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: get cart: %v", ErrFetch, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}

	now := s.now()
	order := checkout.BuildOrder(items, now)
	message := order.Message()
	link := checkout.DeepLink(s.Phone, message)

	records := make([]models.PurchaseRecord, 0, len(items))
	for _, it := range items {
		records = append(records, models.PurchaseRecord{
			SessionID:   it.SessionID,
			ProductID:   it.ProductID,
			OrderRef:    order.Ref,
			Name:        it.Name,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			Size:        it.Size,
			Category:    it.Category,
			Image:       it.Image,
			PurchasedAt: now.UnixMilli(),
		})
	}

	if err := s.Repo.ArchiveAndClear(ctx, sessionID, records); err != nil {
		return nil, fmt.Errorf("%w: archive purchases: %v", ErrPersistence, err)
	}

	l := logging.FromContext(ctx).With("order_ref", order.Ref)
	if _, err := s.Repo.IncrementCheckoutCount(ctx); err != nil {
		l.Warn("checkout_counter_failed", "error", err)
	}

	if s.Producer != nil {
		event := map[string]any{
			"type":       "checkout_completed",
			"order_ref":  order.Ref,
			"session_id": sessionID,
			"item_count": order.ItemCount,
			"total":      order.Total,
		}
		if err := s.Producer.PublishEvent(ctx, "checkout_events", order.Ref, event); err != nil {
			l.Warn("kafka_publish_failed", "topic", "checkout_events", "error", err)
		}
	}

	l.Info("checkout_completed", "item_count", order.ItemCount, "total", order.Total)
	return &transport.CheckoutResponse{
		OrderRef:  order.Ref,
		Link:      link,
		Message:   message,
		ItemCount: order.ItemCount,
		Total:     order.Total,
	}, nil
}

func (s *CheckoutService) PurchaseHistory(ctx context.Context, sessionID uuid.UUID) ([]models.PurchaseRecord, error) {
	records, err := s.Repo.ListPurchases(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: list purchases: %v", ErrFetch, err)
	}
	return records, nil
}

func (s *CheckoutService) Count(ctx context.Context) (int64, error) {
	count, err := s.Repo.GetCheckoutCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: checkout count: %v", ErrFetch, err)
	}
	return count, nil
}
