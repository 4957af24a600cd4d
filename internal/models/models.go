package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID          uuid.UUID `gorm:"primaryKey"                json:"id"`
	Name        string    `gorm:"not null"                  json:"name"`
	Description string    `gorm:"not null"                  json:"description"`
	Price       int64     `gorm:"not null"                  json:"price"`
	DiscountPct uint      `gorm:"default:0"                 json:"discount_pct"`
	Size        string    `gorm:"default:'0'"               json:"size"`
	Category    string    `json:"category"`
	Images      []string  `gorm:"type:text;serializer:json" json:"images"`
	InStock     bool      `gorm:"default:true"              json:"in_stock"`
	Rating      float64   `gorm:"default:0"                 json:"rating"`
	CreatedAt   time.Time `gorm:"autoCreateTime"            json:"created_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// CoverImage is the first image of the product, "" when none are set.
func (p *Product) CoverImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// CartItem carries a full snapshot of the product taken at add time, so
// later catalog edits never change what is already in a cart.
type CartItem struct {
	ID          uuid.UUID `gorm:"primaryKey"                               json:"id"`
	SessionID   uuid.UUID `gorm:"uniqueIndex:idx_session_product;not null" json:"session_id"`
	ProductID   uuid.UUID `gorm:"uniqueIndex:idx_session_product;not null" json:"product_id"`
	Name        string    `gorm:"not null"                                 json:"name"`
	UnitPrice   int64     `gorm:"not null"                                 json:"unit_price"`
	DiscountPct uint      `gorm:"default:0"                                json:"discount_pct"`
	Size        string    `json:"size"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Quantity    uint      `gorm:"default:1;check:quantity>0"               json:"quantity"`
	AddedAt     int64     `gorm:"autoCreateTime:milli"                     json:"added_at"`
}

func (c *CartItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (CartItem) TableName() string {
	return "cart_items"
}

// PurchaseRecord is the append-only checkout archive. Rows are created in
// bulk when a cart is checked out and are never updated or deleted.
type PurchaseRecord struct {
	ID          uuid.UUID `gorm:"primaryKey"     json:"id"`
	SessionID   uuid.UUID `gorm:"index;not null" json:"session_id"`
	ProductID   uuid.UUID `gorm:"not null"       json:"product_id"`
	OrderRef    string    `gorm:"index;not null" json:"order_ref"`
	Name        string    `gorm:"not null"       json:"name"`
	UnitPrice   int64     `gorm:"not null"       json:"unit_price"`
	Quantity    uint      `gorm:"not null"       json:"quantity"`
	Size        string    `json:"size"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	PurchasedAt int64     `gorm:"not null"       json:"purchased_at"`
}

func (p *PurchaseRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (PurchaseRecord) TableName() string {
	return "purchase_records"
}

// CheckoutCounter is a single-row running total of completed checkouts.
// It is accounting only and not transactional with the checkout itself.
type CheckoutCounter struct {
	ID    uint  `gorm:"primaryKey" json:"id"`
	Count int64 `gorm:"not null"   json:"count"`
}

func (CheckoutCounter) TableName() string {
	return "checkout_counters"
}
