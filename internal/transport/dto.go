package transport

import "github.com/google/uuid"

type CreateProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	DiscountPct uint     `json:"discount_pct"`
	Size        string   `json:"size"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	InStock     *bool    `json:"in_stock"`
	Rating      float64  `json:"rating"`
}

type PatchProductRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *int64    `json:"price"`
	DiscountPct *uint     `json:"discount_pct"`
	Size        *string   `json:"size"`
	Category    *string   `json:"category"`
	Images      *[]string `json:"images"`
	InStock     *bool     `json:"in_stock"`
	Rating      *float64  `json:"rating"`
}

type CartItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

type CheckoutResponse struct {
	OrderRef  string `json:"order_ref"`
	Link      string `json:"link"`
	Message   string `json:"message"`
	ItemCount int    `json:"item_count"`
	Total     int64  `json:"total"`
}
