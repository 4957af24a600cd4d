// Package checkout reconciles a cart into the outbound order hand-off: the
// order lines with their totals, the human-readable message and the chat
// deep link the storefront opens.
package checkout

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/craftline/shop/internal/models"
)

// SizeNone is the sentinel meaning "size not applicable".
const SizeNone = "0"

type Line struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unit_price"`
	Quantity  uint      `json:"quantity"`
	Size      string    `json:"size"`
	Image     string    `json:"image"`
	Subtotal  int64     `json:"subtotal"`
}

type Order struct {
	Ref       string `json:"ref"`
	Lines     []Line `json:"lines"`
	ItemCount int    `json:"item_count"`
	Total     int64  `json:"total"`
}

// BuildOrder flattens cart items into order lines and computes subtotals
// and the grand total.
func BuildOrder(items []models.CartItem, now time.Time) Order {
	order := Order{
		Ref:       NewOrderRef(now),
		Lines:     make([]Line, 0, len(items)),
		ItemCount: len(items),
	}
	for _, it := range items {
		line := Line{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Size:      it.Size,
			Image:     it.Image,
			Subtotal:  it.UnitPrice * int64(it.Quantity),
		}
		order.Total += line.Subtotal
		order.Lines = append(order.Lines, line)
	}
	return order
}

const refAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewOrderRef builds a reference like ORD-1717171717171-x4k2. It exists for
// human readability in the chat message only: nothing deduplicates on it,
// so resubmitting the same cart produces a second order.
func NewOrderRef(now time.Time) string {
	var b strings.Builder
	for i := 0; i < 4; i++ {
		b.WriteByte(refAlphabet[rand.Intn(len(refAlphabet))])
	}
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), b.String())
}

// Message renders the plain-text order the customer sends over chat.
func (o Order) Message() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order %s\n\n", o.Ref)
	for i, line := range o.Lines {
		fmt.Fprintf(&b, "%d. %s\n", i+1, line.Name)
		if line.Size != "" && line.Size != SizeNone {
			fmt.Fprintf(&b, "   Size: %s\n", line.Size)
		}
		fmt.Fprintf(&b, "   Price: ₹%d x %d = ₹%d\n", line.UnitPrice, line.Quantity, line.Subtotal)
		if line.Image != "" {
			fmt.Fprintf(&b, "   Image: %s\n", line.Image)
		}
	}
	fmt.Fprintf(&b, "\nItems: %d\nTotal: ₹%d\n", o.ItemCount, o.Total)
	return b.String()
}

// DeepLink builds the wa.me hand-off URL with the message URL-encoded.
// The hand-off is one way: nothing comes back from the chat service.
func DeepLink(phone, message string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + phone,
		RawQuery: url.Values{"text": {message}}.Encode(),
	}
	return u.String()
}
