package checkout

import (
	"net/url"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/craftline/shop/internal/models"
)

func sampleItems() []models.CartItem {
	return []models.CartItem{
		{
			ProductID: uuid.New(), Name: "Jute Basket", UnitPrice: 5100,
			Quantity: 1, Size: "M", Image: "https://img.example/basket.jpg",
		},
		{
			ProductID: uuid.New(), Name: "Terracotta Vase", UnitPrice: 13850,
			Quantity: 2, Size: SizeNone, Image: "https://img.example/vase.jpg",
		},
	}
}

func TestBuildOrderTotals(t *testing.T) {
	order := BuildOrder(sampleItems(), time.Now())

	require.Equal(t, 2, order.ItemCount)
	require.Equal(t, int64(5100), order.Lines[0].Subtotal)
	require.Equal(t, int64(27700), order.Lines[1].Subtotal)
	require.Equal(t, int64(32800), order.Total)
}

func TestBuildOrderEmptyCart(t *testing.T) {
	order := BuildOrder(nil, time.Now())
	require.Zero(t, order.ItemCount)
	require.Zero(t, order.Total)
	require.Empty(t, order.Lines)
}

func TestOrderRefFormat(t *testing.T) {
	now := time.UnixMilli(1717171717171)
	ref := NewOrderRef(now)
	require.Regexp(t, regexp.MustCompile(`^ORD-1717171717171-[0-9a-z]{4}$`), ref)
}

func TestMessageContents(t *testing.T) {
	order := BuildOrder(sampleItems(), time.Now())
	msg := order.Message()

	require.Contains(t, msg, "Order "+order.Ref)
	require.Contains(t, msg, "1. Jute Basket")
	require.Contains(t, msg, "Size: M")
	require.Contains(t, msg, "Price: ₹5100 x 1 = ₹5100")
	require.Contains(t, msg, "2. Terracotta Vase")
	require.Contains(t, msg, "Price: ₹13850 x 2 = ₹27700")
	require.Contains(t, msg, "Image: https://img.example/vase.jpg")
	require.Contains(t, msg, "Items: 2")
	require.Contains(t, msg, "Total: ₹32800")

	// The "0" sentinel means no size line for that item.
	require.NotContains(t, msg, "Size: 0")
}

func TestDeepLinkEncoding(t *testing.T) {
	link := DeepLink("919876543210", "Order ORD-1\nTotal: ₹32800")

	u, err := url.Parse(link)
	require.NoError(t, err)
	require.Equal(t, "https", u.Scheme)
	require.Equal(t, "wa.me", u.Host)
	require.Equal(t, "/919876543210", u.Path)
	require.Equal(t, "Order ORD-1\nTotal: ₹32800", u.Query().Get("text"))
}
