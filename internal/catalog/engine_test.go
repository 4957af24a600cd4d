package catalog

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/craftline/shop/internal/models"
)

func testProducts(now time.Time) []models.Product {
	return []models.Product{
		{
			ID: uuid.New(), Name: "Jute Basket", Description: "hand woven jute storage basket",
			Price: 5100, Category: "Baskets", Rating: 4.5, CreatedAt: now.Add(-1 * time.Hour),
		},
		{
			ID: uuid.New(), Name: "Terracotta Vase", Description: "clay vase with floral motif",
			Price: 13850, Category: " baskets ", CreatedAt: now.Add(-48 * time.Hour),
		},
		{
			ID: uuid.New(), Name: "Brass Lamp", Description: "antique finish brass oil lamp",
			Price: 2400, Category: "Decor", Rating: 3.9, CreatedAt: now.Add(-30 * 24 * time.Hour),
		},
		{
			ID: uuid.New(), Name: "Cane Tray", Description: "woven cane serving tray",
			Price: 900, CreatedAt: now.Add(-10 * 24 * time.Hour),
		},
	}
}

func decorated(t *testing.T, now time.Time) []View {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	return Decorate(testProducts(now), now, nil, rng)
}

func TestFilterCategoryAll(t *testing.T) {
	now := time.Now()
	views := decorated(t, now)

	got := Apply(views, Query{Category: CategoryAll})
	require.Len(t, got, len(views))

	got = Apply(views, Query{Category: "all"})
	require.Len(t, got, len(views))
}

func TestFilterCategoryTrimsAndLowercases(t *testing.T) {
	now := time.Now()
	views := decorated(t, now)

	got := Apply(views, Query{Category: "  BASKETS "})
	require.Len(t, got, 2)
	for _, v := range got {
		require.Equal(t, "baskets", normalize(v.Category))
	}
}

func TestFilterCategoryNoMatchIsEmptyNotError(t *testing.T) {
	views := decorated(t, time.Now())
	got := Apply(views, Query{Category: "Jewellery"})
	require.Empty(t, got)
}

func TestFallbackCategoryIsFilterable(t *testing.T) {
	views := decorated(t, time.Now())

	var fallback int
	for _, v := range views {
		if v.Category == FallbackCategory {
			fallback++
		}
	}
	require.Equal(t, 1, fallback)

	got := Apply(views, Query{Category: "uncategorized"})
	require.Len(t, got, 1)
	require.Equal(t, "Cane Tray", got[0].Name)
}

func TestSearchMatchesNameOrDescription(t *testing.T) {
	views := decorated(t, time.Now())

	got := Apply(views, Query{Search: "WOVEN"})
	require.Len(t, got, 2)
	names := []string{got[0].Name, got[1].Name}
	require.Contains(t, names, "Jute Basket")
	require.Contains(t, names, "Cane Tray")

	got = Apply(views, Query{Search: "vase"})
	require.Len(t, got, 1)
	require.Equal(t, "Terracotta Vase", got[0].Name)

	got = Apply(views, Query{Search: ""})
	require.Len(t, got, len(views))
}

func TestSortPriceLowHighAreReverses(t *testing.T) {
	views := decorated(t, time.Now())

	low := Apply(views, Query{Sort: SortPriceLow})
	high := Apply(views, Query{Sort: SortPriceHigh})
	require.Len(t, high, len(low))

	for i := range low {
		require.Equal(t, low[i].ID, high[len(high)-1-i].ID)
	}
	for i := 1; i < len(low); i++ {
		require.LessOrEqual(t, low[i-1].Price, low[i].Price)
	}
}

func TestSortNewestIsDefault(t *testing.T) {
	views := decorated(t, time.Now())

	got := Apply(views, Query{Sort: ParseSort("bogus")})
	for i := 1; i < len(got); i++ {
		require.False(t, got[i].CreatedAt.After(got[i-1].CreatedAt))
	}
	require.Equal(t, "Jute Basket", got[0].Name)
}

func TestSortRatingDescending(t *testing.T) {
	views := decorated(t, time.Now())
	got := Apply(views, Query{Sort: SortRating})
	for i := 1; i < len(got); i++ {
		require.GreaterOrEqual(t, got[i-1].Rating, got[i].Rating)
	}
}

func TestRatingSources(t *testing.T) {
	now := time.Now()
	rng := rand.New(rand.NewSource(7))
	views := Decorate(testProducts(now), now, nil, rng)

	for _, v := range views {
		switch v.Name {
		case "Jute Basket":
			require.Equal(t, RatingServer, v.RatingSource)
			require.Equal(t, 4.5, v.Rating)
		case "Terracotta Vase", "Cane Tray":
			require.Equal(t, RatingPlaceholder, v.RatingSource)
			require.GreaterOrEqual(t, v.Rating, 3.0)
			require.Less(t, v.Rating, 5.0)
		}
	}
}

func TestIsNewBoundary(t *testing.T) {
	now := time.Now()

	require.True(t, IsNew(now.Add(-(NewWindow - time.Millisecond)), now))
	require.False(t, IsNew(now.Add(-NewWindow), now))
	require.False(t, IsNew(now.Add(-(NewWindow + time.Millisecond)), now))
}

func TestDecorateFavorites(t *testing.T) {
	now := time.Now()
	products := testProducts(now)
	favs := map[uuid.UUID]struct{}{products[2].ID: {}}

	views := Decorate(products, now, favs, rand.New(rand.NewSource(1)))
	for _, v := range views {
		require.Equal(t, v.ID == products[2].ID, v.Favorite)
	}
}
