// Package catalog turns a freshly fetched product list into the exact list a
// storefront should display: derived display fields, category filter,
// free-text search, sort order and load-more pagination. It does no I/O.
package catalog

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/craftline/shop/internal/models"
)

// CategoryAll disables category filtering.
const CategoryAll = "All"

// FallbackCategory is shown for products saved without one.
const FallbackCategory = "Uncategorized"

// NewWindow is how long a product counts as "new" after creation.
const NewWindow = 7 * 24 * time.Hour

type SortOption string

const (
	SortNewest    SortOption = "newest"
	SortPriceLow  SortOption = "price_low"
	SortPriceHigh SortOption = "price_high"
	SortRating    SortOption = "rating"
)

// ParseSort maps a raw query value to a sort option, defaulting to newest.
func ParseSort(s string) SortOption {
	switch SortOption(s) {
	case SortPriceLow, SortPriceHigh, SortRating:
		return SortOption(s)
	default:
		return SortNewest
	}
}

type RatingSource string

const (
	// RatingServer means the stored rating was served verbatim.
	RatingServer RatingSource = "server"
	// RatingPlaceholder means the product has no stored rating and a random
	// filler value was drawn for this session. Sorting by rating is not
	// reproducible across sessions for such products.
	RatingPlaceholder RatingSource = "placeholder"
)

// View is a product enriched with the display-only fields the storefront
// renders. Views are per-request values and are never persisted.
type View struct {
	models.Product
	IsNew        bool         `json:"is_new"`
	Favorite     bool         `json:"favorite"`
	RatingSource RatingSource `json:"rating_source"`
}

type Query struct {
	Category string
	Search   string
	Sort     SortOption
}

// IsNew reports whether a product created at createdAt still counts as new
// at instant now. The window is strict: exactly NewWindow old is not new.
func IsNew(createdAt, now time.Time) bool {
	return now.Sub(createdAt) < NewWindow
}

// Decorate attaches derived display fields to every product. favorites holds
// the caller's session-local favourite IDs. rng feeds placeholder ratings
// and may be nil, in which case the shared math/rand source is used.
func Decorate(products []models.Product, now time.Time, favorites map[uuid.UUID]struct{}, rng *rand.Rand) []View {
	views := make([]View, 0, len(products))
	for _, p := range products {
		v := View{Product: p}
		if strings.TrimSpace(v.Category) == "" {
			v.Category = FallbackCategory
		}
		v.IsNew = IsNew(p.CreatedAt, now)
		if _, ok := favorites[p.ID]; ok {
			v.Favorite = true
		}
		if p.Rating > 0 {
			v.RatingSource = RatingServer
		} else {
			v.Rating = placeholderRating(rng)
			v.RatingSource = RatingPlaceholder
		}
		views = append(views, v)
	}
	return views
}

// placeholderRating draws marketing filler in [3.0, 5.0).
func placeholderRating(rng *rand.Rand) float64 {
	if rng == nil {
		return 3 + rand.Float64()*2
	}
	return 3 + rng.Float64()*2
}

// Apply runs the three independent query inputs over an already decorated
// list. Filtering never errors; no matches yields an empty slice.
func Apply(views []View, q Query) []View {
	out := filterCategory(views, q.Category)
	out = filterSearch(out, q.Search)
	sortViews(out, q.Sort)
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func filterCategory(views []View, category string) []View {
	want := normalize(category)
	if want == "" || want == normalize(CategoryAll) {
		return views
	}
	out := make([]View, 0, len(views))
	for _, v := range views {
		if normalize(v.Category) == want {
			out = append(out, v)
		}
	}
	return out
}

func filterSearch(views []View, term string) []View {
	want := strings.ToLower(strings.TrimSpace(term))
	if want == "" {
		return views
	}
	out := make([]View, 0, len(views))
	for _, v := range views {
		if strings.Contains(strings.ToLower(v.Name), want) ||
			strings.Contains(strings.ToLower(v.Description), want) {
			out = append(out, v)
		}
	}
	return out
}

func sortViews(views []View, opt SortOption) {
	switch opt {
	case SortPriceLow:
		sort.SliceStable(views, func(i, j int) bool { return views[i].Price < views[j].Price })
	case SortPriceHigh:
		sort.SliceStable(views, func(i, j int) bool { return views[i].Price > views[j].Price })
	case SortRating:
		sort.SliceStable(views, func(i, j int) bool { return views[i].Rating > views[j].Rating })
	default:
		sort.SliceStable(views, func(i, j int) bool { return views[i].CreatedAt.After(views[j].CreatedAt) })
	}
}
