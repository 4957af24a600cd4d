package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/craftline/shop/internal/logging"
	"github.com/craftline/shop/internal/search"
	"github.com/craftline/shop/internal/util"
)

// SearchHTTP serves the fuzzy, ranked Elasticsearch search. The exact
// substring filter used by the storefront listing lives in the catalog
// engine instead.
type SearchHTTP struct {
	Client *search.Client
}

func (h *SearchHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "search.search")

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, size := util.Calculate(page, size)

	total, products, err := h.Client.Search(ctx, q, from, size)
	if err != nil {
		l.Error("search_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}

	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": products})
}
