package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/craftline/shop/internal/catalog"
	"github.com/craftline/shop/internal/logging"
	"github.com/craftline/shop/internal/service"
	"github.com/craftline/shop/internal/transport"
	"github.com/craftline/shop/internal/util"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

// GetProducts is the storefront listing: category filter, substring
// search, sort option and the load-more visible count, all composable.
func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	q := catalog.Query{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("q"),
		Sort:     catalog.ParseSort(c.QueryParam("sort")),
	}
	visible := util.ParseIntDefault(c.QueryParam("count"), catalog.PageStep)
	favorites := parseFavorites(c.QueryParam("favs"))

	result, err := h.Svc.ListProducts(ctx, q, favorites, visible)
	if err != nil {
		l.Error("get_products_error", "status", 500, "error", err)
		return httpError(err, "cannot list products")
	}

	l.Info("get_products_success", "total", result.Total, "visible", result.Visible)
	return c.JSON(http.StatusOK, map[string]any{
		"data": result.Views,
		"meta": map[string]any{
			"total":    result.Total,
			"visible":  result.Visible,
			"has_more": result.Visible < result.Total,
		},
	})
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("get_product_failed", "status", 400, "reason", "id is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	view, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		l.Warn("get_product_failed", "error", err)
		return httpError(err, "cannot get product")
	}

	return c.JSON(http.StatusOK, view)
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod, err := h.Svc.CreateProduct(ctx, req)
	if err != nil {
		l.Error("product_create_error", "error", err)
		return httpError(err, "cannot create product")
	}

	l.Info("create_product_success", "product_id", prod.ID)
	return c.JSON(http.StatusCreated, prod)
}

func (h *CatalogHTTP) PatchProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.patch_product")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("product_patch_error", "status", 400, "reason", "id is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	var req transport.PatchProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_patch_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod, err := h.Svc.PatchProduct(ctx, req, id)
	if err != nil {
		l.Warn("product_patch_error", "error", err)
		return httpError(err, "cannot patch product")
	}

	l.Info("patch_product_success", "product_id", prod.ID)
	return c.JSON(http.StatusOK, prod)
}

func (h *CatalogHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("product_delete_error", "status", 400, "reason", "id is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		l.Warn("product_delete_error", "error", err)
		return httpError(err, "cannot delete product")
	}

	l.Info("delete_product_success", "product_id", id)
	return c.NoContent(http.StatusNoContent)
}
