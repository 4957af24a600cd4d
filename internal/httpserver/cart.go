package httpserver

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/craftline/shop/internal/logging"
	"github.com/craftline/shop/internal/models"
	"github.com/craftline/shop/internal/service"
	"github.com/craftline/shop/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	session, err := sessionID(c)
	if err != nil {
		l.Warn("get_cart_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items, err := h.Svc.Get(ctx, session)
	if err != nil {
		l.Error("get_cart_error", "error", err)
		return httpError(err, "cannot get cart")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	session, err := sessionID(c)
	if err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req transport.CartItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, created, err := h.Svc.Add(ctx, session, req.ProductID)
	if err != nil {
		l.Warn("add_to_cart_error", "error", err)
		return httpError(err, "cannot add to cart")
	}

	// Duplicate adds are a silent no-op, not an error.
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	l.Info("add_to_cart_success", "product_id", req.ProductID, "created", created)
	return c.JSON(status, item)
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	session, err := sessionID(c)
	if err != nil {
		l.Warn("remove_from_cart_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req transport.CartItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("remove_from_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.Remove(ctx, session, req.ProductID); err != nil {
		l.Warn("remove_from_cart_error", "error", err)
		return httpError(err, "cannot remove from cart")
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CartHTTP) IncreaseQuantity(c echo.Context) error {
	return h.updateQuantity(c, "cart.increase", h.Svc.Increase)
}

func (h *CartHTTP) DecreaseQuantity(c echo.Context) error {
	return h.updateQuantity(c, "cart.decrease", h.Svc.Decrease)
}

func (h *CartHTTP) updateQuantity(c echo.Context, name string, op func(context.Context, uuid.UUID, uuid.UUID) (*models.CartItem, error)) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", name)

	session, err := sessionID(c)
	if err != nil {
		l.Warn("update_quantity_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req transport.CartItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_quantity_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := op(ctx, session, req.ProductID)
	if err != nil {
		l.Warn("update_quantity_error", "error", err)
		return httpError(err, "cannot update quantity")
	}

	return c.JSON(http.StatusOK, item)
}
