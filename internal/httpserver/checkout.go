package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/craftline/shop/internal/logging"
	"github.com/craftline/shop/internal/service"
)

type CheckoutHTTP struct {
	Svc *service.CheckoutService
}

// Checkout converts the session's cart into the outbound order: the
// response carries the chat deep link the storefront opens. The cart is
// already cleared and archived by the time the link is handed out.
func (h *CheckoutHTTP) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.checkout")

	session, err := sessionID(c)
	if err != nil {
		l.Warn("checkout_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.Svc.Checkout(ctx, session)
	if err != nil {
		l.Warn("checkout_error", "error", err)
		return httpError(err, "checkout failed, please retry")
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *CheckoutHTTP) Purchases(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.purchases")

	session, err := sessionID(c)
	if err != nil {
		l.Warn("purchases_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	records, err := h.Svc.PurchaseHistory(ctx, session)
	if err != nil {
		l.Error("purchases_error", "error", err)
		return httpError(err, "cannot list purchases")
	}

	return c.JSON(http.StatusOK, records)
}

func (h *CheckoutHTTP) Count(c echo.Context) error {
	ctx := c.Request().Context()

	count, err := h.Svc.Count(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("checkout_count_error", "error", err)
		return httpError(err, "cannot get checkout count")
	}

	return c.JSON(http.StatusOK, map[string]int64{"count": count})
}
