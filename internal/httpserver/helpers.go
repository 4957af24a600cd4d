package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/craftline/shop/internal/service"
)

// HeaderSessionID carries the client's cart identity: a UUID the
// storefront generates once and keeps in its durable storage.
const HeaderSessionID = "X-Session-ID"

func sessionID(c echo.Context) (uuid.UUID, error) {
	raw := c.Request().Header.Get(HeaderSessionID)
	if raw == "" {
		return uuid.Nil, errors.New("missing " + HeaderSessionID + " header")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New(HeaderSessionID + " is not a uuid")
	}
	return id, nil
}

// httpError maps the service error taxonomy onto HTTP statuses.
func httpError(err error, fallback string) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, fallback)
	}
}

// parseFavorites reads the comma-separated favourite product IDs the
// client keeps session-locally. Invalid entries are skipped.
func parseFavorites(raw string) map[uuid.UUID]struct{} {
	if raw == "" {
		return nil
	}
	favs := make(map[uuid.UUID]struct{})
	for _, part := range strings.Split(raw, ",") {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		favs[id] = struct{}{}
	}
	return favs
}
