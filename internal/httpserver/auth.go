package httpserver

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/craftline/shop/internal/hash"
	"github.com/craftline/shop/internal/logging"
	"github.com/craftline/shop/internal/transport"
)

const accessTokenTTL = 15 * time.Minute

// AuthHTTP implements the single-admin login. There are no user accounts:
// the one admin identity comes from configuration.
type AuthHTTP struct {
	JWTSecret         []byte
	AdminUsername     string
	AdminPasswordHash string
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if req.Username != h.AdminUsername || !hash.CheckPassword(h.AdminPasswordHash, req.Password) {
		l.Warn("login_error", "status", 401, "reason", "invalid credentials")
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
	}

	exp := time.Now().Add(accessTokenTTL)
	claims := jwt.MapClaims{
		"sub":  req.Username,
		"role": "admin",
		"exp":  exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.JWTSecret)
	if err != nil {
		l.Error("login_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot sign token")
	}

	l.Info("login_success")
	return c.JSON(http.StatusOK, transport.LoginResponse{
		AccessToken: token,
		ExpiresAt:   exp.Unix(),
	})
}
