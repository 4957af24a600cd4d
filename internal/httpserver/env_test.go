package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/craftline/shop/internal/hash"
	"github.com/craftline/shop/internal/models"
	"github.com/craftline/shop/internal/repo"
	"github.com/craftline/shop/internal/service"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "craft_secret"
)

type testEnv struct {
	T         *testing.T
	E         *echo.Echo
	Repo      *repo.GormRepo
	JWTSecret []byte
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, repo.Migrate(db))

	store := &repo.GormRepo{DB: db}
	secret := []byte("test-jwt-secret")

	pwHash, err := hash.HashPassword(testAdminPassword)
	require.NoError(t, err)

	deps := &Deps{
		CatalogHandler:  &CatalogHTTP{Svc: &service.CatalogService{Repo: store}},
		CartHandler:     &CartHTTP{Svc: &service.CartService{Repo: store}},
		CheckoutHandler: &CheckoutHTTP{Svc: &service.CheckoutService{Repo: store, Phone: "919876543210"}},
		AuthHandler: &AuthHTTP{
			JWTSecret:         secret,
			AdminUsername:     testAdminUser,
			AdminPasswordHash: pwHash,
		},
		JWTSecret: secret,
	}

	e := echo.New()
	Register(e, deps)

	return &testEnv{T: t, E: e, Repo: store, JWTSecret: secret}
}

func (env *testEnv) do(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) login(t *testing.T) string {
	t.Helper()

	rec := env.do(http.MethodPost, "/api/v1/admin/login", map[string]string{
		"username": testAdminUser,
		"password": testAdminPassword,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func (env *testEnv) adminHeaders(t *testing.T) map[string]string {
	return map[string]string{echo.HeaderAuthorization: "Bearer " + env.login(t)}
}

func (env *testEnv) seedProduct(t *testing.T, name, category string, price int64, createdAt time.Time) *models.Product {
	t.Helper()

	prod := models.Product{
		Name:        name,
		Description: name + " description",
		Price:       price,
		Size:        "M",
		Category:    category,
		Images:      []string{"https://img.example/" + name + ".jpg"},
		InStock:     true,
		CreatedAt:   createdAt,
	}
	require.NoError(t, env.Repo.DB.Create(&prod).Error)
	return &prod
}
