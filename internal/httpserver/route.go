package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/craftline/shop/internal/middleware/auth"
)

type Deps struct {
	CatalogHandler  *CatalogHTTP
	CartHandler     *CartHTTP
	CheckoutHandler *CheckoutHTTP
	AuthHandler     *AuthHTTP
	SearchHandler   *SearchHTTP
	JWTSecret       []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	v1 := e.Group("/api/v1")

	products := v1.Group("/products")
	products.GET("", d.CatalogHandler.GetProducts)
	products.GET("/:id", d.CatalogHandler.GetProduct)

	if d.SearchHandler != nil {
		v1.GET("/search", d.SearchHandler.Search)
	}

	cart := v1.Group("/cart")
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.DELETE("", d.CartHandler.RemoveFromCart)
	cart.POST("/increase", d.CartHandler.IncreaseQuantity)
	cart.POST("/decrease", d.CartHandler.DecreaseQuantity)
	cart.POST("/checkout", d.CheckoutHandler.Checkout)

	v1.GET("/purchases", d.CheckoutHandler.Purchases)
	v1.GET("/checkout/count", d.CheckoutHandler.Count)

	admin := v1.Group("/admin")
	admin.POST("/login", d.AuthHandler.Login)

	guarded := admin.Group("", authmw.RequireAdmin(d.JWTSecret))
	guarded.POST("/products", d.CatalogHandler.CreateProduct)
	guarded.PATCH("/products/:id", d.CatalogHandler.PatchProduct)
	guarded.DELETE("/products/:id", d.CatalogHandler.DeleteProduct)
}
