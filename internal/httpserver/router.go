package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	authmw "github.com/Skotchmaster/workshop/internal/middleware/auth"
	loggingmw "github.com/Skotchmaster/workshop/internal/middleware/logging"
)

type Deps struct {
	Users      *UserHTTP
	Categories *CategoryHTTP
	Products   *ProductHTTP
	Orders     *OrderHTTP
	OrderItems *OrderItemHTTP
	Payments   *PaymentHTTP
	Auth       *AuthHTTP

	// JWTSecret switches on bearer auth for mutating routes when non-empty.
	JWTSecret []byte
	Ready     func(ctx context.Context) error
}

// New builds the echo instance with the standard middleware stack and all
// routes registered.
func New(logger *slog.Logger, d *Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newValidator()

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.Secure())
	e.Use(echomw.BodyLimit("1M"))
	e.Use(echomw.CORS())

	Register(e, d)
	return e
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready != nil {
			if err := d.Ready(c.Request().Context()); err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
			}
		}
		return c.NoContent(http.StatusOK)
	})

	mut := authmw.Optional(d.JWTSecret)
	g := e.Group("/workshop")

	g.POST("/auth/login", d.Auth.Login)

	g.GET("/users", d.Users.FindAll)
	g.GET("/users/:id", d.Users.FindByID)
	g.POST("/users", d.Users.Save)
	g.PUT("/users/:id", d.Users.Update, mut)
	g.DELETE("/users/:id", d.Users.Delete, mut)

	g.GET("/categories", d.Categories.FindAll)
	g.GET("/categories/:id", d.Categories.FindByID)
	g.POST("/categories", d.Categories.Save, mut)
	g.PUT("/categories/:id", d.Categories.Update, mut)
	g.DELETE("/categories/:id", d.Categories.Delete, mut)

	g.GET("/products/search", d.Products.SearchProducts)
	g.GET("/products", d.Products.FindAll)
	g.GET("/products/:id", d.Products.FindByID)
	g.POST("/products", d.Products.Save, mut)
	g.PUT("/products/:id", d.Products.Update, mut)
	g.DELETE("/products/:id", d.Products.Delete, mut)

	g.GET("/orders", d.Orders.FindAll)
	g.GET("/orders/:id", d.Orders.FindByID)
	g.POST("/orders", d.Orders.Save, mut)
	g.PUT("/orders/:id", d.Orders.Update, mut)
	g.DELETE("/orders/:id", d.Orders.Delete, mut)
	g.POST("/orders/:id/items", d.Orders.AddItem, mut)

	g.GET("/order-items", d.OrderItems.FindAll)
	g.GET("/order-items/:orderId/:productId", d.OrderItems.FindByID)
	g.POST("/order-items", d.OrderItems.Save, mut)
	g.DELETE("/order-items/:orderId/:productId", d.OrderItems.Delete, mut)

	g.GET("/payments", d.Payments.FindAll)
	g.GET("/payments/:id", d.Payments.FindByID)
	g.POST("/payments", d.Payments.Save, mut)
	g.PUT("/payments/:id", d.Payments.Update, mut)
	g.DELETE("/payments/:id", d.Payments.Delete, mut)
}
