package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"shopcart/internal/auth"
	"shopcart/internal/config"
	"shopcart/internal/handler"
	"shopcart/internal/service"
)

// Register wires routes and middleware. Mutating catalog routes and every
// cart route sit behind the session guard; catalog reads are public.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokens *auth.TokenService,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Session guard: echo-jwt verifies the cookie token, LoadUser checks
	// the server-side session and resolves the current user.
	sessionRequired := []echo.MiddlewareFunc{
		echojwt.WithConfig(auth.CookieAuthConfig(cfg.SessionSecret)),
		auth.LoadUser(tokens, authService),
	}

	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout, sessionRequired...)

	api := e.Group("/api")

	// Public catalog reads
	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)

	// Catalog writes (any authenticated user; there is no per-product owner)
	api.POST("/products/add", productHandler.Create, sessionRequired...)
	api.PUT("/products/update/:id", productHandler.Update, sessionRequired...)
	api.DELETE("/products/delete/:id", productHandler.Delete, sessionRequired...)

	// Cart routes
	cart := api.Group("/cart", sessionRequired...)
	cart.GET("", cartHandler.View)
	cart.POST("/add/:product_id", cartHandler.Add)
	cart.DELETE("/remove/:product_id", cartHandler.Remove)
	cart.POST("/checkout", cartHandler.Checkout)

	// Development seed
	api.POST("/seed/demo", seedHandler.SeedDemo)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
