package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shopcart/internal/auth"
	"shopcart/internal/errors"
	"shopcart/internal/service"
)

// CartHandler handles per-user cart endpoints. Every route here sits
// behind the session middleware.
type CartHandler struct {
	cartService service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Add godoc
// @Summary Add a product to the cart
// @Tags cart
// @Produce json
// @Param product_id path int true "Product ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/cart/add/{product_id} [post]
func (h *CartHandler) Add(c echo.Context) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}

	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrCartAddFailed)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if err := h.cartService.Add(c.Request().Context(), user.ID, uint(productID)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Item added to the cart successfully"})
}

// Remove godoc
// @Summary Remove one cart row for a product
// @Tags cart
// @Produce json
// @Param product_id path int true "Product ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/cart/remove/{product_id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}

	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrCartRemoveFailed)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if err := h.cartService.Remove(c.Request().Context(), user.ID, uint(productID)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Item removed from the cart successfully"})
}

// View godoc
// @Summary List the current user's cart
// @Tags cart
// @Produce json
// @Success 200 {array} service.CartLine
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/cart [get]
func (h *CartHandler) View(c echo.Context) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}

	lines, err := h.cartService.View(c.Request().Context(), user.ID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, lines)
}

// Checkout godoc
// @Summary Clear the current user's cart
// @Tags cart
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/cart/checkout [post]
func (h *CartHandler) Checkout(c echo.Context) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}

	if err := h.cartService.Checkout(c.Request().Context(), user.ID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Checkout successful. Cart has been cleared."})
}
