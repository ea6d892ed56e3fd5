package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shopcart/internal/errors"
	"shopcart/internal/model"
	"shopcart/internal/service"
)

// ProductHandler handles product catalog endpoints.
type ProductHandler struct {
	catalogService service.CatalogService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(catalogService service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// CreateProductRequest represents a product creation request. Price is
// kept as raw JSON so binding never rejects it; the price rule (a JSON
// number, strictly positive) lives in the catalog service.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Price       json.RawMessage `json:"price" swaggertype:"number"`
	Description string          `json:"description"`
}

// UpdateProductRequest represents a partial product update. Absent fields
// stay nil and are left untouched; an unusable price is ignored, not an
// error, and the other fields still apply.
type UpdateProductRequest struct {
	Name        *string         `json:"name"`
	Price       json.RawMessage `json:"price" swaggertype:"number"`
	Description *string         `json:"description"`
}

// Create godoc
// @Summary Add a product to the catalog
// @Tags products
// @Accept json
// @Produce json
// @Param request body CreateProductRequest true "Product data"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/products/add [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrInvalidProduct)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if err := c.Validate(&req); err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrInvalidProduct)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if _, err := h.catalogService.Create(c.Request().Context(), req.Name, req.Price, req.Description); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, MessageResponse{Message: "Product added successfully"})
}

// Get godoc
// @Summary Get product details
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrProductNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	product, err := h.catalogService.Get(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, product)
}

// List godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} model.Product
// @Router /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.catalogService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if products == nil {
		products = []model.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

// Update godoc
// @Summary Update product fields
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body UpdateProductRequest true "Fields to update"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/products/update/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrProductNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrInvalidProduct)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	input := service.UpdateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
	}
	if err := h.catalogService.Update(c.Request().Context(), uint(id), input); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Product updated successfully"})
}

// Delete godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/products/delete/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrProductNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if err := h.catalogService.Delete(c.Request().Context(), uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}
