package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"shopcart/internal/service"
)

// SeedHandler handles the development seed endpoint. Users have no
// registration route, so this (and cmd/seed) is how they come to exist.
type SeedHandler struct {
	authService    service.AuthService
	catalogService service.CatalogService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(authService service.AuthService, catalogService service.CatalogService) *SeedHandler {
	return &SeedHandler{
		authService:    authService,
		catalogService: catalogService,
	}
}

// SeedDemoResponse represents the seed response.
type SeedDemoResponse struct {
	Message  string `json:"message"`
	Users    int    `json:"users"`
	Products int    `json:"products"`
}

type demoUser struct {
	Username string
	Password string
}

type demoProduct struct {
	Name        string
	Price       string
	Description string
}

var demoUsers = []demoUser{
	{Username: "alice", Password: "alice-password"},
	{Username: "bob", Password: "bob-password"},
}

var demoProducts = []demoProduct{
	{Name: "Widget", Price: "9.99", Description: "A standard widget"},
	{Name: "Gadget", Price: "24.50", Description: ""},
	{Name: "Doohickey", Price: "3.25", Description: "Assorted colors"},
}

// SeedDemo godoc
// @Summary Seed demo users and products
// @Tags seed
// @Produce json
// @Success 200 {object} SeedDemoResponse
// @Failure 500 {object} map[string]string
// @Router /api/seed/demo [post]
func (h *SeedHandler) SeedDemo(c echo.Context) error {
	ctx := c.Request().Context()

	users := 0
	for _, u := range demoUsers {
		if _, err := h.authService.UpsertUser(ctx, u.Username, u.Password); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
				"message": fmt.Sprintf("failed to seed user %s: %v", u.Username, err),
			})
		}
		users++
	}

	// Products have no natural key, so only seed them into an empty catalog.
	products := 0
	existing, err := h.catalogService.List(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"message": fmt.Sprintf("failed to list products: %v", err),
		})
	}
	if len(existing) == 0 {
		for _, p := range demoProducts {
			if _, err := h.catalogService.Create(ctx, p.Name, json.RawMessage(p.Price), p.Description); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
					"message": fmt.Sprintf("failed to seed product %s: %v", p.Name, err),
				})
			}
			products++
		}
	}

	return c.JSON(http.StatusOK, SeedDemoResponse{
		Message:  "Demo data seeded successfully",
		Users:    users,
		Products: products,
	})
}
