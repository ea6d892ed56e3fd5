package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"shopcart/internal/auth"
	"shopcart/internal/errors"
	"shopcart/internal/service"
)

// AuthHandler handles the login and logout endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// MessageResponse is the acknowledgment body used across the API.
type MessageResponse struct {
	Message string `json:"message"`
}

// Login godoc
// @Summary Log in and establish a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Message: "Unauthorized. Invalid credentials",
				Code:    "INVALID_CREDENTIALS",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Message: "failed to login",
			Code:    "LOGIN_FAILED",
		})
	}

	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(auth.SessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, MessageResponse{Message: "Logged in successfully"})
}

// Logout godoc
// @Summary Log out and terminate the session
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sessionID, ok := auth.SessionID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}

	if err := h.authService.Logout(c.Request().Context(), sessionID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Message: "failed to logout",
			Code:    "LOGOUT_FAILED",
		})
	}

	// Expire the cookie; the server-side session is already gone.
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}
