package auth

import (
	"context"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"shopcart/internal/model"
)

const (
	userContextKey    = "currentUser"
	sessionContextKey = "sessionID"
)

// UserResolver resolves a verified session back to a full user record.
type UserResolver interface {
	UserFromSession(ctx context.Context, sessionID string, userID uint) (*model.User, error)
}

// CookieAuthConfig returns the echo-jwt configuration guarding
// session-protected routes: the token is read from the session cookie and
// rejected with 401 when missing, malformed, or expired.
func CookieAuthConfig(secret string) echojwt.Config {
	return echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "cookie:" + SessionCookieName,
	}
}

// LoadUser runs after the cookie token has been verified. It checks that
// the token's session is still live in the store and that its user still
// exists, then stashes the user on the request context for handlers.
// Either check failing means the session is no longer valid: 401.
func LoadUser(tokens *TokenService, users UserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session cookie")
			}

			claims, err := tokens.Validate(cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			user, err := users.UserFromSession(c.Request().Context(), claims.ID, claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			c.Set(userContextKey, user)
			c.Set(sessionContextKey, claims.ID)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user stored by LoadUser.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(userContextKey).(*model.User)
	return user, ok
}

// SessionID returns the session ID stored by LoadUser.
func SessionID(c echo.Context) (string, bool) {
	id, ok := c.Get(sessionContextKey).(string)
	return id, ok
}
