package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	// SessionCookieName is the cookie that carries the session token.
	SessionCookieName = "shopcart_session"
	// SessionTTL bounds how long a session stays valid. The Redis entry
	// and the token carry the same expiry.
	SessionTTL = 24 * time.Hour
)

// Claims are embedded in the session cookie token. The token alone is not
// enough to authenticate: its ID (jti) must still resolve to a live
// session in the store.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService signs and validates session cookie tokens.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
	}
}

// Generate creates a signed session token for the user. The session ID is
// returned separately for storage in Redis.
func (s *TokenService) Generate(userID uint, username string) (sessionID string, token string, err error) {
	sessionID = uuid.New().String()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = tokenObj.SignedString(s.secret)
	return sessionID, token, err
}

// Validate validates a session token and returns its claims.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.ID == "" {
		return nil, errors.New("session ID not found")
	}

	return claims, nil
}
