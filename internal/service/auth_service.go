package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shopcart/internal/auth"
	"shopcart/internal/model"
	"shopcart/internal/repository"
)

const bcryptCost = 10

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidSession is returned when a session no longer resolves to a user.
	ErrInvalidSession = errors.New("invalid or expired session")
)

// AuthService handles login, logout, and session resolution.
type AuthService interface {
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
	Logout(ctx context.Context, sessionID string) error
	UserFromSession(ctx context.Context, sessionID string, userID uint) (*model.User, error)
	UpsertUser(ctx context.Context, username, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenService
	sessions auth.SessionStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenService, sessions auth.SessionStoreInterface) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		sessions: sessions,
	}
}

// Login verifies the credentials and establishes a server-side session.
// The returned token is the cookie value bound to that session.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	sessionID, token, err := s.tokens.Generate(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("generate session token: %w", err)
	}

	if err := s.sessions.Create(ctx, sessionID, user.ID, user.Username, auth.SessionTTL); err != nil {
		return "", nil, fmt.Errorf("store session: %w", err)
	}

	return token, user, nil
}

// Logout terminates the session. The cookie the client still holds stops
// resolving the moment the store entry is gone.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// UserFromSession resolves a session back to a full user record. A session
// whose store entry is gone, whose stored user differs from the token, or
// whose user no longer exists is invalid.
func (s *authService) UserFromSession(ctx context.Context, sessionID string, userID uint) (*model.User, error) {
	storedUserID, _, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, ErrInvalidSession
	}
	if storedUserID != userID {
		return nil, ErrInvalidSession
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrInvalidSession
	}
	return user, nil
}

// UpsertUser creates a user with a bcrypt-hashed password, or rehashes the
// password of an existing one. Used by the seed paths; there is no public
// registration endpoint.
func (s *authService) UpsertUser(ctx context.Context, username, password string) (*model.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	if existing != nil {
		existing.PasswordHash = string(hashedPassword)
		if err := s.userRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
		return existing, nil
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
