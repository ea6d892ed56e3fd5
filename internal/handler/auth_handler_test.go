package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shopcart/internal/auth"
	"shopcart/internal/model"
	"shopcart/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockAuthService) UserFromSession(ctx context.Context, sessionID string, userID uint) (*model.User, error) {
	args := m.Called(ctx, sessionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) UpsertUser(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newLoginEcho(svc service.AuthService) *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	h := NewAuthHandler(svc)
	e.POST("/login", h.Login)
	return e
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	res := rec.Result()
	for _, c := range res.Cookies() {
		if c.Name == auth.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("successful login sets the session cookie", func(t *testing.T) {
		mockSvc := new(MockAuthService)
		mockSvc.On("Login", mock.Anything, "alice", "alice-password").Return("signed-token", &model.User{ID: 1, Username: "alice"}, nil)

		e := newLoginEcho(mockSvc)
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"alice","password":"alice-password"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Logged in successfully")

		cookie := sessionCookie(rec)
		assert.NotNil(t, cookie)
		assert.Equal(t, "signed-token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
	})

	t.Run("wrong password yields 401 and no cookie", func(t *testing.T) {
		mockSvc := new(MockAuthService)
		mockSvc.On("Login", mock.Anything, "alice", "wrong").Return("", nil, service.ErrInvalidCredentials)

		e := newLoginEcho(mockSvc)
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"alice","password":"wrong"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Unauthorized. Invalid credentials")
		assert.Nil(t, sessionCookie(rec))
	})

	t.Run("missing fields yield 400", func(t *testing.T) {
		mockSvc := new(MockAuthService)

		e := newLoginEcho(mockSvc)
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"alice"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})
}
