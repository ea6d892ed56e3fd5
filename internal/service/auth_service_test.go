package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shopcart/internal/auth"
	"shopcart/internal/model"
)

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository, *MockSessionStore)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "alice",
			password: "alice-password",
			setupMock: func(mRepo *MockUserRepository, mSessions *MockSessionStore) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("alice-password"), 10)
				mRepo.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
					ID:           1,
					Username:     "alice",
					PasswordHash: string(hashedPassword),
				}, nil)
				mSessions.On("Create", mock.Anything, mock.Anything, uint(1), "alice", auth.SessionTTL).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "not-the-password",
			setupMock: func(mRepo *MockUserRepository, mSessions *MockSessionStore) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("alice-password"), 10)
				mRepo.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
					ID:           1,
					Username:     "alice",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "unknown username",
			username: "mallory",
			password: "whatever",
			setupMock: func(mRepo *MockUserRepository, mSessions *MockSessionStore) {
				mRepo.On("FindByUsername", mock.Anything, "mallory").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockSessions := new(MockSessionStore)
			tt.setupMock(mockRepo, mockSessions)

			tokens := auth.NewTokenService("test-secret")
			service := NewAuthService(mockRepo, tokens, mockSessions)

			token, user, err := service.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
				// No session may be established for a failed login.
				mockSessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)

				// The cookie token must carry the user and a session ID.
				claims, err := tokens.Validate(token)
				assert.NoError(t, err)
				assert.Equal(t, uint(1), claims.UserID)
				assert.NotEmpty(t, claims.ID)
			}

			mockRepo.AssertExpectations(t)
			mockSessions.AssertExpectations(t)
		})
	}
}

func TestAuthService_UserFromSession(t *testing.T) {
	const sessionID = "b2f4f7a0-0000-0000-0000-000000000000"

	tests := []struct {
		name          string
		userID        uint
		setupMock     func(*MockUserRepository, *MockSessionStore)
		expectedError error
	}{
		{
			name:   "valid session",
			userID: 1,
			setupMock: func(mRepo *MockUserRepository, mSessions *MockSessionStore) {
				mSessions.On("Get", mock.Anything, sessionID).Return(uint(1), "alice", nil)
				mRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Username: "alice"}, nil)
			},
			expectedError: nil,
		},
		{
			name:   "session revoked",
			userID: 1,
			setupMock: func(mRepo *MockUserRepository, mSessions *MockSessionStore) {
				mSessions.On("Get", mock.Anything, sessionID).Return(uint(0), "", fmt.Errorf("session not found"))
			},
			expectedError: ErrInvalidSession,
		},
		{
			name:   "session bound to a different user",
			userID: 2,
			setupMock: func(mRepo *MockUserRepository, mSessions *MockSessionStore) {
				mSessions.On("Get", mock.Anything, sessionID).Return(uint(1), "alice", nil)
			},
			expectedError: ErrInvalidSession,
		},
		{
			name:   "user no longer exists",
			userID: 1,
			setupMock: func(mRepo *MockUserRepository, mSessions *MockSessionStore) {
				mSessions.On("Get", mock.Anything, sessionID).Return(uint(1), "alice", nil)
				mRepo.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidSession,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockSessions := new(MockSessionStore)
			tt.setupMock(mockRepo, mockSessions)

			tokens := auth.NewTokenService("test-secret")
			service := NewAuthService(mockRepo, tokens, mockSessions)

			user, err := service.UserFromSession(context.Background(), sessionID, tt.userID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.userID, user.ID)
			}

			mockRepo.AssertExpectations(t)
			mockSessions.AssertExpectations(t)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockSessions := new(MockSessionStore)
	mockSessions.On("Delete", mock.Anything, "session-123").Return(nil)

	tokens := auth.NewTokenService("test-secret")
	service := NewAuthService(mockRepo, tokens, mockSessions)

	err := service.Logout(context.Background(), "session-123")

	assert.NoError(t, err)
	mockSessions.AssertExpectations(t)
}

func TestAuthService_UpsertUser(t *testing.T) {
	t.Run("creates a new user with a hashed password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockSessions := new(MockSessionStore)
		mockRepo.On("FindByUsername", mock.Anything, "carol").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		tokens := auth.NewTokenService("test-secret")
		service := NewAuthService(mockRepo, tokens, mockSessions)

		user, err := service.UpsertUser(context.Background(), "carol", "carol-password")

		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "carol", user.Username)
		assert.NotEmpty(t, user.PasswordHash)
		// The stored credential must not be the plaintext password.
		assert.NotEqual(t, "carol-password", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("carol-password")))

		mockRepo.AssertExpectations(t)
	})

	t.Run("rehashes an existing user's password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockSessions := new(MockSessionStore)
		existing := &model.User{ID: 7, Username: "carol", PasswordHash: "old-hash"}
		mockRepo.On("FindByUsername", mock.Anything, "carol").Return(existing, nil)
		mockRepo.On("Update", mock.Anything, existing).Return(nil)

		tokens := auth.NewTokenService("test-secret")
		service := NewAuthService(mockRepo, tokens, mockSessions)

		user, err := service.UpsertUser(context.Background(), "carol", "new-password")

		assert.NoError(t, err)
		assert.Equal(t, uint(7), user.ID)
		assert.NotEqual(t, "old-hash", user.PasswordHash)

		mockRepo.AssertExpectations(t)
	})
}
