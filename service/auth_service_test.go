// file: service/auth_service_test.go

package service

import (
	"database/sql"
	"encoding/hex"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jeffschoe/chirpy/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}
func (m *mockUserRepo) GetUserByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) GetUserByID(id uuid.UUID) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) UpdateUser(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}
func (m *mockUserRepo) UpgradeToChirpyRed(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *mockUserRepo) DeleteAllUsers() error {
	args := m.Called()
	return args.Error(0)
}

type mockTokenRepo struct{ mock.Mock }

func (m *mockTokenRepo) Create(token *model.RefreshToken) error {
	args := m.Called(token)
	return args.Error(0)
}
func (m *mockTokenRepo) GetActiveByToken(token string) (*model.RefreshToken, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RefreshToken), args.Error(1)
}
func (m *mockTokenRepo) Revoke(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func testAuthConfig() AuthConfig {
	return AuthConfig{
		Secret:          "test-secret",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 60 * 24 * time.Hour,
	}
}

// TestAuthService_HashAndCheckPassword ensures that password hashing and
// verification work correctly.
func TestAuthService_HashAndCheckPassword(t *testing.T) {
	// Hashing uses no repository dependencies, so nil repos are fine.
	authService := NewAuthService(nil, nil, testAuthConfig())
	password := "correctPassword123!"

	hashedPassword, err := authService.HashPassword(password)
	if err != nil {
		t.Fatalf("authService.HashPassword() returned an unexpected error: %v", err)
	}

	if hashedPassword == password {
		t.Errorf("Hashed password should not be the same as the original password.")
	}

	if !authService.CheckPasswordHash(password, hashedPassword) {
		t.Errorf("CheckPasswordHash() should have returned true for a matching password.")
	}

	if authService.CheckPasswordHash("anotherPassword456!", hashedPassword) {
		t.Errorf("CheckPasswordHash() should have returned false for a non-matching password.")
	}

	if authService.CheckPasswordHash("", hashedPassword) {
		t.Errorf("CheckPasswordHash() should have returned false for an empty password.")
	}

	if authService.CheckPasswordHash(password, "invalidhash") {
		t.Errorf("CheckPasswordHash() should have returned false for a malformed hash.")
	}
}

func TestMakeAndValidateJWT(t *testing.T) {
	userID := uuid.New()
	secret := "secret-one"

	t.Run("round trip", func(t *testing.T) {
		token, err := MakeJWT(userID, secret, 10*time.Second)
		assert.NoError(t, err)

		subject, appErr := ValidateJWT(token, secret)
		assert.Nil(t, appErr)
		assert.Equal(t, userID, subject)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := MakeJWT(userID, secret, 10*time.Second)
		assert.NoError(t, err)

		_, appErr := ValidateJWT(token, "secret-two")
		assert.NotNil(t, appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		// Negative lifetimes are allowed on issue and mint a token that
		// is already expired.
		token, err := MakeJWT(userID, secret, -10*time.Second)
		assert.NoError(t, err)

		_, appErr := ValidateJWT(token, secret)
		assert.NotNil(t, appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, appErr := ValidateJWT("not-a-real-token", secret)
		assert.NotNil(t, appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		claims := &jwt.RegisteredClaims{
			Issuer:    "someone-else",
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		assert.NoError(t, err)

		_, appErr := ValidateJWT(token, secret)
		assert.NotNil(t, appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	})

	t.Run("missing subject", func(t *testing.T) {
		claims := &jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		assert.NoError(t, err)

		_, appErr := ValidateJWT(token, secret)
		assert.NotNil(t, appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	})
}

func TestMakeRefreshToken(t *testing.T) {
	token1, err := MakeRefreshToken()
	assert.NoError(t, err)
	token2, err := MakeRefreshToken()
	assert.NoError(t, err)

	assert.Len(t, token1, 64)
	assert.Len(t, token2, 64)
	assert.NotEqual(t, token1, token2)

	_, err = hex.DecodeString(token1)
	assert.NoError(t, err, "refresh token should be valid hex")
}

func TestGetBearerToken(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		want     string
		wantCode int
	}{
		{"valid header", "Bearer abc123", "abc123", 0},
		{"trailing garbage is ignored", "Bearer abc123 extra", "abc123", 0},
		{"scheme only", "Bearer", "", http.StatusBadRequest},
		{"wrong scheme", "Basic abc123", "", http.StatusBadRequest},
		{"lowercase scheme", "bearer abc123", "", http.StatusBadRequest},
		{"empty header", "", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, appErr := GetBearerToken(tt.header)
			if tt.wantCode == 0 {
				assert.Nil(t, appErr)
				assert.Equal(t, tt.want, got)
			} else {
				assert.NotNil(t, appErr)
				assert.Equal(t, tt.wantCode, appErr.Code)
			}
		})
	}
}

func TestGetAPIKey(t *testing.T) {
	key, appErr := GetAPIKey("ApiKey my-key")
	assert.Nil(t, appErr)
	assert.Equal(t, "my-key", key)

	_, appErr = GetAPIKey("Bearer my-key")
	assert.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)

	_, appErr = GetAPIKey("ApiKey")
	assert.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}

func TestAuthService_Login(t *testing.T) {
	email := "walt@breakingbad.com"
	password := "heisenberg"

	hasher := NewAuthService(nil, nil, testAuthConfig())
	hashedPassword, err := hasher.HashPassword(password)
	assert.NoError(t, err)

	user := &model.User{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: hashedPassword,
	}

	t.Run("missing fields", func(t *testing.T) {
		authService := NewAuthService(new(mockUserRepo), new(mockTokenRepo), testAuthConfig())

		_, appErr := authService.Login("", password, 0)
		assert.NotNil(t, appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)

		_, appErr = authService.Login(email, "", 0)
		assert.NotNil(t, appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("GetUserByEmail", "nobody@breakingbad.com").Return(nil, sql.ErrNoRows).Once()
		userRepo.On("GetUserByEmail", email).Return(user, nil).Once()

		authService := NewAuthService(userRepo, new(mockTokenRepo), testAuthConfig())

		_, unknownErr := authService.Login("nobody@breakingbad.com", password, 0)
		_, wrongPassErr := authService.Login(email, "wrongpassword", 0)

		assert.NotNil(t, unknownErr)
		assert.NotNil(t, wrongPassErr)
		assert.Equal(t, http.StatusUnauthorized, unknownErr.Code)
		assert.Equal(t, unknownErr.Code, wrongPassErr.Code)
		assert.Equal(t, unknownErr.Message, wrongPassErr.Message)
		userRepo.AssertExpectations(t)
	})

	t.Run("success issues access and refresh tokens", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("GetUserByEmail", email).Return(user, nil).Once()

		tokenRepo := new(mockTokenRepo)
		tokenRepo.On("Create", mock.MatchedBy(func(rt *model.RefreshToken) bool {
			return rt.UserID == user.ID && len(rt.Token) == 64 && rt.ExpiresAt.After(time.Now())
		})).Return(nil).Once()

		authService := NewAuthService(userRepo, tokenRepo, testAuthConfig())

		resp, appErr := authService.Login(email, password, 0)
		assert.Nil(t, appErr)
		assert.NotEmpty(t, resp.Token)
		assert.Len(t, resp.RefreshToken, 64)

		subject, appErr := ValidateJWT(resp.Token, testAuthConfig().Secret)
		assert.Nil(t, appErr)
		assert.Equal(t, user.ID, subject)

		userRepo.AssertExpectations(t)
		tokenRepo.AssertExpectations(t)
	})

	t.Run("requested lifetime is a ceiling, never an extension", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("GetUserByEmail", email).Return(user, nil).Twice()

		tokenRepo := new(mockTokenRepo)
		tokenRepo.On("Create", mock.Anything).Return(nil).Twice()

		authService := NewAuthService(userRepo, tokenRepo, testAuthConfig())

		// Shorter than the default: honored.
		resp, appErr := authService.Login(email, password, time.Minute)
		assert.Nil(t, appErr)
		assert.Equal(t, time.Minute, tokenLifetime(t, resp.Token))

		// Longer than the default: silently clamped.
		resp, appErr = authService.Login(email, password, 48*time.Hour)
		assert.Nil(t, appErr)
		assert.Equal(t, testAuthConfig().AccessTokenTTL, tokenLifetime(t, resp.Token))
	})

	t.Run("refresh token store failure surfaces as unauthorized", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("GetUserByEmail", email).Return(user, nil).Once()

		tokenRepo := new(mockTokenRepo)
		tokenRepo.On("Create", mock.Anything).Return(errors.New("connection refused")).Once()

		authService := NewAuthService(userRepo, tokenRepo, testAuthConfig())

		_, appErr := authService.Login(email, password, 0)
		assert.NotNil(t, appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	})
}

// tokenLifetime parses the token without validation and returns exp-iat.
func tokenLifetime(t *testing.T, tokenString string) time.Duration {
	t.Helper()
	claims := &jwt.RegisteredClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	assert.NoError(t, err)
	return claims.ExpiresAt.Sub(claims.IssuedAt.Time)
}

func TestAuthService_Refresh(t *testing.T) {
	userID := uuid.New()

	t.Run("valid refresh token yields a new access token", func(t *testing.T) {
		refreshToken, err := MakeRefreshToken()
		assert.NoError(t, err)

		tokenRepo := new(mockTokenRepo)
		tokenRepo.On("GetActiveByToken", refreshToken).Return(&model.RefreshToken{
			Token:     refreshToken,
			UserID:    userID,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil).Once()

		authService := NewAuthService(new(mockUserRepo), tokenRepo, testAuthConfig())

		accessToken, appErr := authService.Refresh(refreshToken)
		assert.Nil(t, appErr)

		subject, appErr := ValidateJWT(accessToken, testAuthConfig().Secret)
		assert.Nil(t, appErr)
		assert.Equal(t, userID, subject)
		tokenRepo.AssertExpectations(t)
	})

	t.Run("unknown, expired and revoked tokens are uniform", func(t *testing.T) {
		tokenRepo := new(mockTokenRepo)
		tokenRepo.On("GetActiveByToken", mock.Anything).Return(nil, sql.ErrNoRows)

		authService := NewAuthService(new(mockUserRepo), tokenRepo, testAuthConfig())

		_, appErr := authService.Refresh("deadbeef")
		assert.NotNil(t, appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	})

	t.Run("store connectivity failure is internal", func(t *testing.T) {
		tokenRepo := new(mockTokenRepo)
		tokenRepo.On("GetActiveByToken", mock.Anything).Return(nil, errors.New("connection refused"))

		authService := NewAuthService(new(mockUserRepo), tokenRepo, testAuthConfig())

		_, appErr := authService.Refresh("deadbeef")
		assert.NotNil(t, appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	})
}

func TestAuthService_Revoke(t *testing.T) {
	refreshToken, err := MakeRefreshToken()
	assert.NoError(t, err)

	tokenRepo := new(mockTokenRepo)
	tokenRepo.On("Revoke", refreshToken).Return(nil).Once()
	// Once revoked, the store answers lookups as if the token never
	// existed, regardless of its expiry timestamp.
	tokenRepo.On("GetActiveByToken", refreshToken).Return(nil, sql.ErrNoRows)

	authService := NewAuthService(new(mockUserRepo), tokenRepo, testAuthConfig())

	appErr := authService.Revoke(refreshToken)
	assert.Nil(t, appErr)

	_, appErr = authService.Refresh(refreshToken)
	assert.NotNil(t, appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	tokenRepo.AssertExpectations(t)
}

func TestAuthService_AuthenticateRequest(t *testing.T) {
	cfg := testAuthConfig()
	authService := NewAuthService(nil, nil, cfg)
	userID := uuid.New()

	t.Run("valid bearer token", func(t *testing.T) {
		token, err := MakeJWT(userID, cfg.Secret, time.Minute)
		assert.NoError(t, err)

		subject, appErr := authService.AuthenticateRequest("Bearer " + token)
		assert.Nil(t, appErr)
		assert.Equal(t, userID, subject)
	})

	t.Run("missing header is a bad request", func(t *testing.T) {
		_, appErr := authService.AuthenticateRequest("")
		assert.NotNil(t, appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		_, appErr := authService.AuthenticateRequest("Bearer garbage")
		assert.NotNil(t, appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	})
}
