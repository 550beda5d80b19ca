// file: service/auth_service.go

package service

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jeffschoe/chirpy/common"
	"github.com/jeffschoe/chirpy/logger"
	"github.com/jeffschoe/chirpy/model"
	"github.com/jeffschoe/chirpy/repository"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer is embedded in every access token and checked on every
// validation.
const TokenIssuer = "chirpy"

// refreshTokenBytes is the entropy of a refresh token before hex
// encoding (64 hex characters on the wire).
const refreshTokenBytes = 32

// AuthConfig carries the signing secret and token lifetimes into the
// service explicitly, instead of reading process-wide state.
type AuthConfig struct {
	Secret          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// AuthService composes password hashing, access token issuance and the
// refresh token lifecycle on top of the user and token repositories.
type AuthService struct {
	userRepo  repository.IUserRepository
	tokenRepo repository.ITokenRepository
	cfg       AuthConfig
}

func NewAuthService(userRepo repository.IUserRepository, tokenRepo repository.ITokenRepository, cfg AuthConfig) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		cfg:       cfg,
	}
}

// LoginResponse is the body returned by a successful login: the user's
// public fields plus a fresh access/refresh token pair.
type LoginResponse struct {
	model.User
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// HashPassword produces a salted bcrypt hash of the password.
func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash reports whether password matches the stored hash.
// It returns false for an empty password, a malformed hash, or a
// mismatch; it never surfaces an error to the caller. The comparison
// itself is bcrypt's constant-time digest check.
func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	if password == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// MakeJWT signs a new HS256 access token for the given user. A negative
// expiresIn mints an already-expired token; clamping to the configured
// ceiling is the caller's policy, not this function's.
func MakeJWT(userID uuid.UUID, secret string, expiresIn time.Duration) (string, error) {
	now := time.Now().UTC()

	claims := &jwt.RegisteredClaims{
		Issuer:    TokenIssuer,
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to sign JWT")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}

	return tokenString, nil
}

// ValidateJWT verifies the token's signature, issuer and expiry and
// returns the subject user id. Every failure mode is answered with the
// same 401 so callers cannot tell a forged token from an expired one.
func ValidateJWT(tokenString, secret string) (uuid.UUID, *common.AppError) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return uuid.Nil, common.Unauthenticated("Invalid or expired token", err)
	}

	if claims.Subject == "" {
		return uuid.Nil, common.Unauthenticated("Invalid or expired token", errors.New("token has no subject"))
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, common.Unauthenticated("Invalid or expired token", err)
	}

	return userID, nil
}

// MakeRefreshToken returns 32 bytes of cryptographically secure
// randomness, hex-encoded. The value is opaque; all meaning lives in
// the refresh_tokens table.
func MakeRefreshToken() (string, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GetBearerToken extracts the credential from an
// "Authorization: Bearer <token>" header.
func GetBearerToken(header string) (string, *common.AppError) {
	return credentialFromHeader(header, "Bearer")
}

// GetAPIKey extracts the credential from an
// "Authorization: ApiKey <key>" header.
func GetAPIKey(header string) (string, *common.AppError) {
	return credentialFromHeader(header, "ApiKey")
}

// credentialFromHeader splits the header on whitespace and requires at
// least two fields with an exact scheme literal first. Anything after
// the credential is ignored. A missing or malformed header is a
// malformed request, not a failed credential, hence 400.
func credentialFromHeader(header, scheme string) (string, *common.AppError) {
	parts := strings.Fields(header)
	if len(parts) < 2 || parts[0] != scheme {
		return "", common.BadRequest("Malformed authorization header", nil)
	}
	return parts[1], nil
}

// Login verifies the credentials and, on success, issues an access
// token and a persisted refresh token. An unknown email and a wrong
// password produce the identical response. A caller-supplied expiresIn
// is honored only when it is shorter than the configured default; it is
// a ceiling, never an extension.
func (s *AuthService) Login(email, password string, expiresIn time.Duration) (*LoginResponse, *common.AppError) {
	if email == "" || password == "" {
		return nil, common.BadRequest("Missing required fields", nil)
	}

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.Unauthenticated("Incorrect email or password", nil)
		}
		return nil, common.Internal("Could not log in", err)
	}

	if !s.CheckPasswordHash(password, user.HashedPassword) {
		return nil, common.Unauthenticated("Incorrect email or password", nil)
	}

	ttl := s.cfg.AccessTokenTTL
	if expiresIn > 0 && expiresIn < s.cfg.AccessTokenTTL {
		ttl = expiresIn
	}

	accessToken, err := MakeJWT(user.ID, s.cfg.Secret, ttl)
	if err != nil {
		return nil, common.Internal("Could not log in", err)
	}

	refreshToken, err := MakeRefreshToken()
	if err != nil {
		return nil, common.Internal("Could not log in", err)
	}

	err = s.tokenRepo.Create(&model.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(s.cfg.RefreshTokenTTL),
	})
	if err != nil {
		// Storage failures surface as 401 here; the real cause is in
		// the logs.
		logger.Log.WithError(err).WithField("user_id", user.ID).Error("Failed to persist refresh token at login")
		return nil, common.Unauthenticated("Incorrect email or password", err)
	}

	return &LoginResponse{
		User:         *user,
		Token:        accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token at the
// default lifetime. The refresh token itself is not rotated. Unknown,
// expired and revoked tokens are indistinguishable to the caller.
func (s *AuthService) Refresh(refreshToken string) (string, *common.AppError) {
	stored, err := s.tokenRepo.GetActiveByToken(refreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.Unauthenticated("Invalid or expired refresh token", nil)
		}
		return "", common.Internal("Could not refresh token", err)
	}

	accessToken, err := MakeJWT(stored.UserID, s.cfg.Secret, s.cfg.AccessTokenTTL)
	if err != nil {
		return "", common.Internal("Could not refresh token", err)
	}

	return accessToken, nil
}

// Revoke permanently invalidates a refresh token. Revoking an unknown
// or already-revoked token is not an error.
func (s *AuthService) Revoke(refreshToken string) *common.AppError {
	if err := s.tokenRepo.Revoke(refreshToken); err != nil {
		return common.Internal("Could not revoke token", err)
	}
	return nil
}

// AuthenticateRequest resolves the identity behind a protected request:
// bearer extraction first (400 on a malformed header), then token
// validation (401 on a bad credential).
func (s *AuthService) AuthenticateRequest(authHeader string) (uuid.UUID, *common.AppError) {
	tokenString, appErr := GetBearerToken(authHeader)
	if appErr != nil {
		return uuid.Nil, appErr
	}
	return ValidateJWT(tokenString, s.cfg.Secret)
}
