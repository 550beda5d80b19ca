// file: repository/token_repository.go

package repository

import (
	"database/sql"

	"github.com/jeffschoe/chirpy/logger"
	"github.com/jeffschoe/chirpy/model"
	"github.com/sirupsen/logrus"
)

// ITokenRepository defines the contract for refresh token database
// operations. GetActiveByToken answers uniformly for unknown, expired
// and revoked tokens so the service layer cannot leak the distinction.
type ITokenRepository interface {
	Create(token *model.RefreshToken) error
	GetActiveByToken(token string) (*model.RefreshToken, error)
	Revoke(token string) error
}

// TokenRepository implements ITokenRepository.
type TokenRepository struct {
	DB *sql.DB
}

func NewTokenRepository(db *sql.DB) *TokenRepository {
	return &TokenRepository{DB: db}
}

// Create inserts a new refresh token record into the database.
func (r *TokenRepository) Create(token *model.RefreshToken) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":    token.UserID,
		"expires_at": token.ExpiresAt,
	})
	log.Info("Executing query to create a new refresh token")

	query := `INSERT INTO refresh_tokens (token, user_id, expires_at) VALUES ($1, $2, $3)
		RETURNING created_at, updated_at`
	err := r.DB.QueryRow(query, token.Token, token.UserID, token.ExpiresAt).
		Scan(&token.CreatedAt, &token.UpdatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create refresh token query")
		return err
	}
	return nil
}

// GetActiveByToken retrieves a refresh token that is neither expired
// nor revoked. Unknown, expired and revoked tokens all come back as
// sql.ErrNoRows.
func (r *TokenRepository) GetActiveByToken(tokenValue string) (*model.RefreshToken, error) {
	token := &model.RefreshToken{}
	query := `SELECT token, user_id, created_at, updated_at, expires_at, revoked_at
		FROM refresh_tokens
		WHERE token = $1 AND revoked_at IS NULL AND expires_at > NOW()`
	err := r.DB.QueryRow(query, tokenValue).
		Scan(&token.Token, &token.UserID, &token.CreatedAt, &token.UpdatedAt, &token.ExpiresAt, &token.RevokedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).Error("Failed to execute get active refresh token query")
		}
		return nil, err // Return sql.ErrNoRows if not found
	}
	return token, nil
}

// Revoke permanently invalidates a refresh token. Revoking an unknown
// or already-revoked token is a no-op.
func (r *TokenRepository) Revoke(tokenValue string) error {
	logger.Log.Info("Executing query to revoke refresh token")

	query := `UPDATE refresh_tokens SET revoked_at = NOW(), updated_at = NOW()
		WHERE token = $1 AND revoked_at IS NULL`
	_, err := r.DB.Exec(query, tokenValue)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute revoke refresh token query")
		return err
	}
	return nil
}
