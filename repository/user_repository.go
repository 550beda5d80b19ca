package repository

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/jeffschoe/chirpy/logger"
	"github.com/jeffschoe/chirpy/model"
)

// IUserRepository defines the contract for user database operations.
type IUserRepository interface {
	CreateUser(user *model.User) error
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id uuid.UUID) (*model.User, error)
	UpdateUser(user *model.User) error
	UpgradeToChirpyRed(id uuid.UUID) error
	DeleteAllUsers() error
}

// UserRepository implements IUserRepository on top of database/sql.
type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) CreateUser(user *model.User) error {
	query := `INSERT INTO users (email, hashed_password) VALUES ($1, $2)
		RETURNING id, created_at, updated_at, is_chirpy_red`
	err := r.DB.QueryRow(query, user.Email, user.HashedPassword).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.IsChirpyRed)
	if err != nil {
		logger.Log.WithError(err).WithField("email", user.Email).Error("Failed to execute create user query")
		return err
	}
	return nil
}

func (r *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, created_at, updated_at, email, hashed_password, is_chirpy_red
		FROM users WHERE email = $1`
	err := r.DB.QueryRow(query, email).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Email, &user.HashedPassword, &user.IsChirpyRed)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).Error("Failed to execute get user by email query")
		}
		return nil, err // Return sql.ErrNoRows if not found
	}
	return user, nil
}

func (r *UserRepository) GetUserByID(id uuid.UUID) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, created_at, updated_at, email, hashed_password, is_chirpy_red
		FROM users WHERE id = $1`
	err := r.DB.QueryRow(query, id).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Email, &user.HashedPassword, &user.IsChirpyRed)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("user_id", id).Error("Failed to execute get user by id query")
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser replaces the user's email and password hash.
func (r *UserRepository) UpdateUser(user *model.User) error {
	query := `UPDATE users SET email = $1, hashed_password = $2, updated_at = NOW()
		WHERE id = $3 RETURNING updated_at`
	err := r.DB.QueryRow(query, user.Email, user.HashedPassword, user.ID).Scan(&user.UpdatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("user_id", user.ID).Error("Failed to execute update user query")
		}
		return err
	}
	return nil
}

// UpgradeToChirpyRed flips the membership flag. Returns sql.ErrNoRows
// when the user does not exist.
func (r *UserRepository) UpgradeToChirpyRed(id uuid.UUID) error {
	log := logger.Log.WithField("user_id", id)
	log.Info("Executing query to upgrade user to Chirpy Red")

	query := `UPDATE users SET is_chirpy_red = TRUE, updated_at = NOW() WHERE id = $1`
	result, err := r.DB.Exec(query, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute upgrade user query")
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteAllUsers wipes the users table (and, via cascades, chirps and
// refresh tokens). Only reachable from the dev-gated reset endpoint.
func (r *UserRepository) DeleteAllUsers() error {
	logger.Log.Warn("Executing query to delete all users")

	_, err := r.DB.Exec(`DELETE FROM users`)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute delete all users query")
		return err
	}
	return nil
}
