package service

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jeffschoe/chirpy/common"
	"github.com/jeffschoe/chirpy/model"
	"github.com/jeffschoe/chirpy/repository"
)

// UserService handles user-related business logic. Password hashing is
// delegated to the AuthService so there is exactly one place that knows
// how credentials are stored.
type UserService struct {
	userRepo repository.IUserRepository
	auth     *AuthService
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.IUserRepository, auth *AuthService) *UserService {
	return &UserService{
		userRepo: userRepo,
		auth:     auth,
	}
}

// CreateUser hashes the password and persists a new user. The returned
// user never carries the plaintext password, and the hash is excluded
// from JSON by the model.
func (s *UserService) CreateUser(email, password string) (*model.User, *common.AppError) {
	hashedPassword, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, common.Internal("Could not create user", err)
	}

	user := &model.User{
		Email:          email,
		HashedPassword: hashedPassword,
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, common.Internal("Could not create user", err)
	}

	return user, nil
}

// UpdateUser replaces the authenticated user's email and password.
func (s *UserService) UpdateUser(userID uuid.UUID, email, password string) (*model.User, *common.AppError) {
	hashedPassword, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, common.Internal("Could not update user", err)
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NotFound("User not found", nil)
		}
		return nil, common.Internal("Could not update user", err)
	}

	user.Email = email
	user.HashedPassword = hashedPassword

	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, common.Internal("Could not update user", err)
	}

	return user, nil
}

// UpgradeToChirpyRed flips the membership flag on behalf of the payment
// provider webhook.
func (s *UserService) UpgradeToChirpyRed(userID uuid.UUID) *common.AppError {
	if err := s.userRepo.UpgradeToChirpyRed(userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.NotFound("User not found", nil)
		}
		return common.Internal("Could not upgrade user", err)
	}
	return nil
}
