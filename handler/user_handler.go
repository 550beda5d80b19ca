package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jeffschoe/chirpy/common"
	"github.com/jeffschoe/chirpy/logger"
	"github.com/jeffschoe/chirpy/model"
	"github.com/jeffschoe/chirpy/service"
)

type UserHandler struct {
	users *service.UserService
	auth  *service.AuthService
}

func NewUserHandler(users *service.UserService, auth *service.AuthService) *UserHandler {
	return &UserHandler{
		users: users,
		auth:  auth,
	}
}

// CreateUser godoc
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Success      201  {object}  model.User
// @Router       /api/users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateUserRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	user, appErr := h.users.CreateUser(req.Email, req.Password)
	if appErr != nil {
		return appErr
	}

	logger.Log.WithField("user_id", user.ID).Info("User created")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)

	return nil
}

// Login godoc
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  service.LoginResponse
// @Router       /api/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	expiresIn := time.Duration(req.ExpiresInSeconds) * time.Second

	resp, appErr := h.auth.Login(req.Email, req.Password, expiresIn)
	if appErr != nil {
		return appErr
	}

	logger.Log.WithField("user_id", resp.ID).Info("User logged in")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)

	return nil
}

// UpdateUser godoc
// @Summary      Update the authenticated user's email and password
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      200  {object}  model.User
// @Router       /api/users [put]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := userIDFromContext(r)
	if !ok {
		return common.Unauthenticated("Invalid user ID in token", nil)
	}

	var req model.UpdateUserRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	user, appErr := h.users.UpdateUser(userID, req.Email, req.Password)
	if appErr != nil {
		return appErr
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(user)

	return nil
}
