package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jeffschoe/chirpy/common"
	"github.com/jeffschoe/chirpy/service"
)

// TokenHandler exposes the refresh-token lifecycle. Both endpoints take
// the refresh token itself as the bearer credential.
type TokenHandler struct {
	auth *service.AuthService
}

func NewTokenHandler(auth *service.AuthService) *TokenHandler {
	return &TokenHandler{auth: auth}
}

// Refresh godoc
// @Summary      Exchange a refresh token for a new access token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/refresh [post]
func (h *TokenHandler) Refresh(w http.ResponseWriter, r *http.Request) *common.AppError {
	refreshToken, appErr := service.GetBearerToken(r.Header.Get("Authorization"))
	if appErr != nil {
		return appErr
	}

	accessToken, appErr := h.auth.Refresh(refreshToken)
	if appErr != nil {
		return appErr
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"token": accessToken})

	return nil
}

// Revoke godoc
// @Summary      Revoke a refresh token
// @Tags         auth
// @Success      204
// @Router       /api/revoke [post]
func (h *TokenHandler) Revoke(w http.ResponseWriter, r *http.Request) *common.AppError {
	refreshToken, appErr := service.GetBearerToken(r.Header.Get("Authorization"))
	if appErr != nil {
		return appErr
	}

	if appErr := h.auth.Revoke(refreshToken); appErr != nil {
		return appErr
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
