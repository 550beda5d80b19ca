package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/jeffschoe/chirpy/common"
	"github.com/jeffschoe/chirpy/logger"
	"github.com/jeffschoe/chirpy/model"
	"github.com/jeffschoe/chirpy/service"
	"github.com/sirupsen/logrus"
)

type ChirpHandler struct {
	service *service.ChirpService
}

func NewChirpHandler(service *service.ChirpService) *ChirpHandler {
	return &ChirpHandler{service: service}
}

// CreateChirp godoc
// @Summary      Post a new chirp
// @Tags         chirps
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      201  {object}  model.Chirp
// @Router       /api/chirps [post]
func (h *ChirpHandler) CreateChirp(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := userIDFromContext(r)
	if !ok {
		return common.Unauthenticated("Invalid user ID in token", nil)
	}

	var req model.CreateChirpRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	log := logger.Log.WithFields(logrus.Fields{
		"user_id":     userID,
		"body_length": len(req.Body),
	})
	log.Info("Create chirp request received")

	chirp, appErr := h.service.CreateChirp(userID, req.Body)
	if appErr != nil {
		return appErr
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(chirp)

	return nil
}

// ListChirps godoc
// @Summary      List chirps
// @Tags         chirps
// @Produce      json
// @Param        author_id  query  string  false  "filter by author"
// @Param        sort       query  string  false  "asc (default) or desc"
// @Success      200  {array}  model.Chirp
// @Router       /api/chirps [get]
func (h *ChirpHandler) ListChirps(w http.ResponseWriter, r *http.Request) *common.AppError {
	var authorID *uuid.UUID
	if raw := r.URL.Query().Get("author_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return common.BadRequest("Invalid author ID", err)
		}
		authorID = &parsed
	}

	chirps, appErr := h.service.ListChirps(authorID, r.URL.Query().Get("sort"))
	if appErr != nil {
		return appErr
	}

	// An empty listing is a valid listing, not null.
	if chirps == nil {
		chirps = []*model.Chirp{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(chirps)

	return nil
}

// GetChirp godoc
// @Summary      Get a single chirp
// @Tags         chirps
// @Produce      json
// @Param        chirpID  path  string  true  "chirp id"
// @Success      200  {object}  model.Chirp
// @Router       /api/chirps/{chirpID} [get]
func (h *ChirpHandler) GetChirp(w http.ResponseWriter, r *http.Request) *common.AppError {
	chirpID, err := uuid.Parse(r.PathValue("chirpID"))
	if err != nil {
		return common.BadRequest("Invalid chirp ID", err)
	}

	chirp, appErr := h.service.GetChirp(chirpID)
	if appErr != nil {
		return appErr
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(chirp)

	return nil
}

// DeleteChirp godoc
// @Summary      Delete one of your chirps
// @Tags         chirps
// @Security     BearerAuth
// @Param        chirpID  path  string  true  "chirp id"
// @Success      204
// @Router       /api/chirps/{chirpID} [delete]
func (h *ChirpHandler) DeleteChirp(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := userIDFromContext(r)
	if !ok {
		return common.Unauthenticated("Invalid user ID in token", nil)
	}

	chirpID, err := uuid.Parse(r.PathValue("chirpID"))
	if err != nil {
		return common.BadRequest("Invalid chirp ID", err)
	}

	if appErr := h.service.DeleteChirp(userID, chirpID); appErr != nil {
		return appErr
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
