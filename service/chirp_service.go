// file: service/chirp_service.go

package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jeffschoe/chirpy/common"
	"github.com/jeffschoe/chirpy/model"
	"github.com/jeffschoe/chirpy/repository"
)

const maxChirpLength = 140

const chirpCacheTTL = 10 * time.Minute

// Words masked as **** regardless of how loudly they are chirped.
var profaneWords = map[string]bool{
	"kerfuffle": true,
	"sharbert":  true,
	"fornax":    true,
}

// ChirpService handles chirp business rules and caches listings with a
// cache-aside strategy.
type ChirpService struct {
	repo  repository.IChirpRepository
	cache ICacheClient
}

func NewChirpService(repo repository.IChirpRepository, cache ICacheClient) *ChirpService {
	return &ChirpService{
		repo:  repo,
		cache: cache,
	}
}

// CreateChirp validates and cleans the body, persists the chirp, and
// invalidates the affected listing caches.
func (s *ChirpService) CreateChirp(userID uuid.UUID, body string) (*model.Chirp, *common.AppError) {
	if len(body) > maxChirpLength {
		return nil, common.BadRequest(fmt.Sprintf("Chirp is too long. Max length is %d", maxChirpLength), nil)
	}

	chirp := &model.Chirp{
		Body:   cleanChirpBody(body),
		UserID: userID,
	}

	if err := s.repo.CreateChirp(chirp); err != nil {
		return nil, common.Internal("Could not create chirp", err)
	}

	s.invalidateListings(userID)

	return chirp, nil
}

// cleanChirpBody replaces profane words with ****. Matching is
// case-insensitive on whole words; punctuation-adjacent occurrences are
// left alone.
func cleanChirpBody(body string) string {
	words := strings.Split(body, " ")
	for i, word := range words {
		if profaneWords[strings.ToLower(word)] {
			words[i] = "****"
		}
	}
	return strings.Join(words, " ")
}

// ListChirps returns chirps oldest-first, optionally filtered to one
// author and optionally reversed with sortOrder "desc". Listings are
// served cache-aside: the cache always stores the ascending order.
func (s *ChirpService) ListChirps(authorID *uuid.UUID, sortOrder string) ([]*model.Chirp, *common.AppError) {
	cacheKey := "chirps:all"
	if authorID != nil {
		cacheKey = fmt.Sprintf("chirps:%s", authorID)
	}
	ctx := context.Background()

	var chirps []*model.Chirp

	cached, err := s.cache.Get(ctx, cacheKey).Result()
	if err == nil && json.Unmarshal([]byte(cached), &chirps) == nil {
		return sortChirps(chirps, sortOrder), nil
	}

	if authorID != nil {
		chirps, err = s.repo.GetChirpsByAuthor(*authorID)
	} else {
		chirps, err = s.repo.GetChirps()
	}
	if err != nil {
		return nil, common.Internal("Could not retrieve chirps", err)
	}

	if data, err := json.Marshal(chirps); err == nil {
		s.cache.Set(ctx, cacheKey, data, chirpCacheTTL)
	}

	return sortChirps(chirps, sortOrder), nil
}

func sortChirps(chirps []*model.Chirp, sortOrder string) []*model.Chirp {
	if sortOrder != "desc" {
		return chirps
	}
	reversed := make([]*model.Chirp, len(chirps))
	for i, c := range chirps {
		reversed[len(chirps)-1-i] = c
	}
	return reversed
}

// GetChirp retrieves a single chirp by id.
func (s *ChirpService) GetChirp(id uuid.UUID) (*model.Chirp, *common.AppError) {
	chirp, err := s.repo.GetChirpByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NotFound("Chirp not found", nil)
		}
		return nil, common.Internal("Could not retrieve chirp", err)
	}
	return chirp, nil
}

// DeleteChirp removes a chirp, but only for its author.
func (s *ChirpService) DeleteChirp(userID, chirpID uuid.UUID) *common.AppError {
	chirp, err := s.repo.GetChirpByID(chirpID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.NotFound("Chirp not found", nil)
		}
		return common.Internal("Could not retrieve chirp", err)
	}

	if chirp.UserID != userID {
		return common.Forbidden("You can only delete your own chirps", nil)
	}

	if err := s.repo.DeleteChirp(chirpID); err != nil {
		return common.Internal("Could not delete chirp", err)
	}

	s.invalidateListings(chirp.UserID)

	return nil
}

func (s *ChirpService) invalidateListings(authorID uuid.UUID) {
	s.cache.Del(context.Background(), "chirps:all", fmt.Sprintf("chirps:%s", authorID))
}
