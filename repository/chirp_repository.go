package repository

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/jeffschoe/chirpy/logger"
	"github.com/jeffschoe/chirpy/model"
)

// IChirpRepository defines the contract for chirp database operations.
type IChirpRepository interface {
	CreateChirp(chirp *model.Chirp) error
	GetChirps() ([]*model.Chirp, error)
	GetChirpsByAuthor(authorID uuid.UUID) ([]*model.Chirp, error)
	GetChirpByID(id uuid.UUID) (*model.Chirp, error)
	DeleteChirp(id uuid.UUID) error
}

// ChirpRepository implements IChirpRepository.
type ChirpRepository struct {
	DB *sql.DB
}

func NewChirpRepository(db *sql.DB) *ChirpRepository {
	return &ChirpRepository{DB: db}
}

// CreateChirp adds a new chirp to the database.
func (r *ChirpRepository) CreateChirp(chirp *model.Chirp) error {
	log := logger.Log.WithField("user_id", chirp.UserID)
	log.Info("Executing query to create a new chirp")

	query := `INSERT INTO chirps (body, user_id) VALUES ($1, $2)
		RETURNING id, created_at, updated_at`
	err := r.DB.QueryRow(query, chirp.Body, chirp.UserID).
		Scan(&chirp.ID, &chirp.CreatedAt, &chirp.UpdatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create chirp query")
		return err
	}
	return nil
}

// GetChirps retrieves all chirps, oldest first.
func (r *ChirpRepository) GetChirps() ([]*model.Chirp, error) {
	query := `SELECT id, created_at, updated_at, body, user_id FROM chirps ORDER BY created_at ASC`
	return r.queryChirps(query)
}

// GetChirpsByAuthor retrieves a single author's chirps, oldest first.
func (r *ChirpRepository) GetChirpsByAuthor(authorID uuid.UUID) ([]*model.Chirp, error) {
	query := `SELECT id, created_at, updated_at, body, user_id FROM chirps
		WHERE user_id = $1 ORDER BY created_at ASC`
	return r.queryChirps(query, authorID)
}

func (r *ChirpRepository) queryChirps(query string, args ...interface{}) ([]*model.Chirp, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute chirps query")
		return nil, err
	}
	defer rows.Close()

	var chirps []*model.Chirp
	for rows.Next() {
		var c model.Chirp
		if err := rows.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.Body, &c.UserID); err != nil {
			logger.Log.WithError(err).Error("Failed to scan chirp row")
			return nil, err
		}
		chirps = append(chirps, &c)
	}
	return chirps, rows.Err()
}

func (r *ChirpRepository) GetChirpByID(id uuid.UUID) (*model.Chirp, error) {
	chirp := &model.Chirp{}
	query := `SELECT id, created_at, updated_at, body, user_id FROM chirps WHERE id = $1`
	err := r.DB.QueryRow(query, id).
		Scan(&chirp.ID, &chirp.CreatedAt, &chirp.UpdatedAt, &chirp.Body, &chirp.UserID)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("chirp_id", id).Error("Failed to execute get chirp by id query")
		}
		return nil, err
	}
	return chirp, nil
}

func (r *ChirpRepository) DeleteChirp(id uuid.UUID) error {
	log := logger.Log.WithField("chirp_id", id)
	log.Info("Executing query to delete chirp")

	_, err := r.DB.Exec(`DELETE FROM chirps WHERE id = $1`, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete chirp query")
		return err
	}
	return nil
}
