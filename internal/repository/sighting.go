package repository

import (
	"context"

	"lostlink/internal/models"

	"gorm.io/gorm"
)

// SightingRepository defines persistence operations for sightings of both
// report kinds. Creation relies on the foreign key to the parent report: a
// violation is translated to a parent-specific NotFound rather than a
// generic failure.
type SightingRepository interface {
	CreatePersonSighting(ctx context.Context, sighting *models.PersonSighting) error
	CreateAnimalSighting(ctx context.Context, sighting *models.AnimalSighting) error
	ListPersonSightings(ctx context.Context, reportID uint) ([]models.SightingView, error)
	ListAnimalSightings(ctx context.Context, reportID uint) ([]models.SightingView, error)
}

type sightingRepository struct {
	db *gorm.DB
}

// NewSightingRepository returns a new SightingRepository implementation.
func NewSightingRepository(db *gorm.DB) SightingRepository {
	return &sightingRepository{db: db}
}

func (r *sightingRepository) CreatePersonSighting(ctx context.Context, sighting *models.PersonSighting) error {
	if err := r.db.WithContext(ctx).Create(sighting).Error; err != nil {
		if isForeignKeyViolation(err) {
			return models.NewParentNotFoundError("missing person report")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *sightingRepository) CreateAnimalSighting(ctx context.Context, sighting *models.AnimalSighting) error {
	if err := r.db.WithContext(ctx).Create(sighting).Error; err != nil {
		if isForeignKeyViolation(err) {
			return models.NewParentNotFoundError("missing animal report")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// Sightings are ordered by when the person/animal was seen, not by when the
// row was created.
func (r *sightingRepository) ListPersonSightings(ctx context.Context, reportID uint) ([]models.SightingView, error) {
	views := []models.SightingView{}
	err := r.db.WithContext(ctx).Raw(`
		SELECT ps.id,
		       ps.sighting_at,
		       ps.sighting_location,
		       ps.description,
		       ps.sighting_photo_url,
		       ps.created_at,
		       u.nickname AS reporter_nickname
		FROM person_sightings ps
		JOIN users u ON ps.reporter_id = u.id
		WHERE ps.missing_person_id = ?
		ORDER BY ps.sighting_at DESC`, reportID).
		Scan(&views).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return views, nil
}

func (r *sightingRepository) ListAnimalSightings(ctx context.Context, reportID uint) ([]models.SightingView, error) {
	views := []models.SightingView{}
	err := r.db.WithContext(ctx).Raw(`
		SELECT ans.id,
		       ans.sighting_at,
		       ans.sighting_location,
		       ans.description,
		       ans.sighting_photo_url,
		       ans.created_at,
		       u.nickname AS reporter_nickname
		FROM animal_sightings ans
		JOIN users u ON ans.reporter_id = u.id
		WHERE ans.missing_animal_id = ?
		ORDER BY ans.sighting_at DESC`, reportID).
		Scan(&views).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return views, nil
}
