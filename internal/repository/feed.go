package repository

import (
	"context"

	"lostlink/internal/models"

	"gorm.io/gorm"
)

// FeedRepository serves the read-only cross-resource views: the unified
// sightings map and the authenticated user's post feed. Both coerce
// differently-shaped person and animal rows into one discriminated shape.
type FeedRepository interface {
	// AllSightings returns every sighting of both kinds joined to its parent
	// report for a display name. The map view is unbounded.
	AllSightings(ctx context.Context) ([]models.MapSighting, error)
	// MyPosts returns both report kinds owned by the user, newest first.
	MyPosts(ctx context.Context, userID uint) ([]models.MyPostEntry, error)
}

type feedRepository struct {
	db *gorm.DB
}

// NewFeedRepository returns a new FeedRepository implementation.
func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

func (r *feedRepository) AllSightings(ctx context.Context) ([]models.MapSighting, error) {
	sightings := []models.MapSighting{}

	personRows := []models.MapSighting{}
	err := r.db.WithContext(ctx).Raw(`
		SELECT ps.id,
		       'person' AS type,
		       mp.missing_person_name AS name,
		       ps.sighting_location,
		       ps.sighting_at
		FROM person_sightings ps
		JOIN missing_persons mp ON ps.missing_person_id = mp.id`).
		Scan(&personRows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	animalRows := []models.MapSighting{}
	err = r.db.WithContext(ctx).Raw(`
		SELECT ans.id,
		       'animal' AS type,
		       anm.animal_name AS name,
		       ans.sighting_location,
		       ans.sighting_at
		FROM animal_sightings ans
		JOIN missing_animals anm ON ans.missing_animal_id = anm.id`).
		Scan(&animalRows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	sightings = append(sightings, personRows...)
	sightings = append(sightings, animalRows...)
	return sightings, nil
}

func (r *feedRepository) MyPosts(ctx context.Context, userID uint) ([]models.MyPostEntry, error) {
	entries := []models.MyPostEntry{}
	err := r.db.WithContext(ctx).Raw(`
		SELECT id,
		       'person' AS type,
		       missing_person_name AS person_name,
		       NULL AS animal_name,
		       last_seen_location,
		       main_photo_url,
		       created_at
		FROM missing_persons
		WHERE reporter_id = ?
		UNION ALL
		SELECT id,
		       'animal' AS type,
		       NULL AS person_name,
		       animal_name,
		       last_seen_location,
		       main_photo_url,
		       created_at
		FROM missing_animals
		WHERE owner_id = ?
		ORDER BY created_at DESC`, userID, userID).
		Scan(&entries).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}
