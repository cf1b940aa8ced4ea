package repository

import (
	"context"
	"errors"

	"lostlink/internal/models"

	"gorm.io/gorm"
)

// AnimalRepository defines persistence operations for missing-animal reports.
type AnimalRepository interface {
	Ownable
	Create(ctx context.Context, report *models.MissingAnimal) error
	GetByID(ctx context.Context, id uint) (*models.MissingAnimal, error)
	List(ctx context.Context, limit int) ([]models.ReportListEntry, error)
	Update(ctx context.Context, id uint, patch models.Patch) error
	Delete(ctx context.Context, id uint) error
}

type animalRepository struct {
	db *gorm.DB
}

// NewAnimalRepository returns a new AnimalRepository implementation.
func NewAnimalRepository(db *gorm.DB) AnimalRepository {
	return &animalRepository{db: db}
}

func (r *animalRepository) Create(ctx context.Context, report *models.MissingAnimal) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *animalRepository) GetByID(ctx context.Context, id uint) (*models.MissingAnimal, error) {
	var report models.MissingAnimal
	if err := r.db.WithContext(ctx).First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Report", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &report, nil
}

func (r *animalRepository) List(ctx context.Context, limit int) ([]models.ReportListEntry, error) {
	entries := []models.ReportListEntry{}
	err := r.db.WithContext(ctx).Raw(`
		SELECT id,
		       'animal' AS type,
		       NULL AS person_name,
		       animal_name,
		       breed,
		       age,
		       last_seen_location,
		       main_photo_url,
		       created_at
		FROM missing_animals
		WHERE status = ?
		ORDER BY created_at DESC
		LIMIT ?`, models.StatusMissing, limit).
		Scan(&entries).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

func (r *animalRepository) Update(ctx context.Context, id uint, patch models.Patch) error {
	res := r.db.WithContext(ctx).
		Model(&models.MissingAnimal{}).
		Where("id = ?", id).
		Updates(map[string]interface{}(patch))
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Report", id)
	}
	return nil
}

func (r *animalRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.MissingAnimal{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Report", id)
	}
	return nil
}

func (r *animalRepository) OwnerOf(ctx context.Context, id uint) (uint, error) {
	var report models.MissingAnimal
	if err := r.db.WithContext(ctx).Select("owner_id").First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, models.NewNotFoundError("Report", id)
		}
		return 0, models.NewInternalError(err)
	}
	return report.OwnerID, nil
}
