package repository

import (
	"context"
	"errors"

	"lostlink/internal/models"

	"gorm.io/gorm"
)

// PersonRepository defines persistence operations for missing-person reports.
type PersonRepository interface {
	Ownable
	Create(ctx context.Context, report *models.MissingPerson) error
	GetByID(ctx context.Context, id uint) (*models.MissingPerson, error)
	// List returns the public unified projection of reports still marked
	// missing, newest first.
	List(ctx context.Context, limit int) ([]models.ReportListEntry, error)
	Update(ctx context.Context, id uint, patch models.Patch) error
	Delete(ctx context.Context, id uint) error
}

type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository returns a new PersonRepository implementation.
func NewPersonRepository(db *gorm.DB) PersonRepository {
	return &personRepository{db: db}
}

func (r *personRepository) Create(ctx context.Context, report *models.MissingPerson) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *personRepository) GetByID(ctx context.Context, id uint) (*models.MissingPerson, error) {
	var report models.MissingPerson
	if err := r.db.WithContext(ctx).First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Report", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &report, nil
}

func (r *personRepository) List(ctx context.Context, limit int) ([]models.ReportListEntry, error) {
	entries := []models.ReportListEntry{}
	err := r.db.WithContext(ctx).Raw(`
		SELECT id,
		       'person' AS type,
		       missing_person_name AS person_name,
		       NULL AS animal_name,
		       age_at_missing,
		       last_seen_location,
		       main_photo_url,
		       created_at
		FROM missing_persons
		WHERE status = ?
		ORDER BY created_at DESC
		LIMIT ?`, models.StatusMissing, limit).
		Scan(&entries).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

func (r *personRepository) Update(ctx context.Context, id uint, patch models.Patch) error {
	res := r.db.WithContext(ctx).
		Model(&models.MissingPerson{}).
		Where("id = ?", id).
		Updates(map[string]interface{}(patch))
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	// The ownership guard runs first, but a concurrent delete between the
	// check and this statement still lands here as zero rows.
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Report", id)
	}
	return nil
}

func (r *personRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.MissingPerson{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Report", id)
	}
	return nil
}

func (r *personRepository) OwnerOf(ctx context.Context, id uint) (uint, error) {
	var report models.MissingPerson
	if err := r.db.WithContext(ctx).Select("reporter_id").First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, models.NewNotFoundError("Report", id)
		}
		return 0, models.NewInternalError(err)
	}
	return report.ReporterID, nil
}
