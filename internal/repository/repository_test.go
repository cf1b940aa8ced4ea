package repository

import (
	"testing"
	"time"

	"lostlink/internal/database"
	"lostlink/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory sqlite database with foreign key
// enforcement on, mirroring the constraints the postgres schema carries.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// A second pool connection would see a different empty :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, nickname string) models.User {
	t.Helper()
	user := models.User{
		IdentitySubject: "sub-" + nickname,
		PhoneNumber:     "010-0000-0000",
		RealName:        "Test " + nickname,
		CI:              "ci-" + nickname,
		Nickname:        nickname,
		IsActive:        true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", nickname, err)
	}
	return user
}

func createPersonReport(t *testing.T, db *gorm.DB, reporterID uint, name, status string, createdAt time.Time) models.MissingPerson {
	t.Helper()
	report := models.MissingPerson{
		ReporterID:       reporterID,
		Name:             name,
		LastSeenAt:       createdAt.Add(-time.Hour),
		LastSeenLocation: "Riverside Park",
		Status:           status,
		CreatedAt:        createdAt,
	}
	if err := db.Create(&report).Error; err != nil {
		t.Fatalf("create person report %s: %v", name, err)
	}
	return report
}

func createAnimalReport(t *testing.T, db *gorm.DB, ownerID uint, animalName, status string, createdAt time.Time) models.MissingAnimal {
	t.Helper()
	report := models.MissingAnimal{
		OwnerID:          ownerID,
		AnimalType:       "dog",
		AnimalName:       animalName,
		LastSeenAt:       createdAt.Add(-time.Hour),
		LastSeenLocation: "Maple Street",
		Status:           status,
		CreatedAt:        createdAt,
	}
	if err := db.Create(&report).Error; err != nil {
		t.Fatalf("create animal report %s: %v", animalName, err)
	}
	return report
}

func appErrCode(t *testing.T, err error) string {
	t.Helper()
	appErr, ok := err.(*models.AppError)
	if !ok {
		t.Fatalf("expected *models.AppError, got %T (%v)", err, err)
	}
	return appErr.Code
}
