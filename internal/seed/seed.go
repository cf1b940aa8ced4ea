// Package seed populates the database with realistic development data.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"lostlink/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

var animalTypes = []string{"dog", "cat", "rabbit", "bird", "hamster"}

var genders = []string{"male", "female"}

// Seeder seeds the database with fake users, reports, and sightings.
type Seeder struct {
	db *gorm.DB
}

func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// ClearAll wipes every seeded table, children first so foreign keys hold.
func (s *Seeder) ClearAll() error {
	log.Println("Cleaning database...")
	tables := []string{
		"person_sightings", "animal_sightings",
		"missing_persons", "missing_animals", "users",
	}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

// SeedUsers creates n registered users with unique nicknames and identity
// subjects.
func (s *Seeder) SeedUsers(n int) ([]models.User, error) {
	log.Printf("Seeding %d users...", n)
	users := make([]models.User, 0, n)

	for i := 0; i < n; i++ {
		user := models.User{
			IdentitySubject: gofakeit.UUID(),
			PhoneNumber:     gofakeit.Phone(),
			RealName:        gofakeit.Name(),
			CI:              gofakeit.UUID(),
			Nickname:        fmt.Sprintf("%s%d", gofakeit.Username(), i),
			ProfileImageURL: gofakeit.ImageURL(200, 200),
			IsActive:        true,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("creating user %d: %w", i, err)
		}
		users = append(users, user)
	}
	return users, nil
}

// SeedReports creates missing-person and missing-animal reports owned by
// random seeded users. Roughly one in five reports is marked found.
func (s *Seeder) SeedReports(users []models.User, persons, animals int) ([]models.MissingPerson, []models.MissingAnimal, error) {
	if len(users) == 0 {
		return nil, nil, fmt.Errorf("no users to own reports")
	}
	log.Printf("Seeding %d person and %d animal reports...", persons, animals)

	personReports := make([]models.MissingPerson, 0, persons)
	for i := 0; i < persons; i++ {
		age := gofakeit.Number(4, 90)
		height := gofakeit.Float64Range(100, 195)
		weight := gofakeit.Float64Range(15, 110)
		report := models.MissingPerson{
			ReporterID:       users[rand.Intn(len(users))].ID,
			Name:             gofakeit.Name(),
			Gender:           genders[rand.Intn(len(genders))],
			AgeAtMissing:     &age,
			Height:           &height,
			Weight:           &weight,
			LastSeenAt:       gofakeit.DateRange(time.Now().AddDate(0, -6, 0), time.Now()),
			LastSeenLocation: gofakeit.City(),
			Description:      gofakeit.Sentence(12),
			MainPhotoURL:     gofakeit.ImageURL(400, 400),
			Status:           randomStatus(),
		}
		if err := s.db.Create(&report).Error; err != nil {
			return nil, nil, fmt.Errorf("creating person report %d: %w", i, err)
		}
		personReports = append(personReports, report)
	}

	animalReports := make([]models.MissingAnimal, 0, animals)
	for i := 0; i < animals; i++ {
		age := gofakeit.Number(1, 15)
		report := models.MissingAnimal{
			OwnerID:          users[rand.Intn(len(users))].ID,
			AnimalType:       animalTypes[rand.Intn(len(animalTypes))],
			Breed:            gofakeit.PetName(),
			AnimalName:       gofakeit.PetName(),
			Gender:           genders[rand.Intn(len(genders))],
			Age:              &age,
			LastSeenAt:       gofakeit.DateRange(time.Now().AddDate(0, -6, 0), time.Now()),
			LastSeenLocation: gofakeit.City(),
			Description:      gofakeit.Sentence(10),
			MainPhotoURL:     gofakeit.ImageURL(400, 400),
			Status:           randomStatus(),
		}
		if err := s.db.Create(&report).Error; err != nil {
			return nil, nil, fmt.Errorf("creating animal report %d: %w", i, err)
		}
		animalReports = append(animalReports, report)
	}

	return personReports, animalReports, nil
}

// SeedSightings attaches up to perReport sightings to every report.
func (s *Seeder) SeedSightings(users []models.User, persons []models.MissingPerson, animals []models.MissingAnimal, perReport int) error {
	log.Printf("Seeding up to %d sightings per report...", perReport)

	for _, report := range persons {
		for i := 0; i < rand.Intn(perReport+1); i++ {
			sighting := models.PersonSighting{
				MissingPersonID:  report.ID,
				ReporterID:       users[rand.Intn(len(users))].ID,
				SightingAt:       gofakeit.DateRange(report.LastSeenAt, time.Now()),
				SightingLocation: gofakeit.City(),
				Description:      gofakeit.Sentence(8),
				SightingPhotoURL: gofakeit.ImageURL(400, 400),
			}
			if err := s.db.Create(&sighting).Error; err != nil {
				return fmt.Errorf("creating person sighting: %w", err)
			}
		}
	}

	for _, report := range animals {
		for i := 0; i < rand.Intn(perReport+1); i++ {
			sighting := models.AnimalSighting{
				MissingAnimalID:  report.ID,
				ReporterID:       users[rand.Intn(len(users))].ID,
				SightingAt:       gofakeit.DateRange(report.LastSeenAt, time.Now()),
				SightingLocation: gofakeit.City(),
				Description:      gofakeit.Sentence(8),
				SightingPhotoURL: gofakeit.ImageURL(400, 400),
			}
			if err := s.db.Create(&sighting).Error; err != nil {
				return fmt.Errorf("creating animal sighting: %w", err)
			}
		}
	}

	return nil
}

func randomStatus() string {
	if rand.Intn(5) == 0 {
		return "found"
	}
	return models.StatusMissing
}
