package models

import (
	"time"
)

// Report status values compared by exact string. Callers may assert other
// values; listings only ever filter on StatusMissing.
const StatusMissing = "missing"

// MissingPerson is a missing-person report owned by the reporting user.
// The reporter is fixed at creation; no endpoint reassigns it.
type MissingPerson struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	ReporterID       uint      `gorm:"not null;index" json:"reporter_id"`
	Reporter         User      `gorm:"foreignKey:ReporterID" json:"-"`
	Name             string    `gorm:"column:missing_person_name;not null" json:"missing_person_name"`
	Gender           string    `json:"gender"`
	AgeAtMissing     *int      `gorm:"column:age_at_missing" json:"age_at_missing"`
	Height           *float64  `json:"height"`
	Weight           *float64  `json:"weight"`
	LastSeenAt       time.Time `gorm:"not null" json:"last_seen_at"`
	LastSeenLocation string    `gorm:"not null" json:"last_seen_location"`
	Description      string    `gorm:"type:text" json:"description"`
	MainPhotoURL     string    `gorm:"column:main_photo_url" json:"main_photo_url"`
	Status           string    `gorm:"not null;default:missing" json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// TableName keeps the table name GORM would otherwise pluralize to
// "missing_people".
func (MissingPerson) TableName() string { return "missing_persons" }

// MissingAnimal is a missing-animal report owned by the animal's owner.
type MissingAnimal struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	OwnerID          uint      `gorm:"not null;index" json:"owner_id"`
	Owner            User      `gorm:"foreignKey:OwnerID" json:"-"`
	AnimalType       string    `gorm:"column:animal_type;not null" json:"animal_type"`
	Breed            string    `json:"breed"`
	AnimalName       string    `gorm:"column:animal_name" json:"animal_name"`
	Gender           string    `json:"gender"`
	Age              *int      `json:"age"`
	LastSeenAt       time.Time `gorm:"not null" json:"last_seen_at"`
	LastSeenLocation string    `gorm:"not null" json:"last_seen_location"`
	Description      string    `gorm:"type:text" json:"description"`
	MainPhotoURL     string    `gorm:"column:main_photo_url" json:"main_photo_url"`
	Status           string    `gorm:"not null;default:missing" json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

func (MissingAnimal) TableName() string { return "missing_animals" }
