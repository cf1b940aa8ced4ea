package models

import (
	"time"
)

// PersonSighting is a crowd-sourced observation tied to a missing-person
// report. Sightings are append-only through the API: no update or delete is
// exposed. Deleting the parent report cascades to its sightings.
type PersonSighting struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	MissingPersonID  uint          `gorm:"column:missing_person_id;not null;index" json:"missing_person_id"`
	MissingPerson    MissingPerson `gorm:"foreignKey:MissingPersonID;constraint:OnDelete:CASCADE" json:"-"`
	ReporterID       uint          `gorm:"not null;index" json:"reporter_id"`
	Reporter         User          `gorm:"foreignKey:ReporterID" json:"-"`
	SightingAt       time.Time     `gorm:"column:sighting_at;not null" json:"sighting_at"`
	SightingLocation string        `gorm:"column:sighting_location;not null" json:"sighting_location"`
	Description      string        `gorm:"type:text" json:"description"`
	SightingPhotoURL string        `gorm:"column:sighting_photo_url" json:"sighting_photo_url"`
	CreatedAt        time.Time     `json:"created_at"`
}

// AnimalSighting mirrors PersonSighting for missing-animal reports.
type AnimalSighting struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	MissingAnimalID  uint          `gorm:"column:missing_animal_id;not null;index" json:"missing_animal_id"`
	MissingAnimal    MissingAnimal `gorm:"foreignKey:MissingAnimalID;constraint:OnDelete:CASCADE" json:"-"`
	ReporterID       uint          `gorm:"not null;index" json:"reporter_id"`
	Reporter         User          `gorm:"foreignKey:ReporterID" json:"-"`
	SightingAt       time.Time     `gorm:"column:sighting_at;not null" json:"sighting_at"`
	SightingLocation string        `gorm:"column:sighting_location;not null" json:"sighting_location"`
	Description      string        `gorm:"type:text" json:"description"`
	SightingPhotoURL string        `gorm:"column:sighting_photo_url" json:"sighting_photo_url"`
	CreatedAt        time.Time     `json:"created_at"`
}
