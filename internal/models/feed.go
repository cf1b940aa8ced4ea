package models

import (
	"time"
)

// The feed types below are read-only projections produced by UNION-style
// queries over missing_persons and missing_animals. The JSON field names are
// the app-facing wire contract: every row carries a "type" discriminant and
// the personName/animalName pair, exactly one of which is non-null.

// Report discriminant values used in unified projections.
const (
	ReportTypePerson = "person"
	ReportTypeAnimal = "animal"
)

// ReportListEntry is the projection returned by the public list endpoints.
// The kind-specific columns (age_at_missing for persons, breed/age for
// animals) are omitted on the other branch rather than rendered null.
type ReportListEntry struct {
	ID               uint      `json:"id"`
	Type             string    `json:"type"`
	PersonName       *string   `gorm:"column:person_name" json:"personName"`
	AnimalName       *string   `gorm:"column:animal_name" json:"animalName"`
	AgeAtMissing     *int      `gorm:"column:age_at_missing" json:"age_at_missing,omitempty"`
	Breed            *string   `json:"breed,omitempty"`
	Age              *int      `json:"age,omitempty"`
	LastSeenLocation string    `gorm:"column:last_seen_location" json:"last_seen_location"`
	MainPhotoURL     string    `gorm:"column:main_photo_url" json:"main_photo_url"`
	CreatedAt        time.Time `json:"created_at"`
}

// MyPostEntry is one row of the authenticated user's unified report feed.
type MyPostEntry struct {
	ID               uint      `json:"id"`
	Type             string    `json:"type"`
	PersonName       *string   `gorm:"column:person_name" json:"personName"`
	AnimalName       *string   `gorm:"column:animal_name" json:"animalName"`
	LastSeenLocation string    `gorm:"column:last_seen_location" json:"last_seen_location"`
	MainPhotoURL     string    `gorm:"column:main_photo_url" json:"main_photo_url"`
	CreatedAt        time.Time `json:"created_at"`
}

// MapSighting is one marker of the unified sightings map: a sighting of
// either kind joined to its parent report for a display name.
type MapSighting struct {
	ID               uint      `json:"id"`
	Type             string    `json:"type"`
	Name             *string   `json:"name"`
	SightingLocation string    `gorm:"column:sighting_location" json:"sighting_location"`
	SightingAt       time.Time `gorm:"column:sighting_at" json:"sighting_at"`
}

// SightingView is a sighting joined with the reporting user's nickname, as
// returned by the list-by-parent endpoints.
type SightingView struct {
	ID               uint      `json:"id"`
	SightingAt       time.Time `gorm:"column:sighting_at" json:"sighting_at"`
	SightingLocation string    `gorm:"column:sighting_location" json:"sighting_location"`
	Description      string    `json:"description"`
	SightingPhotoURL string    `gorm:"column:sighting_photo_url" json:"sighting_photo_url"`
	CreatedAt        time.Time `json:"created_at"`
	ReporterNickname string    `gorm:"column:reporter_nickname" json:"reporter_nickname"`
}
