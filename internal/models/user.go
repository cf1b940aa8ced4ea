// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. Identity is established by an
// external provider; identity_subject stores the provider-issued subject.
// Accounts are deactivated via is_active, never hard-deleted.
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	IdentitySubject string    `gorm:"column:identity_subject;uniqueIndex;not null" json:"identity_subject"`
	PhoneNumber     string    `gorm:"not null" json:"phone_number"`
	RealName        string    `gorm:"not null" json:"real_name"`
	// CI is the national identity code collected at registration. It is
	// write-once and never serialized back to clients.
	CI              string    `gorm:"column:ci;uniqueIndex;not null" json:"-"`
	Nickname        string    `gorm:"uniqueIndex;not null" json:"nickname"`
	ProfileImageURL string    `gorm:"column:profile_image_url" json:"profile_image_url"`
	IsActive        bool      `gorm:"not null;default:true" json:"-"`
	CreatedAt       time.Time `json:"created_at"`
}
