package models

import (
	"time"

	"gorm.io/gorm"
)

// Timestamps holds the created/updated columns shared by most tables.
type Timestamps struct {
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// BeforeCreate stamps both dates, keeping a creation date that is already set.
func (t *Timestamps) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	return nil
}

// BeforeUpdate refreshes the modification date.
func (t *Timestamps) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now().UTC()
	return nil
}
