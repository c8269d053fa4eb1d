package models

import (
	"time"

	"github.com/google/uuid"
)

// Skill represents a skill card shown on the site
type Skill struct {
	ID               uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name             string    `json:"name" db:"name" gorm:"type:text;not null"`
	Category         string    `json:"category" db:"category" gorm:"type:text"`
	ProficiencyLevel int       `json:"proficiency_level" db:"proficiency_level" gorm:"not null;default:0"`
	IconName         string    `json:"icon_name" db:"icon_name" gorm:"type:text"`
	ColorFrom        string    `json:"color_from" db:"color_from" gorm:"type:text"`
	ColorTo          string    `json:"color_to" db:"color_to" gorm:"type:text"`
	DisplayOrder     int       `json:"display_order" db:"display_order" gorm:"not null;default:0"`
	IsFeatured       bool      `json:"is_featured" db:"is_featured" gorm:"not null;default:false"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}
