package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a portfolio project with metadata
type Project struct {
	ID                  uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title               string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description         string    `json:"description" db:"description" gorm:"type:text"`
	DetailedDescription string    `json:"detailed_description" db:"detailed_description" gorm:"type:text"`
	GithubURL           string    `json:"github_url" db:"github_url" gorm:"type:text"`
	LiveDemoURL         string    `json:"live_demo_url" db:"live_demo_url" gorm:"type:text"`
	ImageURL            string    `json:"image_url" db:"image_url" gorm:"type:text"`
	DisplayOrder        int       `json:"display_order" db:"display_order" gorm:"not null;default:0"`
	IsFeatured          bool      `json:"is_featured" db:"is_featured" gorm:"not null;default:false"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`

	Technologies []ProjectTechnology `json:"-" gorm:"foreignKey:ProjectID;references:ID"`
}

// TechnologyNames returns the project's technology labels in insertion order.
func (p Project) TechnologyNames() []string {
	names := make([]string, len(p.Technologies))
	for i, tech := range p.Technologies {
		names[i] = tech.TechnologyName
	}
	return names
}
