package models

import (
	"time"

	"github.com/google/uuid"
)

// Poem represents a published or draft poem
type Poem struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title        string    `json:"title" db:"title" gorm:"type:text;not null"`
	PreviewText  string    `json:"preview_text" db:"preview_text" gorm:"type:text"`
	FullText     string    `json:"full_text" db:"full_text" gorm:"type:text"`
	DisplayOrder int       `json:"display_order" db:"display_order" gorm:"not null;default:0"`
	IsPublished  bool      `json:"is_published" db:"is_published" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Book represents an entry on the reading list
type Book struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string     `json:"title" db:"title" gorm:"type:text;not null"`
	Author      string     `json:"author" db:"author" gorm:"type:text"`
	Description string     `json:"description" db:"description" gorm:"type:text"`
	CoverURL    string     `json:"cover_url" db:"cover_url" gorm:"type:text"`
	Rating      int        `json:"rating" db:"rating" gorm:"not null;default:0"`
	ReadDate    *time.Time `json:"read_date,omitempty" db:"read_date"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// Discussion represents a discussion prompt shown on the site
type Discussion struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Topic        string    `json:"topic" db:"topic" gorm:"type:text;not null"`
	Question     string    `json:"question" db:"question" gorm:"type:text"`
	DisplayOrder int       `json:"display_order" db:"display_order" gorm:"not null;default:0"`
	IsActive     bool      `json:"is_active" db:"is_active" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
