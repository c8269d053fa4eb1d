package database

import (
	"gorm.io/gorm"

	"github.com/jmfierro/portfolio-site-backend/models"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// Add inserts a new contact form submission.
func (r *ContactRepo) Add(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}
