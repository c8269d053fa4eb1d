package database

import (
	"gorm.io/gorm"

	"github.com/jmfierro/portfolio-site-backend/models"
)

// ContentRepo serves the read-only public content: poems, books, discussions.
type ContentRepo struct {
	db *gorm.DB
}

func NewContentRepo(db *gorm.DB) *ContentRepo {
	return &ContentRepo{db}
}

// FindPublishedPoems returns published poems ordered for display.
func (r *ContentRepo) FindPublishedPoems() ([]*models.Poem, error) {
	var poems []*models.Poem
	err := r.db.
		Where("is_published = ?", true).
		Order("display_order ASC").
		Find(&poems).Error
	return poems, err
}

// FindBooks returns the reading list, most recently read first.
func (r *ContentRepo) FindBooks() ([]*models.Book, error) {
	var books []*models.Book
	err := r.db.Order("read_date DESC, created_at DESC").Find(&books).Error
	return books, err
}

// FindActiveDiscussions returns active discussion prompts ordered for display.
func (r *ContentRepo) FindActiveDiscussions() ([]*models.Discussion, error) {
	var discussions []*models.Discussion
	err := r.db.
		Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&discussions).Error
	return discussions, err
}
