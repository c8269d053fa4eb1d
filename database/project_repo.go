package database

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jmfierro/portfolio-site-backend/errs"
	"github.com/jmfierro/portfolio-site-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// ProjectUpdate carries a partial update. Nil fields are left unchanged.
type ProjectUpdate struct {
	Title               *string
	Description         *string
	DetailedDescription *string
	GithubURL           *string
	LiveDemoURL         *string
	ImageURL            *string
	DisplayOrder        *int
	IsFeatured          *bool
}

func (u ProjectUpdate) columns() map[string]interface{} {
	updates := map[string]interface{}{}
	if u.Title != nil {
		updates["title"] = *u.Title
	}
	if u.Description != nil {
		updates["description"] = *u.Description
	}
	if u.DetailedDescription != nil {
		updates["detailed_description"] = *u.DetailedDescription
	}
	if u.GithubURL != nil {
		updates["github_url"] = *u.GithubURL
	}
	if u.LiveDemoURL != nil {
		updates["live_demo_url"] = *u.LiveDemoURL
	}
	if u.ImageURL != nil {
		updates["image_url"] = *u.ImageURL
	}
	if u.DisplayOrder != nil {
		updates["display_order"] = *u.DisplayOrder
	}
	if u.IsFeatured != nil {
		updates["is_featured"] = *u.IsFeatured
	}
	return updates
}

func withTechnologies(db *gorm.DB) *gorm.DB {
	return db.Preload("Technologies", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	})
}

// FindFeatured returns featured projects with their technologies, ordered for display.
func (r *ProjectRepo) FindFeatured() ([]*models.Project, error) {
	var projects []*models.Project
	err := withTechnologies(r.db).
		Where("is_featured = ?", true).
		Order("display_order ASC, created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindAll returns every project regardless of visibility, ordered for display.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := withTechnologies(r.db).
		Order("display_order ASC, created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID without any visibility filter.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	return r.findOne(r.db.Where("id = ?", id))
}

// FindFeaturedByID returns a project only if it is featured. An unfeatured
// project is invisible to this lookup even when the id exists.
func (r *ProjectRepo) FindFeaturedByID(id uuid.UUID) (*models.Project, error) {
	return r.findOne(r.db.Where("id = ? AND is_featured = ?", id, true))
}

func (r *ProjectRepo) findOne(query *gorm.DB) (*models.Project, error) {
	var project models.Project
	err := withTechnologies(query).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("project")
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Create inserts the project row and its technology tags in one transaction.
// Either both land or neither does.
func (r *ProjectRepo) Create(project *models.Project, technologies []string) error {
	if strings.TrimSpace(project.Title) == "" {
		return errs.NewMissingRequiredFieldError("title")
	}

	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		return insertTechnologies(tx, project.ID, technologies)
	})
}

// Update applies a partial update and, when technologies is non-nil, replaces
// the whole tag set (nil leaves it untouched, empty clears it). Everything runs
// in one transaction; any failure leaves the prior state intact.
func (r *ProjectRepo) Update(id uuid.UUID, fields ProjectUpdate, technologies *[]string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Project
		if err := tx.Select("id").Where("id = ?", id).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("project")
			}
			return err
		}

		if updates := fields.columns(); len(updates) > 0 {
			if err := tx.Model(&models.Project{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}

		if technologies != nil {
			if err := tx.Where("project_id = ?", id).Delete(&models.ProjectTechnology{}).Error; err != nil {
				return err
			}
			if err := insertTechnologies(tx, id, *technologies); err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes the project and its technology tags in one transaction.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectTechnology{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&models.Project{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.NewNotFound("project")
		}
		return nil
	})
}

// insertTechnologies bulk-inserts tag rows preserving input order.
func insertTechnologies(tx *gorm.DB, projectID uuid.UUID, technologies []string) error {
	if len(technologies) == 0 {
		return nil
	}

	rows := make([]models.ProjectTechnology, len(technologies))
	for i, name := range technologies {
		rows[i] = models.ProjectTechnology{
			ProjectID:      projectID,
			TechnologyName: name,
		}
	}
	return tx.Create(&rows).Error
}
