package database

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jmfierro/portfolio-site-backend/errs"
	"github.com/jmfierro/portfolio-site-backend/models"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// SkillUpdate carries a partial update. Nil fields are left unchanged.
type SkillUpdate struct {
	Name             *string
	Category         *string
	ProficiencyLevel *int
	IconName         *string
	ColorFrom        *string
	ColorTo          *string
	DisplayOrder     *int
	IsFeatured       *bool
}

func (u SkillUpdate) columns() map[string]interface{} {
	updates := map[string]interface{}{}
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.Category != nil {
		updates["category"] = *u.Category
	}
	if u.ProficiencyLevel != nil {
		updates["proficiency_level"] = *u.ProficiencyLevel
	}
	if u.IconName != nil {
		updates["icon_name"] = *u.IconName
	}
	if u.ColorFrom != nil {
		updates["color_from"] = *u.ColorFrom
	}
	if u.ColorTo != nil {
		updates["color_to"] = *u.ColorTo
	}
	if u.DisplayOrder != nil {
		updates["display_order"] = *u.DisplayOrder
	}
	if u.IsFeatured != nil {
		updates["is_featured"] = *u.IsFeatured
	}
	return updates
}

// FindFeatured returns featured skills ordered for display.
func (r *SkillRepo) FindFeatured() ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.
		Where("is_featured = ?", true).
		Order("display_order ASC, name ASC").
		Find(&skills).Error
	return skills, err
}

// FindAll returns every skill regardless of visibility.
func (r *SkillRepo) FindAll() ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.Order("display_order ASC, name ASC").Find(&skills).Error
	return skills, err
}

// Add inserts a new skill. Name is required.
func (r *SkillRepo) Add(skill *models.Skill) error {
	if strings.TrimSpace(skill.Name) == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if skill.ID == uuid.Nil {
		skill.ID = uuid.New()
	}
	return r.db.Create(skill).Error
}

// Update applies a partial update; fields left nil keep their prior value.
func (r *SkillRepo) Update(id uuid.UUID, fields SkillUpdate) error {
	updates := fields.columns()
	if len(updates) == 0 {
		return r.exists(id)
	}

	res := r.db.Model(&models.Skill{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFound("skill")
	}
	return nil
}

// Delete removes a skill by id.
func (r *SkillRepo) Delete(id uuid.UUID) error {
	res := r.db.Where("id = ?", id).Delete(&models.Skill{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFound("skill")
	}
	return nil
}

func (r *SkillRepo) exists(id uuid.UUID) error {
	var count int64
	if err := r.db.Model(&models.Skill{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewNotFound("skill")
	}
	return nil
}
