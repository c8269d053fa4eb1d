package database

import (
	"gorm.io/gorm"

	"github.com/jmfierro/portfolio-site-backend/models"
)

type Database struct {
	projectRepo   *ProjectRepo
	skillRepo     *SkillRepo
	contentRepo   *ContentRepo
	analyticsRepo *AnalyticsRepo
	contactRepo   *ContactRepo
	adminUserRepo *AdminUserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:   NewProjectRepo(db),
		skillRepo:     NewSkillRepo(db),
		contentRepo:   NewContentRepo(db),
		analyticsRepo: NewAnalyticsRepo(db),
		contactRepo:   NewContactRepo(db),
		adminUserRepo: NewAdminUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ContentRepo() *ContentRepo {
	return d.contentRepo
}

func (d Database) AnalyticsRepo() *AnalyticsRepo {
	return d.analyticsRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

func (d Database) AdminUserRepo() *AdminUserRepo {
	return d.adminUserRepo
}

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.ProjectTechnology{},
		&models.Skill{},
		&models.Poem{},
		&models.Book{},
		&models.Discussion{},
		&models.PageView{},
		&models.ContactMessage{},
		&models.AdminUser{},
	)
}
