package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jmfierro/portfolio-site-backend/errs"
	"github.com/jmfierro/portfolio-site-backend/models"
)

type AdminUserRepo struct {
	db *gorm.DB
}

func NewAdminUserRepo(db *gorm.DB) *AdminUserRepo {
	return &AdminUserRepo{db}
}

// FindByUsername returns the admin user with the given username, or nil.
func (r *AdminUserRepo) FindByUsername(username string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword replaces the stored password hash for the given username.
func (r *AdminUserRepo) UpdatePassword(username, passwordHash string) error {
	res := r.db.Model(&models.AdminUser{}).
		Where("username = ?", username).
		Update("password_hash", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFound("admin user")
	}
	return nil
}

// EnsureAdmin creates the operator account if no row with the username exists.
// Used at startup to seed the single admin identity from the environment.
func (r *AdminUserRepo) EnsureAdmin(username, passwordHash string) error {
	existing, err := r.FindByUsername(username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	user := models.AdminUser{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
	}
	return r.db.Create(&user).Error
}
