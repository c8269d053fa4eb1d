package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is the single operator identity allowed to mutate content.
// The password is stored as a bcrypt hash and never serialized.
type AdminUser struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Username     string    `json:"username" db:"username" gorm:"type:text;not null;uniqueIndex:idx_admin_users_username"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
