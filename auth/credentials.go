package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jmfierro/portfolio-site-backend/database"
	"github.com/jmfierro/portfolio-site-backend/errs"
)

// Identity is a verified admin identity.
type Identity struct {
	Username string `json:"username"`
}

// CredentialVerifier validates and rotates the operator credential. The token
// issuance logic never touches credential storage directly, so this can be
// swapped for another identity store.
type CredentialVerifier interface {
	Verify(username, password string) (*Identity, error)
	Rotate(username, currentPassword, newPassword string) error
}

// AdminCredentials verifies credentials against the stored admin user.
type AdminCredentials struct {
	users *database.AdminUserRepo
}

func NewAdminCredentials(users *database.AdminUserRepo) *AdminCredentials {
	return &AdminCredentials{users: users}
}

// Verify checks a username/password pair. The error never reveals which of
// the two fields was wrong.
func (c *AdminCredentials) Verify(username, password string) (*Identity, error) {
	user, err := c.users.FindByUsername(username)
	if err != nil || user == nil {
		return nil, errs.NewUnauthorizedError("invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errs.NewUnauthorizedError("invalid username or password")
	}

	return &Identity{Username: user.Username}, nil
}

// Rotate replaces the stored password hash after verifying the current one.
func (c *AdminCredentials) Rotate(username, currentPassword, newPassword string) error {
	if _, err := c.Verify(username, currentPassword); err != nil {
		return errs.NewUnauthorizedError("current password is incorrect")
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	return c.users.UpdatePassword(username, hash)
}

// HashPassword produces a bcrypt hash suitable for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
