package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jmfierro/portfolio-site-backend/database"
)

func newTestCredentials(t *testing.T) *AdminCredentials {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	users := database.NewAdminUserRepo(db)
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	require.NoError(t, users.EnsureAdmin("admin", hash))

	return NewAdminCredentials(users)
}

func TestAdminCredentialsVerify(t *testing.T) {
	creds := newTestCredentials(t)

	identity, err := creds.Verify("admin", "hunter2")
	require.NoError(t, err)
	require.Equal(t, "admin", identity.Username)
}

func TestAdminCredentialsVerifyRejectsBadPassword(t *testing.T) {
	creds := newTestCredentials(t)

	_, err := creds.Verify("admin", "wrong")
	require.Error(t, err)

	// The error must not reveal which field was wrong
	_, unknownUserErr := creds.Verify("nobody", "hunter2")
	require.Error(t, unknownUserErr)
	require.Equal(t, err.Error(), unknownUserErr.Error())
}

func TestAdminCredentialsRotate(t *testing.T) {
	creds := newTestCredentials(t)

	require.Error(t, creds.Rotate("admin", "wrong", "new-password"))

	require.NoError(t, creds.Rotate("admin", "hunter2", "new-password"))

	_, err := creds.Verify("admin", "hunter2")
	require.Error(t, err)

	identity, err := creds.Verify("admin", "new-password")
	require.NoError(t, err)
	require.Equal(t, "admin", identity.Username)
}
