package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jmfierro/portfolio-site-backend/errs"
	"github.com/jmfierro/portfolio-site-backend/models"
)

func strPtr(s string) *string { return &s }

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestProjectRepoCreateWithTechnologies(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)

	project := models.Project{Title: "X", IsFeatured: true}
	require.NoError(t, repo.Create(&project, []string{"Go", "Rust", "Postgres"}))
	require.NotEqual(t, uuid.Nil, project.ID)

	found, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	require.Equal(t, "X", found.Title)
	require.Equal(t, []string{"Go", "Rust", "Postgres"}, found.TechnologyNames())
}

func TestProjectRepoCreateRequiresTitle(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)

	err := repo.Create(&models.Project{Title: "   "}, []string{"Go"})
	require.Error(t, err)

	apiErr, ok := err.(*errs.ApiErr)
	require.True(t, ok)
	require.Equal(t, 400, apiErr.StatusCode)

	require.EqualValues(t, 0, countRows(t, db, &models.Project{}))
	require.EqualValues(t, 0, countRows(t, db, &models.ProjectTechnology{}))
}

func TestProjectRepoCreateRollsBackOnTechnologyFailure(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)

	// Force the tag bulk-insert to fail after the project insert succeeds
	require.NoError(t, db.Migrator().DropTable(&models.ProjectTechnology{}))

	err := repo.Create(&models.Project{Title: "doomed"}, []string{"Go"})
	require.Error(t, err)

	require.EqualValues(t, 0, countRows(t, db, &models.Project{}))
}

func TestProjectRepoUpdatePartialFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)

	project := models.Project{Title: "before", Description: "keep me"}
	require.NoError(t, repo.Create(&project, nil))

	err := repo.Update(project.ID, ProjectUpdate{Title: strPtr("after")}, nil)
	require.NoError(t, err)

	found, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	require.Equal(t, "after", found.Title)
	require.Equal(t, "keep me", found.Description)
}

func TestProjectRepoUpdateTechnologiesReplaceVsAbsent(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)

	project := models.Project{Title: "X"}
	require.NoError(t, repo.Create(&project, []string{"Go", "Rust"}))

	// Absent technologies leave the tag set untouched
	require.NoError(t, repo.Update(project.ID, ProjectUpdate{Title: strPtr("Y")}, nil))
	found, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"Go", "Rust"}, found.TechnologyNames())

	// A provided set fully replaces the old one, in order
	replacement := []string{"Rust"}
	require.NoError(t, repo.Update(project.ID, ProjectUpdate{}, &replacement))
	found, err = repo.FindByID(project.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"Rust"}, found.TechnologyNames())

	// An explicitly empty set clears all tags
	empty := []string{}
	require.NoError(t, repo.Update(project.ID, ProjectUpdate{}, &empty))
	found, err = repo.FindByID(project.ID)
	require.NoError(t, err)
	require.Empty(t, found.TechnologyNames())
}

func TestProjectRepoUpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)

	err := repo.Update(uuid.New(), ProjectUpdate{Title: strPtr("nope")}, nil)
	require.Error(t, err)

	apiErr, ok := err.(*errs.ApiErr)
	require.True(t, ok)
	require.Equal(t, 404, apiErr.StatusCode)
}

func TestProjectRepoFeaturedVisibility(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)

	featured := models.Project{Title: "visible", IsFeatured: true}
	hidden := models.Project{Title: "hidden"}
	require.NoError(t, repo.Create(&featured, nil))
	require.NoError(t, repo.Create(&hidden, nil))

	list, err := repo.FindFeatured()
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "visible", list[0].Title)

	// The public lookup must not see an unfeatured project even with a valid id
	_, err = repo.FindFeaturedByID(hidden.ID)
	require.Error(t, err)
	apiErr, ok := err.(*errs.ApiErr)
	require.True(t, ok)
	require.Equal(t, 404, apiErr.StatusCode)

	// The admin listing has no visibility filter
	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestProjectRepoFeaturedOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)

	second := models.Project{Title: "second", IsFeatured: true, DisplayOrder: 2}
	first := models.Project{Title: "first", IsFeatured: true, DisplayOrder: 1}
	require.NoError(t, repo.Create(&second, nil))
	require.NoError(t, repo.Create(&first, nil))

	list, err := repo.FindFeatured()
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "first", list[0].Title)
	require.Equal(t, "second", list[1].Title)
}

func TestProjectRepoDeleteRemovesTechnologies(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)

	project := models.Project{Title: "X"}
	require.NoError(t, repo.Create(&project, []string{"Go", "Rust"}))
	require.EqualValues(t, 2, countRows(t, db, &models.ProjectTechnology{}))

	require.NoError(t, repo.Delete(project.ID))
	require.EqualValues(t, 0, countRows(t, db, &models.Project{}))
	require.EqualValues(t, 0, countRows(t, db, &models.ProjectTechnology{}))

	// A second delete finds nothing
	err := repo.Delete(project.ID)
	require.Error(t, err)
	apiErr, ok := err.(*errs.ApiErr)
	require.True(t, ok)
	require.Equal(t, 404, apiErr.StatusCode)
}
