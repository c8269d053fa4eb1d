package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jmfierro/portfolio-site-backend/errs"
	"github.com/jmfierro/portfolio-site-backend/models"
)

func TestSkillRepoAddRequiresName(t *testing.T) {
	db := newTestDB(t)
	repo := NewSkillRepo(db)

	err := repo.Add(&models.Skill{Name: ""})
	require.Error(t, err)

	apiErr, ok := err.(*errs.ApiErr)
	require.True(t, ok)
	require.Equal(t, 400, apiErr.StatusCode)
}

func TestSkillRepoFeaturedFilterAndOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewSkillRepo(db)

	require.NoError(t, repo.Add(&models.Skill{Name: "Go", IsFeatured: true, DisplayOrder: 2}))
	require.NoError(t, repo.Add(&models.Skill{Name: "Docker", IsFeatured: true, DisplayOrder: 1}))
	require.NoError(t, repo.Add(&models.Skill{Name: "COBOL"}))

	featured, err := repo.FindFeatured()
	require.NoError(t, err)
	require.Len(t, featured, 2)
	require.Equal(t, "Docker", featured[0].Name)
	require.Equal(t, "Go", featured[1].Name)

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestSkillRepoUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	repo := NewSkillRepo(db)

	skill := models.Skill{Name: "Go", Category: "backend"}
	require.NoError(t, repo.Add(&skill))

	level := 5
	require.NoError(t, repo.Update(skill.ID, SkillUpdate{ProficiencyLevel: &level}))

	var found models.Skill
	require.NoError(t, db.Where("id = ?", skill.ID).First(&found).Error)
	require.Equal(t, 5, found.ProficiencyLevel)
	require.Equal(t, "backend", found.Category)
	require.Equal(t, "Go", found.Name)
}

func TestSkillRepoUpdateMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewSkillRepo(db)

	name := "nope"
	err := repo.Update(uuid.New(), SkillUpdate{Name: &name})
	require.Error(t, err)

	apiErr, ok := err.(*errs.ApiErr)
	require.True(t, ok)
	require.Equal(t, 404, apiErr.StatusCode)
}

func TestSkillRepoDeleteMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewSkillRepo(db)

	skill := models.Skill{Name: "Go"}
	require.NoError(t, repo.Add(&skill))
	require.NoError(t, repo.Delete(skill.ID))

	err := repo.Delete(skill.ID)
	require.Error(t, err)

	apiErr, ok := err.(*errs.ApiErr)
	require.True(t, ok)
	require.Equal(t, 404, apiErr.StatusCode)
}
