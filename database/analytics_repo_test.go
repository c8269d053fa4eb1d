package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jmfierro/portfolio-site-backend/models"
)

func TestAnalyticsRepoOverview(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnalyticsRepo(db)

	require.NoError(t, repo.Record(&models.PageView{PageName: "home", IPAddress: "10.0.0.1"}))
	require.NoError(t, repo.Record(&models.PageView{PageName: "projects", IPAddress: "10.0.0.1"}))
	require.NoError(t, repo.Record(&models.PageView{PageName: "home", IPAddress: "10.0.0.2"}))

	// A view from two days ago should not count toward today
	old := models.PageView{
		PageName:  "home",
		IPAddress: "10.0.0.3",
		ViewedAt:  time.Now().AddDate(0, 0, -2),
	}
	require.NoError(t, repo.Record(&old))

	overview, err := repo.Overview()
	require.NoError(t, err)
	require.EqualValues(t, 4, overview.TotalViews)
	require.EqualValues(t, 3, overview.UniqueVisitors)
	require.EqualValues(t, 3, overview.TodayViews)
}

func TestAnalyticsRepoRecordDefaultsViewedAt(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnalyticsRepo(db)

	view := models.PageView{PageName: "home", IPAddress: "10.0.0.1"}
	require.NoError(t, repo.Record(&view))
	require.False(t, view.ViewedAt.IsZero())
}
