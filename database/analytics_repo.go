package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/jmfierro/portfolio-site-backend/models"
)

type AnalyticsRepo struct {
	db *gorm.DB
}

func NewAnalyticsRepo(db *gorm.DB) *AnalyticsRepo {
	return &AnalyticsRepo{db}
}

// AnalyticsOverview aggregates pageview counts for the admin dashboard.
type AnalyticsOverview struct {
	TotalViews     int64 `json:"total_views"`
	UniqueVisitors int64 `json:"unique_visitors"`
	TodayViews     int64 `json:"today_views"`
}

// Record inserts a single pageview.
func (r *AnalyticsRepo) Record(view *models.PageView) error {
	if view.ViewedAt.IsZero() {
		view.ViewedAt = time.Now()
	}
	return r.db.Create(view).Error
}

// Overview returns total views, distinct visitor IPs, and views since local midnight.
func (r *AnalyticsRepo) Overview() (*AnalyticsOverview, error) {
	var overview AnalyticsOverview

	if err := r.db.Model(&models.PageView{}).Count(&overview.TotalViews).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.PageView{}).
		Distinct("ip_address").
		Count(&overview.UniqueVisitors).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := r.db.Model(&models.PageView{}).
		Where("viewed_at >= ?", midnight).
		Count(&overview.TodayViews).Error; err != nil {
		return nil, err
	}

	return &overview, nil
}
