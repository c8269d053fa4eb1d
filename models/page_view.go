package models

import "time"

// PageView records a single visit to a page
type PageView struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	PageName  string    `json:"page_name" db:"page_name" gorm:"type:text;not null"`
	IPAddress string    `json:"ip_address" db:"ip_address" gorm:"type:text"`
	UserAgent string    `json:"user_agent" db:"user_agent" gorm:"type:text"`
	ViewedAt  time.Time `json:"viewed_at" db:"viewed_at" gorm:"not null;index:idx_page_views_viewed_at"`
}
