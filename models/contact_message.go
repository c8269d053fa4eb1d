package models

import "time"

// ContactMessage stores a submission from the public contact form
type ContactMessage struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Subject   string    `json:"subject" db:"subject" gorm:"type:text"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	IPAddress string    `json:"ip_address" db:"ip_address" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
