package models

import "github.com/google/uuid"

// ProjectTechnology is a technology tag owned by exactly one project.
// The auto-increment ID preserves insertion order, which is the display order.
type ProjectTechnology struct {
	ID             uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	ProjectID      uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_project_technologies_project_id"`
	TechnologyName string    `json:"technology_name" db:"technology_name" gorm:"type:text;not null"`
}

func (ProjectTechnology) TableName() string {
	return "project_technologies"
}
