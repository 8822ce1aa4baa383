package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog records user actions surfaced in the dashboard's recent
// activity feed. Metadata holds action-specific fields as JSON.
type ActivityLog struct {
	gorm.Model
	UserID   uint           `json:"user_id" gorm:"index;not null"`
	Action   string         `json:"action"` // SECTION_PROGRESS, SECTION_VISIT
	Metadata datatypes.JSON `json:"metadata"`
}
