package models

import "gorm.io/gorm"

// Section progress statuses
const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
	StatusSkipped    = "skipped"
)

// SectionProgress tracks one user's status on one section. One row per
// (user, section); a missing row reads as not_started. UpdatedAt doubles as
// the last-visit timestamp on the dashboard.
type SectionProgress struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index:idx_user_section,unique;not null"`
	SectionID uint   `json:"section_id" gorm:"index:idx_user_section,unique;not null"`
	Status    string `json:"status" gorm:"default:'not_started'"`
}

// ValidStatus reports whether s is one of the known progress statuses
func ValidStatus(s string) bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusDone, StatusSkipped:
		return true
	}
	return false
}
