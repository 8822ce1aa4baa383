package models

import "gorm.io/gorm"

// Resource types
const (
	ResourceLink  = "link"
	ResourceVideo = "video"
	ResourceDoc   = "doc"
)

// Resource is a link/video/doc reference attached to a section or, when
// SectionID is nil, shared across the whole module.
type Resource struct {
	gorm.Model
	ModuleID  uint   `json:"module_id" gorm:"index;not null"`
	SectionID *uint  `json:"section_id" gorm:"index"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Type      string `json:"type" gorm:"default:'link'"`
}

// ValidResourceType reports whether t is one of the known resource types
func ValidResourceType(t string) bool {
	switch t {
	case ResourceLink, ResourceVideo, ResourceDoc:
		return true
	}
	return false
}
