package models

import "gorm.io/gorm"

// Module represents a top-level study unit containing ordered sections
type Module struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order" gorm:"default:0"` // Module order on the overview page
	IsDeleted   bool   `gorm:"default:false" json:"-"`
}

// Section represents an ordered sub-unit of a module. Progress, ratings,
// notes and resources all hang off sections.
type Section struct {
	gorm.Model
	ModuleID   uint   `json:"module_id" gorm:"index;not null"`
	Title      string `json:"title"`
	OrderIndex int    `json:"order_index" gorm:"default:0"` // Section order in module
	IsDeleted  bool   `gorm:"default:false" json:"-"`
}
