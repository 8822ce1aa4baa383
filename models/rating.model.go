package models

import "gorm.io/gorm"

// Rating is a user's star rating for a section. One per (user, section),
// overwritten by the most recent submission.
type Rating struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"index:idx_rating_user_section,unique;not null"`
	SectionID uint `json:"section_id" gorm:"index:idx_rating_user_section,unique;not null"`
	Stars     int  `json:"stars" gorm:"check:stars>=1 AND stars<=5"`
}
