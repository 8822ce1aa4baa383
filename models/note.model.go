package models

import "gorm.io/gorm"

// ShortNote is a threaded note on a section. Root notes have a nil ParentID;
// replies point at another note in the same section. Authenticated notes
// carry a UserID; guest replies carry a display name instead.
type ShortNote struct {
	gorm.Model
	SectionID uint   `json:"section_id" gorm:"index;not null"`
	UserID    *uint  `json:"user_id" gorm:"index"`
	GuestName string `json:"guest_name" gorm:"default:''"`
	Text      string `json:"text"`
	IsDone    bool   `json:"is_done" gorm:"default:false"`
	SortOrder *int   `json:"sort_order"`
	ParentID  *uint  `json:"parent_id" gorm:"index"`
}

// IsGuest reports whether the note was authored by an unauthenticated actor
func (n *ShortNote) IsGuest() bool {
	return n.UserID == nil
}

// AuthorLabel is the display name rendered next to the note. Guest-authored
// notes get a "(guest)" suffix.
func (n *ShortNote) AuthorLabel(userName string) string {
	if n.IsGuest() {
		return n.GuestName + " (guest)"
	}
	return userName
}

// NoteAttachment is a file reference bound to a single note. File content
// lives under the upload directory, addressed only by FilePath.
type NoteAttachment struct {
	gorm.Model
	ShortNoteID uint   `json:"short_note_id" gorm:"index;not null"`
	FileName    string `json:"file_name"`
	FilePath    string `json:"file_path"` // Opaque storage key
	FileSize    int64  `json:"file_size"`
	FileType    string `json:"file_type"`
}
