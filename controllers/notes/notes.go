package notesController

import (
	"log"
	"os"
	attachmentController "studytrack/controllers/attachment"
	"studytrack/database"
	"studytrack/middleware"
	"studytrack/models"
	"studytrack/utils"

	"github.com/gofiber/fiber/v2"
)

// PendingAttachment is an upload chosen while composing a note, persisted
// only once the note row exists
type PendingAttachment struct {
	FileName string `json:"file_name"`
	FilePath string `json:"file_path"`
	FileSize int64  `json:"file_size"`
	FileType string `json:"file_type"`
}

// NoteNode is one rendered node of the reply tree
type NoteNode struct {
	models.ShortNote
	Author      string                  `json:"author"`
	IsGuestNote bool                    `json:"is_guest"`
	Attachments []models.NoteAttachment `json:"attachments"`
	Replies     []NoteNode              `json:"replies"`
}

// ListSectionNotes returns a section's notes as a nested tree. Notes are
// personal: the listing covers the caller's own notes plus guest replies, and
// a session-less request sees nothing. The sort query picks the flat ordering
// applied before grouping.
func ListSectionNotes(c *fiber.Ctx) error {
	sectionID, ok := c.Locals("sectionID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Section ID!", nil)
	}

	db := database.Database.Db

	var section models.Section
	if err := db.Where("id = ? AND is_deleted = ?", sectionID, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	userId, authed := c.Locals("userId").(uint)
	if !authed {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Notes fetched successfully!", fiber.Map{
			"count": 0,
			"notes": []NoteNode{},
		})
	}

	var notes []models.ShortNote
	if err := db.Where("section_id = ? AND (user_id = ? OR user_id IS NULL)", sectionID, userId).Find(&notes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notes!", nil)
	}

	sorted := SortNotes(notes, ParseSortOption(c.Query("sort")))
	tree := BuildTree(sorted)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notes fetched successfully!", fiber.Map{
		"count": len(notes),
		"notes": renderThread(tree, 0, loadAttachmentMap(notes), loadAuthorNames(notes)),
	})
}

// CreateNote adds a root note to a section. Root notes require an
// authenticated identity; pending attachments are bound after the note row
// exists and discarded if the insert fails.
func CreateNote(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedNote").(*struct {
		SectionID   uint                `json:"section_id"`
		Text        string              `json:"text"`
		Attachments []PendingAttachment `json:"attachments"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var section models.Section
	if err := db.Where("id = ? AND is_deleted = ?", reqData.SectionID, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	note := models.ShortNote{
		SectionID: reqData.SectionID,
		UserID:    &userId,
		Text:      reqData.Text,
	}

	if err := db.Create(&note).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create note!", nil)
	}

	bindPendingAttachments(note.ID, reqData.Attachments)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Note created successfully!", note)
}

// ReplyNote creates a reply under an existing note. Authenticated users reply
// under their own identity; guests must supply a display name and are tagged
// as guest authors.
func ReplyNote(c *fiber.Ctx) error {
	noteID, ok := c.Locals("noteID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Note ID!", nil)
	}

	reqData, ok := c.Locals("validatedReply").(*struct {
		Text        string              `json:"text"`
		GuestName   string              `json:"guest_name"`
		Attachments []PendingAttachment `json:"attachments"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	userId, authed := c.Locals("userId").(uint)
	if !authed && reqData.GuestName == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"guest_name": "Name is required for guest replies!",
		})
	}

	db := database.Database.Db

	var parent models.ShortNote
	if err := db.Where("id = ?", noteID).First(&parent).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Note not found!", nil)
	}

	// Parent must be a usable reply target within its own section
	var sectionNotes []models.ShortNote
	if err := db.Where("section_id = ?", parent.SectionID).Find(&sectionNotes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notes!", nil)
	}
	if err := ValidateParent(sectionNotes, 0, parent.ID, parent.SectionID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	parentID := parent.ID
	reply := models.ShortNote{
		SectionID: parent.SectionID,
		Text:      reqData.Text,
		ParentID:  &parentID,
	}
	if authed {
		reply.UserID = &userId
	} else {
		reply.GuestName = reqData.GuestName
	}

	if err := db.Create(&reply).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create reply!", nil)
	}

	bindPendingAttachments(reply.ID, reqData.Attachments)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Reply created successfully!", reply)
}

// EditNote replaces a note's text in place. Only the registered owner may
// edit; guest notes are immutable.
func EditNote(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	noteID, ok := c.Locals("noteID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Note ID!", nil)
	}

	reqData, ok := c.Locals("validatedEdit").(*struct {
		Text string `json:"text"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var note models.ShortNote
	if err := db.Where("id = ?", noteID).First(&note).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Note not found!", nil)
	}

	if !CanModify(&note, userId) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, ErrNotNoteOwner.Error(), nil)
	}

	note.Text = reqData.Text
	if err := db.Save(&note).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update note!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Note updated successfully!", note)
}

// ToggleNote flips a note's done flag. Unrelated to section progress.
func ToggleNote(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	noteID, ok := c.Locals("noteID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Note ID!", nil)
	}

	db := database.Database.Db

	var note models.ShortNote
	if err := db.Where("id = ?", noteID).First(&note).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Note not found!", nil)
	}

	if !CanModify(&note, userId) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, ErrNotNoteOwner.Error(), nil)
	}

	note.IsDone = !note.IsDone
	if err := db.Save(&note).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update note!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Note updated successfully!", note)
}

// DeleteNote removes a note and its own attachments. Replies parented to the
// note keep their rows and simply drop out of the rendered tree.
func DeleteNote(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	noteID, ok := c.Locals("noteID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Note ID!", nil)
	}

	db := database.Database.Db

	var note models.ShortNote
	if err := db.Where("id = ?", noteID).First(&note).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Note not found!", nil)
	}

	if !CanModify(&note, userId) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, ErrNotNoteOwner.Error(), nil)
	}

	var attachments []models.NoteAttachment
	db.Where("short_note_id = ?", note.ID).Find(&attachments)

	tx := db.Begin()
	if err := tx.Where("short_note_id = ?", note.ID).Delete(&models.NoteAttachment{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete attachments!", nil)
	}
	if err := tx.Delete(&note).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete note!", nil)
	}
	tx.Commit()

	for _, att := range attachments {
		path, err := utils.ResolveStoragePath(att.FilePath)
		if err != nil {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("Error removing stored file %s: %v", att.FilePath, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Note deleted successfully!", nil)
}

// EmbeddedNote returns the note's render-ready document: raw text plus its
// attachments resolved to signed URLs. Visibility matches the listing: the
// registered owner and guest-authored notes only, everything else reads as
// missing so note ids stay unguessable.
func EmbeddedNote(c *fiber.Ctx) error {
	noteID, ok := c.Locals("noteID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Note ID!", nil)
	}

	db := database.Database.Db

	var note models.ShortNote
	if err := db.Where("id = ?", noteID).First(&note).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Note not found!", nil)
	}

	userId, authed := c.Locals("userId").(uint)
	if !note.IsGuest() && (!authed || *note.UserID != userId) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Note not found!", nil)
	}

	var attachments []models.NoteAttachment
	db.Where("short_note_id = ?", note.ID).Find(&attachments)

	embedded := attachmentController.EmbedAttachments(note.Text, attachments, func(path string, ttl int) (string, error) {
		return utils.CreateSignedURL(path, ttl), nil
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Note rendered successfully!", fiber.Map{
		"id":       note.ID,
		"text":     note.Text,
		"embedded": embedded,
	})
}

// bindPendingAttachments persists buffered attachments against a freshly
// created note, in selection order. Row failures are logged and skipped; the
// file stays on disk for the sweeper.
func bindPendingAttachments(noteID uint, pending []PendingAttachment) {
	db := database.Database.Db
	for _, att := range pending {
		row := models.NoteAttachment{
			ShortNoteID: noteID,
			FileName:    att.FileName,
			FilePath:    att.FilePath,
			FileSize:    att.FileSize,
			FileType:    att.FileType,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("Error binding attachment %s to note %d: %v", att.FileName, noteID, err)
		}
	}
}

// loadAttachmentMap groups attachment rows by owning note
func loadAttachmentMap(notes []models.ShortNote) map[uint][]models.NoteAttachment {
	attachmentMap := map[uint][]models.NoteAttachment{}
	if len(notes) == 0 {
		return attachmentMap
	}

	ids := make([]uint, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}

	var rows []models.NoteAttachment
	database.Database.Db.Where("short_note_id IN ?", ids).Find(&rows)
	for _, row := range rows {
		attachmentMap[row.ShortNoteID] = append(attachmentMap[row.ShortNoteID], row)
	}
	return attachmentMap
}

// loadAuthorNames resolves display names for the registered authors in a
// note set
func loadAuthorNames(notes []models.ShortNote) map[uint]string {
	idSet := map[uint]bool{}
	for _, n := range notes {
		if n.UserID != nil {
			idSet[*n.UserID] = true
		}
	}
	names := map[uint]string{}
	if len(idSet) == 0 {
		return names
	}

	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	var users []models.User
	database.Database.Db.Select("id, name").Where("id IN ?", ids).Find(&users)
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names
}

// renderThread walks one tree level depth-first
func renderThread(tree map[uint][]models.ShortNote, parentID uint, attachments map[uint][]models.NoteAttachment, names map[uint]string) []NoteNode {
	children := tree[parentID]
	nodes := make([]NoteNode, 0, len(children))
	for _, n := range children {
		var name string
		if n.UserID != nil {
			name = names[*n.UserID]
		}
		nodes = append(nodes, NoteNode{
			ShortNote:   n,
			Author:      n.AuthorLabel(name),
			IsGuestNote: n.IsGuest(),
			Attachments: attachments[n.ID],
			Replies:     renderThread(tree, n.ID, attachments, names),
		})
	}
	return nodes
}
