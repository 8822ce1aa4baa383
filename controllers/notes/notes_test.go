package notesController

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"studytrack/config"
	"studytrack/database"
	"studytrack/middleware"
	"studytrack/models"
	sectionValidators "studytrack/validators/section"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDb(t *testing.T) *gorm.DB {
	config.AppConfig = &config.Config{
		JWTKey:       "test-key",
		UploadDir:    t.TempDir(),
		PublicURL:    "http://localhost:3000",
		SignedURLTTL: 3600,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Module{},
		&models.Section{},
		&models.ShortNote{},
		&models.NoteAttachment{},
	))

	database.Database = database.DbInstance{Db: db}
	return db
}

func authCookie(t *testing.T, user models.User) *http.Cookie {
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.AuthCookieName, Value: token}
}

// noteIDParam stands in for the route's id validator
func noteIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Note ID!", nil)
		}
		c.Locals("noteID", id)
		return c.Next()
	}
}

func newNotesTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/sections/:id/notes", middleware.OptionalJWTMiddleware, sectionValidators.SectionID(), ListSectionNotes)
	app.Get("/notes/:id/embedded", middleware.OptionalJWTMiddleware, noteIDParam(), EmbeddedNote)
	return app
}

type notesListPayload struct {
	Data struct {
		Count int        `json:"count"`
		Notes []NoteNode `json:"notes"`
	} `json:"data"`
}

func listNotes(t *testing.T, app *fiber.App, sectionID uint, cookie *http.Cookie) (int, notesListPayload) {
	req := httptest.NewRequest("GET", fmt.Sprintf("/sections/%d/notes", sectionID), nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload notesListPayload
	require.NoError(t, json.Unmarshal(raw, &payload))
	return resp.StatusCode, payload
}

func TestListSectionNotesScopedToCaller(t *testing.T) {
	db := setupTestDb(t)

	ann := models.User{Name: "Ann", Email: "ann@example.com", Password: "x"}
	bo := models.User{Name: "Bo", Email: "bo@example.com", Password: "x"}
	require.NoError(t, db.Create(&ann).Error)
	require.NoError(t, db.Create(&bo).Error)

	module := models.Module{Title: "Go Basics"}
	require.NoError(t, db.Create(&module).Error)
	section := models.Section{ModuleID: module.ID, Title: "Slices", OrderIndex: 1}
	require.NoError(t, db.Create(&section).Error)

	annNote := models.ShortNote{SectionID: section.ID, UserID: &ann.ID, Text: "ann's note"}
	require.NoError(t, db.Create(&annNote).Error)
	boNote := models.ShortNote{SectionID: section.ID, UserID: &bo.ID, Text: "bo's note"}
	require.NoError(t, db.Create(&boNote).Error)
	parentID := annNote.ID
	guestReply := models.ShortNote{SectionID: section.ID, GuestName: "Visitor", Text: "a guest reply", ParentID: &parentID}
	require.NoError(t, db.Create(&guestReply).Error)

	app := newNotesTestApp()

	// A session-less request sees nothing
	status, payload := listNotes(t, app, section.ID, nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Zero(t, payload.Data.Count)
	assert.Empty(t, payload.Data.Notes)

	// Ann sees her own thread plus the guest reply, never Bo's note
	status, payload = listNotes(t, app, section.ID, authCookie(t, ann))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 2, payload.Data.Count)
	require.Len(t, payload.Data.Notes, 1)
	assert.Equal(t, "ann's note", payload.Data.Notes[0].Text)
	require.Len(t, payload.Data.Notes[0].Replies, 1)
	assert.Equal(t, "a guest reply", payload.Data.Notes[0].Replies[0].Text)
	assert.Equal(t, "Visitor (guest)", payload.Data.Notes[0].Replies[0].Author)
}

func TestEmbeddedNoteHiddenFromNonOwners(t *testing.T) {
	db := setupTestDb(t)

	ann := models.User{Name: "Ann", Email: "ann@example.com", Password: "x"}
	bo := models.User{Name: "Bo", Email: "bo@example.com", Password: "x"}
	require.NoError(t, db.Create(&ann).Error)
	require.NoError(t, db.Create(&bo).Error)

	module := models.Module{Title: "Go Basics"}
	require.NoError(t, db.Create(&module).Error)
	section := models.Section{ModuleID: module.ID, Title: "Slices", OrderIndex: 1}
	require.NoError(t, db.Create(&section).Error)

	annNote := models.ShortNote{SectionID: section.ID, UserID: &ann.ID, Text: "ann's note"}
	require.NoError(t, db.Create(&annNote).Error)
	require.NoError(t, db.Create(&models.NoteAttachment{
		ShortNoteID: annNote.ID, FileName: "notes.pdf", FilePath: "abc.pdf", FileSize: 1500, FileType: "application/pdf",
	}).Error)
	guestNote := models.ShortNote{SectionID: section.ID, GuestName: "Visitor", Text: "a guest reply"}
	require.NoError(t, db.Create(&guestNote).Error)

	app := newNotesTestApp()

	embeddedStatus := func(noteID uint, cookie *http.Cookie) int {
		req := httptest.NewRequest("GET", fmt.Sprintf("/notes/%d/embedded", noteID), nil)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	// Registered notes never render for anyone but their owner
	assert.Equal(t, fiber.StatusNotFound, embeddedStatus(annNote.ID, nil))
	assert.Equal(t, fiber.StatusNotFound, embeddedStatus(annNote.ID, authCookie(t, bo)))
	assert.Equal(t, fiber.StatusOK, embeddedStatus(annNote.ID, authCookie(t, ann)))

	// Guest-authored notes stay readable; they are the shared artifact
	assert.Equal(t, fiber.StatusOK, embeddedStatus(guestNote.ID, nil))
}
