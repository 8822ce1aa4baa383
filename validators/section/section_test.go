package sectionValidator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSectionValidatorApp() *fiber.App {
	app := fiber.New()
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

	app.Post("/sections", CreateSection(), ok)
	app.Delete("/sections", DeleteSection(), ok)
	return app
}

func postSection(t *testing.T, app *fiber.App, body string) int {
	req := httptest.NewRequest("POST", "/sections", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestCreateSectionValidation(t *testing.T) {
	app := newSectionValidatorApp()

	// Order may be omitted; the controller assigns the next index
	assert.Equal(t, fiber.StatusOK, postSection(t, app, `{"module_id": 1, "title": "Slices"}`))
	assert.Equal(t, fiber.StatusOK, postSection(t, app, `{"module_id": 1, "title": "Slices", "order": 7}`))

	assert.Equal(t, fiber.StatusBadRequest, postSection(t, app, `{"title": "Slices"}`))
	assert.Equal(t, fiber.StatusBadRequest, postSection(t, app, `{"module_id": 1, "title": "  "}`))
	assert.Equal(t, fiber.StatusBadRequest, postSection(t, app, `{`))
}

func TestDeleteSectionValidation(t *testing.T) {
	app := newSectionValidatorApp()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/sections?id=3", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/sections", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/sections?id=abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
