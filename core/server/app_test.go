package server_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"devserve/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp() *fiber.App {
	app := server.NewApp(zap.NewNop())
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "<short and stout>")
	})
	return app
}

func TestNewApp_NotFoundIsHTML(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/missing.html", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, fiber.MIMETextHTMLCharsetUTF8, resp.Header.Get(fiber.HeaderContentType))

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "<h1>404 Not Found</h1>")
	assert.Contains(t, string(body), "Cannot GET /missing.html")
}

func TestNewApp_MethodNotAllowed(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, 405, resp.StatusCode)
}

func TestNewApp_RecoversPanics(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	// The app keeps serving after a panic
	resp, err = app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestNewApp_SetsRayID(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get("X-Ray-ID"))
}

func TestErrorHandler_EscapesMessage(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/teapot", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "<h1>418 I'm a teapot</h1>")
	assert.Contains(t, string(body), "&lt;short and stout&gt;")
}
