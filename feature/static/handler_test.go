package static

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"devserve/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const indexHTML = "<html><body>hello</body></html>\n"

func setupTestApp(t *testing.T) (*fiber.App, string) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte(indexHTML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "graph.json"), []byte(`{"nodes":[]}`), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "js"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "js", "main.js"), []byte("let graph = null;\n"), 0o644))

	app := server.NewApp(zap.NewNop())
	NewHandler(root, zap.NewNop()).RegisterRoutes(app)
	return app, root
}

func TestHandleGetFile(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/index.html", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, indexHTML, string(body))
}

func TestHandleGetNestedFile(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/js/main.js", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "let graph = null;\n", string(body))
}

func TestHandleHeadFile(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("HEAD", "/index.html", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, strconv.Itoa(len(indexHTML)), resp.Header.Get(fiber.HeaderContentLength))

	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body)
}

func TestHandleDirectoryIndex(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, indexHTML, string(body))
}

func TestHandleDirectoryListing(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/js/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "main.js")
}

func TestHandleMissingFile(t *testing.T) {
	app, _ := setupTestApp(t)

	for _, method := range []string{"GET", "HEAD"} {
		t.Run(method, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(method, "/missing.html", nil))
			require.NoError(t, err)
			assert.Equal(t, 404, resp.StatusCode)
		})
	}
}

func TestHandleUnsupportedMethod(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/index.html", nil))
	require.NoError(t, err)
	assert.Equal(t, 405, resp.StatusCode)
}

func TestHandleUnknownMethod(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("BREW", "/index.html", nil))
	require.NoError(t, err)
	assert.Equal(t, 501, resp.StatusCode)
}

func TestHandleFileChangedBetweenRequests(t *testing.T) {
	app, root := setupTestApp(t)
	path := filepath.Join(root, "graph.json")

	get := func() (int, string) {
		resp, err := app.Test(httptest.NewRequest("GET", "/graph.json", nil))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(body)
	}

	status, body := get()
	assert.Equal(t, 200, status)
	assert.Equal(t, `{"nodes":[]}`, body)

	require.NoError(t, os.WriteFile(path, []byte(`{"nodes":[],"edges":[{"source":1}]}`), 0o644))
	status, body = get()
	assert.Equal(t, 200, status)
	assert.Equal(t, `{"nodes":[],"edges":[{"source":1}]}`, body)

	require.NoError(t, os.Remove(path))
	status, _ = get()
	assert.Equal(t, 404, status)
}

func TestHandleFileCreatedAfterStart(t *testing.T) {
	app, root := setupTestApp(t)

	require.NoError(t, os.WriteFile(filepath.Join(root, "late.txt"), []byte("late"), 0o644))

	resp, err := app.Test(httptest.NewRequest("GET", "/late.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
