package static

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"go.uber.org/zap"
)

// IndexFile is served for a directory request when present.
const IndexFile = "index.html"

// Handler serves files from a document root.
type Handler struct {
	root   string
	logger *zap.Logger
}

// NewHandler creates a new static file handler rooted at root.
func NewHandler(root string, logger *zap.Logger) *Handler {
	return &Handler{root: root, logger: logger}
}

// RegisterRoutes registers GET and HEAD for every path under "/".
// Files are opened per request, so edits and deletions show up immediately.
// Directories serve IndexFile or a generated listing. Anything missing falls
// through to the app's 404.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	h.logger.Debug("Serving static files", zap.String("root", h.root))
	app.Get("/*", filesystem.New(filesystem.Config{
		Root:   http.Dir(h.root),
		Index:  "/" + IndexFile,
		Browse: true,
	}))
}
