package static

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	root    string
	handler *Handler
}

// NewFeature creates the static file feature for root.
func NewFeature(root string, logger *zap.Logger) *Feature {
	return &Feature{root: root, handler: NewHandler(root, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "static"
}

// IsEnabled reports whether a document root was given.
func (f *Feature) IsEnabled() bool {
	return f.root != ""
}

// Load checks the document root and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	info, err := os.Stat(f.root)
	if err != nil {
		return fmt.Errorf("document root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("document root %s is not a directory", f.root)
	}
	f.handler.RegisterRoutes(app)
	return nil
}
