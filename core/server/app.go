package server

import (
	"devserve/core/middleware/rayid"
	"devserve/core/middleware/requestlog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// NewApp creates the Fiber application with the error handler and the
// middleware chain shared by every feature.
func NewApp(log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // The launcher prints its own announcement
		ErrorHandler:          ErrorHandler,
	})

	// Panics in a handler become 500 responses instead of killing the process
	app.Use(recover.New())
	app.Use(rayid.New())
	app.Use(requestlog.New(log))

	return app
}
