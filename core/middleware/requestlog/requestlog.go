package requestlog

import (
	"errors"
	"time"

	"devserve/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New returns a middleware that logs every request at debug level.
// Handler errors are logged and passed on to the app's error handler.
func New(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		l := logger.WithRayID(log, c)

		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if err != nil {
			status = fiber.StatusInternalServerError
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.String("ip", c.IP()),
			zap.Duration("duration", time.Since(start)),
		}

		// 4xx are routine for a file server; only unexpected failures go above debug
		if err != nil && fe == nil {
			l.Error("Request error", append(fields, zap.Error(err))...)
		} else {
			l.Debug("Request served", fields...)
		}
		return err
	}
}
