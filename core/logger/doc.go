// Package logger provides a structured logging facility based on Zap.
//
// It builds a logger for either development (console) or production (json) use
// and integrates with the Fiber request context.
//
// # Output
//
// Everything is written to stderr. Standard output belongs to the launcher,
// which prints exactly two human-readable lines per run.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches it to
// the log entry, so all logs related to a single request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Debug("Serving file", zap.String("path", c.Path()))
package logger
