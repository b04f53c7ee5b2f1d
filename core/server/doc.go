// Package server holds the HTTP server configuration and the Fiber application
// shared by all features.
//
// # Configuration
//
// The Config struct defines the listen host and port. An empty host binds all
// interfaces and the default port is 8000.
//
// # Application
//
// NewApp returns a Fiber app with the startup banner disabled, panic recovery,
// request IDs and debug request logging installed. ErrorHandler turns every
// request error (404, 405, 501, ...) into a minimal HTML page.
package server
