// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - RequestLog: Logs each request through Zap, tagged with its RayID.
//
// Both are installed globally by server.NewApp.
package middleware
