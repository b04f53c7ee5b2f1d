// Package browser launches the user's default web browser.
//
// Opening the browser is a side effect that must never affect the server, so
// callers go through OpenQuietly, which drops errors and recovers panics. The
// Opener interface lets tests substitute mocks.Opener or Nop for the System
// implementation backed by github.com/pkg/browser.
package browser
