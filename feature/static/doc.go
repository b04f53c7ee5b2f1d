// Package static serves the document root over HTTP.
//
// File serving itself is delegated to Fiber's filesystem middleware. GET and HEAD on a
// file return its bytes (HEAD without a body), directories return index.html or
// a generated listing, and unknown paths fall through to a 404.
package static
