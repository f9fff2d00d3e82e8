// Package middleware provides reusable HTTP middleware for the trip journal API.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// corsMaxAge is how long, in seconds, a browser may cache a preflight answer.
const corsMaxAge = 600

// NewCORSHandler returns a middleware that lets the journal web client, served
// from one of allowedOrigins, call the API. Each origin must be a full origin
// (scheme + host, no trailing slash).
//
// The allowed methods are the ones the router registers. Content-Disposition
// is exposed so the client can read the file name of GET /export.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         corsMaxAge,
	})
	return c.Handler
}
