package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS wraps the router for browser access from the storefront origin.
// The catalog API is read-only, so only safe methods are allowed.
func CORS(next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(next)
}
