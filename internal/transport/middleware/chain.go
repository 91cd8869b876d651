// Package middleware holds the HTTP middleware wrapped around the viewer API.
package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/heartmarshall/flashdeck/internal/config"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so the first one is outermost:
// Chain(a, b)(h) serves a(b(h)).
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for _, mw := range slices.Backward(mws) {
			h = mw(h)
		}
		return h
	}
}

// Standard is the stack every API request passes through. RequestID runs
// first so the access log and the panic log share the ID. Logger sits
// outside Recovery so a recovered panic is logged as a 500. CORS is
// innermost and answers preflights itself.
func Standard(logger *slog.Logger, cors config.CORSConfig) Middleware {
	return Chain(
		RequestID(),
		Logger(logger),
		Recovery(logger),
		CORS(cors),
	)
}
