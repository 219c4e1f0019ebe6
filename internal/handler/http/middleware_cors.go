package http

import (
	"net/http"
	"slices"

	"github.com/go-chi/cors"
)

const corsMaxAge = 600

var corsAllowedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

var corsAllowedHeaders = []string{
	"Accept",
	"Authorization",
	"Content-Type",
	"Content-Encoding",
	traceIDHeader,
}

// withCORS lets browsers on the configured origins call the API with
// credentials. "*" in the configuration admits any origin; the request
// origin is echoed back instead of "*" so credentialed requests still work.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	allowAny := slices.Contains(h.cfg.CORSAllowedOrigins, "*")

	return cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return allowAny || slices.Contains(h.cfg.CORSAllowedOrigins, origin)
		},
		AllowedMethods:   corsAllowedMethods,
		AllowedHeaders:   corsAllowedHeaders,
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})
}
