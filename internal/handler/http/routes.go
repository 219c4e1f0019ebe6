package http

import (
	"github.com/MKhiriev/go-circuit-records/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressedContentTypes are compressed for clients accepting gzip. The
// file download route is mounted outside the compressor so stored files keep
// their exact bytes and Content-Length.
var compressedContentTypes = []string{"application/json", "text/plain"}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS())
	router.Use(withGZipRequests)
	router.Use(middleware.Timeout(h.cfg.RequestTimeout))

	compress := middleware.Compress(5, compressedContentTypes...)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(compress)
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/files/{category}/{id}", h.downloadFile)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(compress)

		r.Get("/api/auth/me", h.me)

		r.Post("/api/members", h.createMember)
		r.Get("/api/members", h.listMembers)
		r.Get("/api/members/{id}", h.getMember)
		r.Put("/api/members/{id}", h.updateMember)
		r.Delete("/api/members/{id}", h.deleteMember)

		r.Post("/api/finances", h.createFinancialEntry)
		r.Get("/api/finances", h.listFinancialEntries)

		r.Post("/api/announcements", h.createAnnouncement)
		r.Get("/api/announcements", h.listAnnouncements)

		r.Get("/api/stats/dashboard", h.dashboard)

		r.Post("/api/upload", h.uploadFile)
		r.Get("/api/files/{category}", h.listFiles)

		// administrator only
		r.Group(func(r chi.Router) {
			r.Use(requireRole(models.RoleAdmin))
			r.Get("/api/users", h.listUsers)
			r.Post("/api/users/{id}/activate", h.activateUser)
			r.Post("/api/users/{id}/deactivate", h.deactivateUser)
		})
	})

	return router
}
