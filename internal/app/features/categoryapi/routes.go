package categoryapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pearlpoint/clinicms/internal/app/system/apicors"
	"github.com/pearlpoint/clinicms/internal/app/system/auth"
	"go.uber.org/zap"
)

// Routes returns a router with the service-category endpoints.
//
// When mounted at /api/categories:
//   - GET    /            - Public list of active categories (?includeInactive=true for all)
//   - GET    /{id}        - Public read of one category
//   - GET    /admin       - Full list including inactive (admin or editor key)
//   - POST   /            - Create a category (admin or editor key)
//   - PUT    /{id}        - Update a category (admin or editor key)
//   - DELETE /{id}        - Delete a category (admin key)
//   - POST   /initialize  - Seed missing built-in categories (admin key)
//
// Reads are public; writes require API key auth via Bearer token.
// CORS is permissive (allows any origin) since API key auth is used.
func Routes(h *Handler, adminKey, editorKey string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// API CORS - permissive for API key auth
	r.Use(apicors.Middleware())

	// Public navigation reads
	r.Get("/", h.ListHandler)
	r.Get("/{id}", h.GetHandler)

	// Editing endpoints - API key authentication
	r.Group(func(er chi.Router) {
		er.Use(auth.KeyAuth(adminKey, editorKey, logger))

		er.Get("/admin", h.AdminListHandler)
		er.Post("/", h.CreateHandler)
		er.Put("/{id}", h.UpdateHandler)

		// Destructive operations are admin-only
		er.Group(func(ar chi.Router) {
			ar.Use(auth.RequireRole(auth.RoleAdmin, logger))
			ar.Delete("/{id}", h.DeleteHandler)
			ar.Post("/initialize", h.InitializeHandler)
		})
	})

	return r
}

func idParam(r *http.Request) string {
	return chi.URLParam(r, "id")
}
