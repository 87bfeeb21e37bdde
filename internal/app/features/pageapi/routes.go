package pageapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pearlpoint/clinicms/internal/app/system/apicors"
	"github.com/pearlpoint/clinicms/internal/app/system/auth"
	"go.uber.org/zap"
)

// Routes returns a router with the page-content endpoints for one page type.
//
// When mounted at /api/pages/<name>:
//   - GET    /          - Public read (published only for the lifecycle type)
//   - GET    /admin     - Newest document regardless of status (lifecycle type only)
//   - PUT    /          - Update the whole document (admin or editor key)
//   - PUT    /{section} - Patch one section (admin or editor key)
//   - PATCH  /publish   - Transition to published (lifecycle type only)
//   - PATCH  /archive   - Transition to archived (lifecycle type only)
//   - DELETE /reset     - Reset to default content (admin key)
//   - POST   /reset     - Same as DELETE /reset (admin key)
//
// Reads are public; writes require API key auth via Bearer token.
// CORS is permissive (allows any origin) since API key auth is used.
func Routes(h *Handler, adminKey, editorKey string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// API CORS - permissive for API key auth
	r.Use(apicors.Middleware())

	// Public site read
	r.Get("/", h.GetHandler)

	// Editing endpoints - API key authentication
	r.Group(func(er chi.Router) {
		er.Use(auth.KeyAuth(adminKey, editorKey, logger))

		if h.pt.Lifecycle {
			er.Get("/admin", h.AdminGetHandler)
			er.Patch("/publish", h.PublishHandler)
			er.Patch("/archive", h.ArchiveHandler)
		}

		er.Put("/", h.ReplaceHandler)
		er.Put("/{section}", h.PatchSectionHandler)

		// Destructive reset is admin-only
		er.Group(func(ar chi.Router) {
			ar.Use(auth.RequireRole(auth.RoleAdmin, logger))
			ar.Delete("/reset", h.ResetHandler)
			ar.Post("/reset", h.ResetHandler)
		})
	})

	return r
}

func sectionParam(r *http.Request) string {
	return chi.URLParam(r, "section")
}
