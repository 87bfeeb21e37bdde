package leadapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pearlpoint/clinicms/internal/app/system/apicors"
	"github.com/pearlpoint/clinicms/internal/app/system/auth"
	"go.uber.org/zap"
)

// Routes returns a router with the lead-submission endpoints.
//
// When mounted at /api/leads:
//   - POST   /submit - Record a form submission (public)
//   - GET    /       - List submissions with filters (admin key)
//   - GET    /{id}   - Fetch one submission (admin key)
//   - PUT    /{id}   - Update workflow fields (admin key)
//   - DELETE /{id}   - Delete a submission (admin key)
//
// Submission is public so the marketing site can post without
// credentials; the queue holds patient contact details, so everything
// else is admin-only.
// CORS is permissive (allows any origin) since API key auth is used.
func Routes(h *Handler, adminKey, editorKey string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// API CORS - permissive for API key auth
	r.Use(apicors.Middleware())

	// Public form submission
	r.Post("/submit", h.SubmitHandler)

	// Queue management - admin key only
	r.Group(func(mr chi.Router) {
		mr.Use(auth.KeyAuth(adminKey, editorKey, logger))
		mr.Use(auth.RequireRole(auth.RoleAdmin, logger))

		mr.Get("/", h.ListHandler)
		mr.Get("/{id}", h.GetHandler)
		mr.Put("/{id}", h.UpdateHandler)
		mr.Delete("/{id}", h.DeleteHandler)
	})

	return r
}

func idParam(r *http.Request) string {
	return chi.URLParam(r, "id")
}
