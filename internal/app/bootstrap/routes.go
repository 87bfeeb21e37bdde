// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	categoryapifeature "github.com/pearlpoint/clinicms/internal/app/features/categoryapi"
	healthfeature "github.com/pearlpoint/clinicms/internal/app/features/health"
	leadapifeature "github.com/pearlpoint/clinicms/internal/app/features/leadapi"
	pageapifeature "github.com/pearlpoint/clinicms/internal/app/features/pageapi"
	categorystore "github.com/pearlpoint/clinicms/internal/app/store/category"
	leadstore "github.com/pearlpoint/clinicms/internal/app/store/lead"
	"github.com/pearlpoint/clinicms/internal/app/store/pagecontent"
	"github.com/pearlpoint/clinicms/internal/app/system/jsonutil"
	"github.com/pearlpoint/clinicms/internal/domain/content"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// The API surface is JSON only:
//   - /api/pages/<type>  - one page-content router per page-type descriptor
//   - /api/categories    - service category taxonomy
//   - /api/leads         - public form intake and the dashboard's queue
//   - /health            - health endpoints for load balancers
//
// There is no session or CSRF layer: public reads are anonymous and
// every write authenticates with a Bearer API key, so each feature
// router carries its own permissive CORS and key middleware.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	pageStore := pagecontent.New(deps.MongoDatabase)
	catStore := categorystore.New(deps.MongoDatabase)
	ldStore := leadstore.New(deps.MongoDatabase)

	r := chi.NewRouter()

	// ─────────────────────────────────────────────────────────────────────────────
	// Global Middleware (applies to ALL routes)
	// ─────────────────────────────────────────────────────────────────────────────

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(30 * time.Second))

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// ─────────────────────────────────────────────────────────────────────────────
	// Routes
	// ─────────────────────────────────────────────────────────────────────────────

	// Page content: one router per descriptor row. Adding a page type is
	// a table entry plus default content, not a new feature package.
	r.Route("/api/pages", func(pr chi.Router) {
		for _, pt := range content.All() {
			h := pageapifeature.NewHandler(pageStore, logger, pt)
			pr.Mount("/"+pt.Name, pageapifeature.Routes(h, appCfg.AdminAPIKey, appCfg.EditorAPIKey, logger))
		}
	})

	// Service category taxonomy
	categoryHandler := categoryapifeature.NewHandler(catStore, logger)
	r.Mount("/api/categories", categoryapifeature.Routes(categoryHandler, appCfg.AdminAPIKey, appCfg.EditorAPIKey, logger))

	// Lead submissions
	leadHandler := leadapifeature.NewHandler(ldStore, logger)
	r.Mount("/api/leads", leadapifeature.Routes(leadHandler, appCfg.AdminAPIKey, appCfg.EditorAPIKey, logger))

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// 404 catch-all for unmatched routes
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		jsonutil.NotFound(w, "Not found")
	})

	return r, nil
}
