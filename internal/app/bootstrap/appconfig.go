// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//   - Database connection timeouts
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Maximum connections in pool (default: 100)
	MongoMinPoolSize uint64 // Minimum connections to keep warm (default: 10)

	// API key authentication.
	// AdminAPIKey grants full access including resets and deletes.
	// EditorAPIKey grants content editing without destructive operations.
	// A request's Bearer token is matched against both; the admin key wins.
	AdminAPIKey  string
	EditorAPIKey string

	// SeedDefaultCategories controls whether the built-in service
	// categories are created at startup when missing. Disable for
	// deployments that manage their taxonomy entirely by hand.
	SeedDefaultCategories bool
}
