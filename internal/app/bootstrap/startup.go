// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"github.com/pearlpoint/clinicms/internal/domain/content"
	"go.uber.org/zap"
)

// Startup runs once after DB connections and schema/index setup are complete,
// but before the HTTP handler is built and requests are served.
//
// Returning a non-nil error will abort startup and prevent the server from
// starting.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	// Every page type must have a default content tree covering its
	// whole section schema; a gap here would surface later as a page
	// seeded with missing sections.
	for _, pt := range content.All() {
		defaults := content.DefaultSections(pt.Name)
		for _, section := range pt.Sections {
			if _, ok := defaults[section]; !ok {
				return fmt.Errorf("page type %q has no default content for section %q", pt.Name, section)
			}
		}
	}

	logger.Info("page types registered", zap.Int("count", len(content.All())))
	return nil
}
