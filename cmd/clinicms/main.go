// Command clinicms runs the clinic content-management API server.
package main

import (
	"context"
	"os"

	"github.com/dalemusser/waffle/app"
	"github.com/pearlpoint/clinicms/internal/app/bootstrap"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		os.Exit(1)
	}
}
