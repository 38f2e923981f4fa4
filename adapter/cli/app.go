package cli

import (
	"github.com/ivkhv/daybook/internal/eventbus"
	goalsDomain "github.com/ivkhv/daybook/internal/goals/domain"
	"github.com/ivkhv/daybook/internal/insights"
	"github.com/ivkhv/daybook/internal/journal"
	"github.com/ivkhv/daybook/pkg/observability"
)

// App holds the CLI application dependencies.
type App struct {
	// Journal record service (fetch + cache + aggregate)
	Journal *journal.Service

	// Goal store
	Goals goalsDomain.Repository

	// AI commentary (nil when no generator is configured; the service
	// degrades to a fixed notice)
	Insights *insights.Service

	// Alert publisher
	Alerts eventbus.Publisher

	// Component health checks
	Health *observability.HealthRegistry

	// Current owner (configured per environment)
	OwnerID string
}

// app is the global CLI application instance
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
