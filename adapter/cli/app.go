package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/app"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
)

// App exposes the container's handlers to the command groups.
type App struct {
	*app.Container
}

// NewApp wraps an initialized container for CLI use.
func NewApp(c *app.Container) *App {
	return &App{Container: c}
}

// cliApp is the global CLI application instance
var cliApp *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	cliApp = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return cliApp
}

// RequireApp returns the initialized application or an error suitable for
// returning from a RunE.
func RequireApp() (*App, error) {
	if cliApp == nil {
		return nil, fmt.Errorf("application not initialized - database connection required")
	}
	return cliApp, nil
}

// Actor resolves the acting officer from --actor/--role, falling back to
// the LANDADMIN_ACTOR_ID and LANDADMIN_ACTOR_ROLE environment variables.
// Every mutating command requires one: the transition history records who
// moved each record.
func Actor() (sharedApplication.Actor, error) {
	id := actorIDFlag
	if id == "" {
		id = os.Getenv("LANDADMIN_ACTOR_ID")
	}
	if id == "" {
		return sharedApplication.Actor{}, fmt.Errorf("no actor: pass --actor or set LANDADMIN_ACTOR_ID")
	}
	actorID, err := uuid.Parse(id)
	if err != nil {
		return sharedApplication.Actor{}, fmt.Errorf("invalid actor id %q: %w", id, err)
	}

	role := actorRoleFlag
	if role == "" {
		role = os.Getenv("LANDADMIN_ACTOR_ROLE")
	}

	return sharedApplication.Actor{ID: actorID, Role: role}, nil
}
