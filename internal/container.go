package internal

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/reqsync/internal/domain/commands"
	"github.com/rios0rios0/reqsync/internal/domain/entities"
	"github.com/rios0rios0/reqsync/internal/infrastructure/controllers"
	"github.com/rios0rios0/reqsync/internal/infrastructure/repositories"
)

// AppContext aggregates everything the CLI layer needs from the container.
type AppContext struct {
	controllers *[]entities.Controller
}

// NewAppContext creates the application context from the controller list.
func NewAppContext(controllerList *[]entities.Controller) *AppContext {
	return &AppContext{controllers: controllerList}
}

// GetControllers returns every registered CLI controller.
func (it *AppContext) GetControllers() []entities.Controller {
	return *it.controllers
}

// RegisterProviders registers all internal providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register all layers (bottom-up: infrastructure repos -> domain entities -> domain commands -> controllers)
	if err := repositories.RegisterProviders(container); err != nil {
		return err
	}
	if err := entities.RegisterProviders(container); err != nil {
		return err
	}
	if err := commands.RegisterProviders(container); err != nil {
		return err
	}
	if err := controllers.RegisterProviders(container); err != nil {
		return err
	}

	// Register the main app context
	if err := container.Provide(NewAppContext); err != nil {
		return err
	}

	return nil
}
