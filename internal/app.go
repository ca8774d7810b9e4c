package internal

import (
	"github.com/rios0rios0/docbatch/internal/domain/entities"
)

// AppInternal aggregates the CLI controllers resolved from the container.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates the application aggregate from the controller slice.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns every registered controller in binding order.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
