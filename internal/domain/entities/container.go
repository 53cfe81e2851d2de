package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
// Settings requires a config file path, provided by the controllers layer.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewOfflineState); err != nil {
		return err
	}
	if err := container.Provide(NewDebugState); err != nil {
		return err
	}
	return nil
}
