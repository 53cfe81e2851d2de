package services

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all service providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewAvailabilityGate); err != nil {
		return err
	}
	if err := container.Provide(NewCommandRunner); err != nil {
		return err
	}
	if err := container.Provide(NewFeatureGate); err != nil {
		return err
	}
	return nil
}
