package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	constructors := []any{
		NewResolveCommand,
		NewStatusCommand,
		NewOfflineCommand,
		NewRefreshCommand,
		NewHelperCommand,
		NewFeaturesCommand,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *ResolveCommand) Resolve {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *StatusCommand) Status {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *OfflineCommand) Offline {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *RefreshCommand) Refresh {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *HelperCommand) Helper {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *FeaturesCommand) Features {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
