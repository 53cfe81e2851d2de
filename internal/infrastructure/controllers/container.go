package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/hubward/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	constructors := []any{
		NewResolveController,
		NewStatusController,
		NewOfflineController,
		NewOnlineController,
		NewToggleController,
		NewRefreshController,
		NewFeaturesController,
		NewHelperController,
		NewControllers,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	resolveController *ResolveController,
	statusController *StatusController,
	offlineController *OfflineController,
	onlineController *OnlineController,
	toggleController *ToggleController,
	refreshController *RefreshController,
	featuresController *FeaturesController,
	helperController *HelperController,
) *[]entities.Controller {
	return &[]entities.Controller{
		resolveController,
		statusController,
		offlineController,
		onlineController,
		toggleController,
		refreshController,
		featuresController,
		helperController,
	}
}
