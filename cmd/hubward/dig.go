package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/hubward/internal"
	"github.com/rios0rios0/hubward/internal/infrastructure/controllers"
)

func injectAppContext() *internal.AppInternal {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get AppInternal
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}

func injectResolveController() *controllers.ResolveController {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var resolveController *controllers.ResolveController
	if err := container.Invoke(func(rc *controllers.ResolveController) {
		resolveController = rc
	}); err != nil {
		panic(err)
	}

	return resolveController
}
