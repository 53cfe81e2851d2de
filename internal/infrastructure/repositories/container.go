package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/hubward/internal/domain/repositories"
	"github.com/rios0rios0/hubward/internal/infrastructure/repositories/diskcache"
	"github.com/rios0rios0/hubward/internal/infrastructure/repositories/gitconfig"
	ghRepo "github.com/rios0rios0/hubward/internal/infrastructure/repositories/github"
	"github.com/rios0rios0/hubward/internal/infrastructure/repositories/keyring"
	"github.com/rios0rios0/hubward/internal/infrastructure/repositories/probedebug"
)

// RegisterProviders registers all repository providers with the DIG
// container. The probe client is composed with its debug decorator here;
// call sites only ever see the decorated interface.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(keyring.NewTokenRepository); err != nil {
		return err
	}
	if err := container.Provide(ghRepo.NewProbeRepository); err != nil {
		return err
	}
	if err := container.Provide(probedebug.NewProbeRepository); err != nil {
		return err
	}
	if err := container.Provide(gitconfig.NewHostConfigRepository); err != nil {
		return err
	}

	if err := container.Provide(diskcache.NewCacheRepository); err != nil {
		return err
	}
	if err := container.Provide(func(impl *diskcache.CacheRepository) domainRepos.CacheRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
