package gitconfig

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"

	"github.com/rios0rios0/hubward/internal/domain/repositories"
)

const configSection = "hubward"

// HostConfigRepository implements the host configuration store on top of
// the working copy's git configuration: remote URLs come from the remotes,
// hubward keys live in a dedicated [hubward] section.
type HostConfigRepository struct{}

// NewHostConfigRepository creates a new HostConfigRepository.
func NewHostConfigRepository() repositories.HostConfigRepository {
	return &HostConfigRepository{}
}

func (it *HostConfigRepository) RemoteURL(dir, alias string) (string, error) {
	repo, err := openWorkingCopy(dir)
	if err != nil {
		return "", err
	}

	remote, remoteErr := repo.Remote(alias)
	if remoteErr != nil {
		if errors.Is(remoteErr, git.ErrRemoteNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read remote %q: %w", alias, remoteErr)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", nil
	}
	return urls[0], nil
}

func (it *HostConfigRepository) Get(dir, key string) (string, bool) {
	repo, err := openWorkingCopy(dir)
	if err != nil {
		return "", false
	}
	cfg, cfgErr := repo.Config()
	if cfgErr != nil {
		return "", false
	}

	for _, option := range cfg.Raw.Section(configSection).Options {
		if option.IsKey(key) {
			return option.Value, true
		}
	}
	return "", false
}

func (it *HostConfigRepository) Set(dir, key, value string) error {
	repo, err := openWorkingCopy(dir)
	if err != nil {
		return err
	}
	cfg, cfgErr := repo.Config()
	if cfgErr != nil {
		return fmt.Errorf("failed to read git config: %w", cfgErr)
	}

	cfg.Raw.Section(configSection).SetOption(key, value)

	if setErr := repo.SetConfig(cfg); setErr != nil {
		return fmt.Errorf("failed to write git config: %w", setErr)
	}
	return nil
}

func openWorkingCopy(dir string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %q: %w", dir, err)
	}
	return repo, nil
}
