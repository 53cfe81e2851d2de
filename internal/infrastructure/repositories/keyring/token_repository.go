package keyring

import (
	"errors"
	"os"

	logger "github.com/sirupsen/logrus"
	kr "github.com/zalando/go-keyring"

	"github.com/rios0rios0/hubward/internal/domain/repositories"
)

const (
	keyringService = "hubward"
	keyringAccount = "github.com"
)

// TokenRepository resolves the GitHub token from the environment, falling
// back to the operating system keyring.
type TokenRepository struct{}

// NewTokenRepository creates a new TokenRepository.
func NewTokenRepository() repositories.TokenRepository {
	return &TokenRepository{}
}

func (it *TokenRepository) Token() string {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token
	}
	if token := os.Getenv("GH_TOKEN"); token != "" {
		return token
	}

	token, err := kr.Get(keyringService, keyringAccount)
	if err != nil {
		if !errors.Is(err, kr.ErrNotFound) {
			logger.Debugf("keyring lookup failed: %v", err)
		}
		return ""
	}
	return token
}
