package diskcache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/hubward/internal/domain/entities"
	"github.com/rios0rios0/hubward/internal/domain/repositories"
)

const (
	cacheDirName = "hubward"
	dirMode      = 0o755
	fileMode     = 0o644
)

// entry is the on-disk envelope around a cached record.
type entry struct {
	StoredAt time.Time                  `yaml:"stored_at"`
	Record   *entities.RepositoryRecord `yaml:"record"`
}

// CacheRepository is a yaml-on-disk fetch-or-compute cache keyed by
// repository identity and data class. Expiration is per data class.
type CacheRepository struct {
	dir       string
	lifetimes map[string]time.Duration
	now       func() time.Time
}

// NewCacheRepository creates a cache rooted in the XDG cache directory.
func NewCacheRepository() *CacheRepository {
	return &CacheRepository{
		dir:       filepath.Join(xdg.CacheHome, cacheDirName),
		lifetimes: map[string]time.Duration{},
		now:       time.Now,
	}
}

// Configure applies the storage location and the staleness classes.
func (it *CacheRepository) Configure(settings *entities.Settings) {
	if settings.Cache.Dir != "" {
		it.dir = settings.Cache.Dir
	}
	for class, seconds := range settings.Cache.ClassLifetimes {
		it.lifetimes[class] = time.Duration(seconds) * time.Second
	}
}

// Get implements the fetch-or-compute contract. Bypass always computes and
// writes through; Default serves unexpired entries; CacheOnly never
// computes, serving even stale entries. A nil compute function degrades to
// a pure read with a stale fallback.
func (it *CacheRepository) Get(
	ctx context.Context,
	key entities.CacheKey,
	compute repositories.ComputeFunc,
	policy entities.CachePolicy,
) (*entities.RepositoryRecord, error) {
	path := it.entryPath(key)
	cached, found := it.read(path)

	switch policy {
	case entities.CachePolicyCacheOnly:
		if !found {
			return nil, nil
		}
		return cached.Record, nil
	case entities.CachePolicyDefault:
		if found && !it.expired(key.Class, cached.StoredAt) {
			return cached.Record, nil
		}
	case entities.CachePolicyBypass:
		// always recompute
	}

	if compute == nil {
		if found {
			return cached.Record, nil
		}
		return nil, nil
	}

	record, err := compute(ctx)
	if err != nil {
		if found {
			logger.Debugf("serving stale cache entry for %s after compute failure: %v", key, err)
			return cached.Record, nil
		}
		return nil, err
	}

	if record != nil {
		if writeErr := it.write(path, record); writeErr != nil {
			logger.Warnf("failed to write cache entry for %s: %v", key, writeErr)
		}
	}
	return record, nil
}

func (it *CacheRepository) expired(class string, storedAt time.Time) bool {
	lifetime, ok := it.lifetimes[class]
	if !ok || lifetime <= 0 {
		return true
	}
	return it.now().Sub(storedAt) >= lifetime
}

func (it *CacheRepository) entryPath(key entities.CacheKey) string {
	return filepath.Join(it.dir, key.Path()+".yaml")
}

func (it *CacheRepository) read(path string) (*entry, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Debugf("failed to read cache entry %q: %v", path, err)
		}
		return nil, false
	}

	var cached entry
	if unmarshalErr := yaml.Unmarshal(data, &cached); unmarshalErr != nil {
		logger.Debugf("discarding corrupt cache entry %q: %v", path, unmarshalErr)
		return nil, false
	}
	return &cached, true
}

func (it *CacheRepository) write(path string, record *entities.RepositoryRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	data, err := yaml.Marshal(&entry{StoredAt: it.now(), Record: record})
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	if writeErr := os.WriteFile(path, data, fileMode); writeErr != nil {
		return fmt.Errorf("failed to write cache entry: %w", writeErr)
	}
	return nil
}
