package diskcache

import "time"

// SetClock overrides the cache's time source for testing.
func SetClock(repo *CacheRepository, now func() time.Time) {
	repo.now = now
}
