package entities

import (
	"path/filepath"
	"time"
)

// CacheClassRepository tags the authoritative repository record in the cache.
const CacheClassRepository = "repository"

// RepositoryRecord is the authoritative repository data fetched from the API
// or served from the cache.
type RepositoryRecord struct {
	Identity      RepositoryIdentity `yaml:"identity"`
	FullName      string             `yaml:"full_name"`
	Description   string             `yaml:"description,omitempty"`
	DefaultBranch string             `yaml:"default_branch,omitempty"`
	Private       bool               `yaml:"private,omitempty"`
	FetchedAt     time.Time          `yaml:"fetched_at"`
}

// CacheKey addresses one cached value: a repository identity plus a
// data-class tag.
type CacheKey struct {
	Identity RepositoryIdentity
	Class    string
}

// Path returns the key as a relative filesystem path. The identity charset
// is already restricted by the remote URL parser.
func (it CacheKey) Path() string {
	return filepath.Join(it.Identity.Domain, it.Identity.Owner, it.Identity.Name, it.Class)
}

func (it CacheKey) String() string {
	return it.Identity.Domain + "/" + it.Identity.Slug() + "#" + it.Class
}

// CachePolicy is the staleness policy derived from the offline mode.
type CachePolicy int

const (
	// CachePolicyDefault serves unexpired entries and recomputes expired ones.
	CachePolicyDefault CachePolicy = iota
	// CachePolicyBypass always recomputes but still writes through.
	CachePolicyBypass
	// CachePolicyCacheOnly never computes; stale entries are served as-is.
	CachePolicyCacheOnly
)
