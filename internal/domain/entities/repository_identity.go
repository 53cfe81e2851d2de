package entities

import (
	"regexp"
	"strings"
)

// RemoteKind distinguishes the syntax a remote URL was written in.
type RemoteKind string

const (
	RemoteKindSSH  RemoteKind = "ssh"
	RemoteKindHTTP RemoteKind = "http"
)

// RepositoryIdentity is the canonical {domain, owner, name} triple derived
// from a git remote URL. It is a lookup key, not a cached entity; equality
// ignores the remote kind and the SSH user.
type RepositoryIdentity struct {
	Kind    RemoteKind `yaml:"kind"`
	SSHUser string     `yaml:"ssh_user,omitempty"`
	Domain  string     `yaml:"domain"`
	Owner   string     `yaml:"owner"`
	Name    string     `yaml:"name"`
}

var (
	// <user>@<domain>:<owner>/<name> — owner and name restricted to
	// alphanumerics, hyphen, and dot.
	sshRemotePattern = regexp.MustCompile(`^([^@:/]+)@([^@:/]+):([A-Za-z0-9.-]+)/([A-Za-z0-9.-]+)$`)
	// (http|https|git)://<domain>/<owner>/<name>
	urlRemotePattern = regexp.MustCompile(`^(https?|git)://([^/]+)/([A-Za-z0-9.-]+)/([A-Za-z0-9.-]+)$`)
)

// ParseRemoteURL converts a raw git remote URL into a RepositoryIdentity.
// An optional ".git" suffix is stripped silently. The second return value is
// false when the URL is not a recognized GitHub-style remote; callers treat
// that as "not applicable", never as an error.
func ParseRemoteURL(raw string) (RepositoryIdentity, bool) {
	cleaned := strings.TrimSuffix(strings.TrimSpace(raw), ".git")

	if m := sshRemotePattern.FindStringSubmatch(cleaned); m != nil {
		return RepositoryIdentity{
			Kind:    RemoteKindSSH,
			SSHUser: m[1],
			Domain:  m[2],
			Owner:   m[3],
			Name:    m[4],
		}, true
	}

	if m := urlRemotePattern.FindStringSubmatch(cleaned); m != nil {
		return RepositoryIdentity{
			Kind:   RemoteKindHTTP,
			Domain: m[2],
			Owner:  m[3],
			Name:   m[4],
		}, true
	}

	return RepositoryIdentity{}, false
}

// Slug returns the "owner/name" form used in log output and API paths.
func (it RepositoryIdentity) Slug() string {
	return it.Owner + "/" + it.Name
}

// Equal compares two identities by (domain, owner, name).
func (it RepositoryIdentity) Equal(other RepositoryIdentity) bool {
	return it.Domain == other.Domain && it.Owner == other.Owner && it.Name == other.Name
}

// SSHURL renders the identity back into SSH remote syntax. The SSH user
// defaults to "git" when the identity was not parsed from an SSH remote.
func (it RepositoryIdentity) SSHURL() string {
	user := it.SSHUser
	if user == "" {
		user = "git"
	}
	return user + "@" + it.Domain + ":" + it.Owner + "/" + it.Name + ".git"
}

// HTTPURL renders the identity back into HTTPS remote syntax.
func (it RepositoryIdentity) HTTPURL() string {
	return "https://" + it.Domain + "/" + it.Owner + "/" + it.Name
}
