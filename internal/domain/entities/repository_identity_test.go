//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/hubward/internal/domain/entities"
)

func TestParseRemoteURL(t *testing.T) {
	t.Parallel()

	t.Run("should parse an SSH remote with a .git suffix", func(t *testing.T) {
		// given
		raw := "git@github.com:vermiculus/magithub.git"

		// when
		identity, ok := entities.ParseRemoteURL(raw)

		// then
		require.True(t, ok)
		assert.Equal(t, entities.RemoteKindSSH, identity.Kind)
		assert.Equal(t, "git", identity.SSHUser)
		assert.Equal(t, "github.com", identity.Domain)
		assert.Equal(t, "vermiculus", identity.Owner)
		assert.Equal(t, "magithub", identity.Name)
	})

	t.Run("should parse an HTTPS remote without a .git suffix", func(t *testing.T) {
		// given
		raw := "https://github.com/octocat/hello-world"

		// when
		identity, ok := entities.ParseRemoteURL(raw)

		// then
		require.True(t, ok)
		assert.Equal(t, entities.RemoteKindHTTP, identity.Kind)
		assert.Empty(t, identity.SSHUser)
		assert.Equal(t, "github.com", identity.Domain)
		assert.Equal(t, "octocat", identity.Owner)
		assert.Equal(t, "hello-world", identity.Name)
	})

	t.Run("should parse a git protocol remote", func(t *testing.T) {
		// given
		raw := "git://github.com/octocat/hello-world.git"

		// when
		identity, ok := entities.ParseRemoteURL(raw)

		// then
		require.True(t, ok)
		assert.Equal(t, entities.RemoteKindHTTP, identity.Kind)
		assert.Equal(t, "hello-world", identity.Name)
	})

	t.Run("should keep dots and hyphens in owner and name", func(t *testing.T) {
		// given
		raw := "git@github.com:my-org.io/some.repo-name.git"

		// when
		identity, ok := entities.ParseRemoteURL(raw)

		// then
		require.True(t, ok)
		assert.Equal(t, "my-org.io", identity.Owner)
		assert.Equal(t, "some.repo-name", identity.Name)
	})

	t.Run("should reject strings that are not remote URLs", func(t *testing.T) {
		// given
		inputs := []string{
			"not a url",
			"",
			"https://github.com/only-owner",
			"git@github.com:too/many/segments.git",
			"ftp://github.com/a/b",
		}

		for _, raw := range inputs {
			// when
			_, ok := entities.ParseRemoteURL(raw)

			// then
			assert.False(t, ok, "input %q should not parse", raw)
		}
	})

	t.Run("should round-trip an SSH identity through SSHURL", func(t *testing.T) {
		// given
		identity, ok := entities.ParseRemoteURL("git@github.com:octocat/hello-world.git")
		require.True(t, ok)

		// when
		rendered := identity.SSHURL()
		reparsed, reparsedOK := entities.ParseRemoteURL(rendered)

		// then
		require.True(t, reparsedOK)
		assert.True(t, identity.Equal(reparsed))
	})

	t.Run("should default the SSH user to git when rendering an HTTP identity", func(t *testing.T) {
		// given
		identity, ok := entities.ParseRemoteURL("https://github.com/octocat/hello-world")
		require.True(t, ok)

		// when
		rendered := identity.SSHURL()

		// then
		assert.Equal(t, "git@github.com:octocat/hello-world.git", rendered)
	})
}

func TestRepositoryIdentityEqual(t *testing.T) {
	t.Parallel()

	t.Run("should ignore kind and ssh user when comparing", func(t *testing.T) {
		// given
		ssh, _ := entities.ParseRemoteURL("git@github.com:octocat/hello-world.git")
		http, _ := entities.ParseRemoteURL("https://github.com/octocat/hello-world")

		// when / then
		assert.True(t, ssh.Equal(http))
		assert.Equal(t, "octocat/hello-world", ssh.Slug())
	})

	t.Run("should distinguish different domains", func(t *testing.T) {
		// given
		public, _ := entities.ParseRemoteURL("git@github.com:octocat/hello-world.git")
		enterprise, _ := entities.ParseRemoteURL("git@github.example.com:octocat/hello-world.git")

		// when / then
		assert.False(t, public.Equal(enterprise))
	})
}
