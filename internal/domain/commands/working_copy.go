package commands

import (
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/hubward/internal/domain/entities"
	"github.com/rios0rios0/hubward/internal/domain/repositories"
)

// Keys of the hubward section in the working copy configuration.
const (
	hostKeyEnabled = "enabled"
	hostKeyRemote  = "remote"
	hostKeyOffline = "offline"
	hostKeyDomains = "domains"
)

const defaultRemoteAlias = "origin"

// integrationEnabled reports whether hubward is switched on for the working
// copy. Absence of the key means enabled.
func integrationEnabled(hostcfg repositories.HostConfigRepository, dir string) bool {
	value, ok := hostcfg.Get(dir, hostKeyEnabled)
	return !ok || !strings.EqualFold(value, "false")
}

// seedOfflineMode applies the persisted offline flag of the working copy to
// the process-wide state. It only ever forces offline; going back online is
// an explicit user action.
func seedOfflineMode(
	offline *entities.OfflineState,
	hostcfg repositories.HostConfigRepository,
	dir string,
) {
	if value, ok := hostcfg.Get(dir, hostKeyOffline); ok && strings.EqualFold(value, "true") {
		offline.GoOffline()
	}
}

// remoteAlias returns the remote to inspect: the explicit override, then the
// working copy configuration, then "origin".
func remoteAlias(
	hostcfg repositories.HostConfigRepository,
	dir, override string,
) string {
	if override != "" {
		return override
	}
	if value, ok := hostcfg.Get(dir, hostKeyRemote); ok && value != "" {
		return value
	}
	return defaultRemoteAlias
}

// domainAllowed checks the settings allow-list plus any comma-separated
// extension configured on the working copy.
func domainAllowed(
	settings *entities.Settings,
	hostcfg repositories.HostConfigRepository,
	dir, domain string,
) bool {
	if settings.DomainAllowed(domain) {
		return true
	}
	if extra, ok := hostcfg.Get(dir, hostKeyDomains); ok {
		for _, d := range strings.Split(extra, ",") {
			if strings.EqualFold(strings.TrimSpace(d), domain) {
				return true
			}
		}
	}
	return false
}

// resolveIdentity parses the working copy's configured remote into a
// canonical repository identity. A false result means the working copy is
// not usable as a GitHub-backed repository; that is expected control flow,
// not an error.
func resolveIdentity(
	settings *entities.Settings,
	hostcfg repositories.HostConfigRepository,
	dir, aliasOverride string,
) (entities.RepositoryIdentity, bool, error) {
	var none entities.RepositoryIdentity

	alias := remoteAlias(hostcfg, dir, aliasOverride)
	url, err := hostcfg.RemoteURL(dir, alias)
	if err != nil {
		return none, false, fmt.Errorf("failed to read remote %q: %w", alias, err)
	}
	if url == "" {
		logger.Debugf("working copy %q has no remote %q", dir, alias)
		return none, false, nil
	}

	identity, ok := entities.ParseRemoteURL(url)
	if !ok {
		logger.Debugf("remote %q (%s) is not a recognized GitHub remote", alias, url)
		return none, false, nil
	}

	if !domainAllowed(settings, hostcfg, dir, identity.Domain) {
		logger.Debugf("domain %q is not in the allow-list", identity.Domain)
		return none, false, nil
	}

	return identity, true, nil
}
