package repositories

// HostConfigRepository reads and writes key/value pairs scoped to one local
// working copy: the integration switch, the remote-alias override, the
// domain allow-list extension, and the persisted offline mode.
type HostConfigRepository interface {
	// RemoteURL returns the fetch URL of the named remote, or "" when the
	// remote is not configured.
	RemoteURL(dir, alias string) (string, error)

	// Get returns the value for a key in the hubward section of the working
	// copy configuration, and whether the key is present.
	Get(dir, key string) (string, bool)

	// Set writes a key in the hubward section of the working copy
	// configuration.
	Set(dir, key, value string) error
}
