package entities

// FeatureState is the tri-state resolution of a named optional behavior.
type FeatureState int

const (
	FeatureUnset FeatureState = iota
	FeatureEnabled
	FeatureDisabled
)

func (s FeatureState) String() string {
	switch s {
	case FeatureEnabled:
		return "enabled"
	case FeatureDisabled:
		return "disabled"
	default:
		return "unset"
	}
}

// FeatureDefaultKey is the wildcard registry entry consulted when a feature
// has no explicit configuration.
const FeatureDefaultKey = "*"

// FeatureRegistry maps feature identifiers to their configured state. It
// lives for the process lifetime and is populated from user configuration.
type FeatureRegistry map[string]FeatureState

// Resolve reports whether a feature is active: the explicit entry wins, then
// the wildcard default, then false.
func (r FeatureRegistry) Resolve(id string) bool {
	if state, ok := r[id]; ok && state != FeatureUnset {
		return state == FeatureEnabled
	}
	if state, ok := r[FeatureDefaultKey]; ok && state != FeatureUnset {
		return state == FeatureEnabled
	}
	return false
}

// State returns the explicitly configured state for id, without the
// wildcard fallback.
func (r FeatureRegistry) State(id string) FeatureState {
	if state, ok := r[id]; ok {
		return state
	}
	return FeatureUnset
}
