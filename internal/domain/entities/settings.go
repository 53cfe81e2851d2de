package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// Settings is the top-level configuration for hubward. Working-copy scoped
// overrides (remote alias, integration switch, extra domains) live in the
// host configuration store, not here.
type Settings struct {
	API      APISettings     `yaml:"api"`
	Helper   HelperSettings  `yaml:"helper"`
	Cache    CacheSettings   `yaml:"cache"`
	Features map[string]bool `yaml:"features"`
	Debug    DebugSettings   `yaml:"debug"`
}

// APISettings bounds the availability prober.
type APISettings struct {
	TimeoutSeconds  int      `yaml:"timeout_seconds"`
	ThrottleSeconds int      `yaml:"throttle_seconds"`
	Domains         []string `yaml:"domains"` // GitHub-compatible domain allow-list
}

// HelperSettings describes the external helper program.
type HelperSettings struct {
	Executable     string `yaml:"executable"`
	ConfigFile     string `yaml:"config_file"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MinimumVersion string `yaml:"minimum_version"`
}

// CacheSettings configures the on-disk content cache.
type CacheSettings struct {
	Dir string `yaml:"dir"`
	// ClassLifetimes maps a data-class tag to its expiration in seconds.
	ClassLifetimes map[string]int `yaml:"class_lifetimes"`
}

// DebugSettings seeds the process-wide debug state.
type DebugSettings struct {
	Enabled bool `yaml:"enabled"`
	DryRun  bool `yaml:"dry_run"`
}

const (
	defaultAPITimeoutSeconds    = 1
	defaultThrottleSeconds      = 10
	defaultHelperTimeoutSeconds = 5
	defaultRepositoryLifetime   = 3600
)

// DefaultSettings returns the settings used when no configuration file is
// present.
func DefaultSettings() *Settings {
	return &Settings{
		API: APISettings{
			TimeoutSeconds:  defaultAPITimeoutSeconds,
			ThrottleSeconds: defaultThrottleSeconds,
			Domains:         []string{"github.com"},
		},
		Helper: HelperSettings{
			Executable:     "hub",
			ConfigFile:     "~/.config/hub",
			TimeoutSeconds: defaultHelperTimeoutSeconds,
		},
		Cache: CacheSettings{
			ClassLifetimes: map[string]int{
				CacheClassRepository: defaultRepositoryLifetime,
			},
		},
		Features: map[string]bool{},
	}
}

// NewSettings reads and parses a configuration file on top of the defaults.
// YAML and HCL forms are supported, dispatched on the file extension.
func NewSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	if filepath.Ext(path) == ".hcl" {
		if err := loadHCL(path, settings); err != nil {
			return nil, err
		}
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, unmarshalErr)
	}

	return settings, nil
}

// FindSettingsFile searches for a configuration file in standard locations.
func FindSettingsFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".hubward.yaml",
		".hubward.yml",
		".hubward.hcl",
		"hubward.yaml",
		"hubward.yml",
		"hubward.hcl",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// APITimeout returns the probe timeout as a duration.
func (it *Settings) APITimeout() time.Duration {
	return time.Duration(it.API.TimeoutSeconds) * time.Second
}

// ThrottleWindow returns the probe throttle interval as a duration.
func (it *Settings) ThrottleWindow() time.Duration {
	return time.Duration(it.API.ThrottleSeconds) * time.Second
}

// HelperTimeout returns the helper invocation timeout as a duration.
func (it *Settings) HelperTimeout() time.Duration {
	return time.Duration(it.Helper.TimeoutSeconds) * time.Second
}

// HelperConfigFile returns the helper configuration file path with a leading
// "~" expanded.
func (it *Settings) HelperConfigFile() string {
	return expandHome(it.Helper.ConfigFile)
}

// DomainAllowed reports whether the domain is in the configured allow-list.
func (it *Settings) DomainAllowed(domain string) bool {
	for _, d := range it.API.Domains {
		if strings.EqualFold(d, domain) {
			return true
		}
	}
	return false
}

// FeatureRegistry converts the configured feature map into a registry.
// Features absent from the map resolve to Unset.
func (it *Settings) FeatureRegistry() FeatureRegistry {
	registry := make(FeatureRegistry, len(it.Features))
	for id, enabled := range it.Features {
		if enabled {
			registry[id] = FeatureEnabled
		} else {
			registry[id] = FeatureDisabled
		}
	}
	return registry
}

// ClassLifetime returns the cache expiration for a data class, or zero when
// the class has no configured lifetime.
func (it *Settings) ClassLifetime(class string) time.Duration {
	return time.Duration(it.Cache.ClassLifetimes[class]) * time.Second
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// --- HCL form ---

type hclSettings struct {
	API      *hclAPISettings    `hcl:"api,block"`
	Helper   *hclHelperSettings `hcl:"helper,block"`
	Cache    *hclCacheSettings  `hcl:"cache,block"`
	Features map[string]bool    `hcl:"features,optional"`
	Debug    *hclDebugSettings  `hcl:"debug,block"`
}

type hclAPISettings struct {
	TimeoutSeconds  *int     `hcl:"timeout_seconds,optional"`
	ThrottleSeconds *int     `hcl:"throttle_seconds,optional"`
	Domains         []string `hcl:"domains,optional"`
}

type hclHelperSettings struct {
	Executable     *string `hcl:"executable,optional"`
	ConfigFile     *string `hcl:"config_file,optional"`
	TimeoutSeconds *int    `hcl:"timeout_seconds,optional"`
	MinimumVersion *string `hcl:"minimum_version,optional"`
}

type hclCacheSettings struct {
	Dir            *string        `hcl:"dir,optional"`
	ClassLifetimes map[string]int `hcl:"class_lifetimes,optional"`
}

type hclDebugSettings struct {
	Enabled *bool `hcl:"enabled,optional"`
	DryRun  *bool `hcl:"dry_run,optional"`
}

func loadHCL(path string, settings *Settings) error {
	var parsed hclSettings
	if err := hclsimple.DecodeFile(path, hclEvalContext(), &parsed); err != nil {
		return fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if api := parsed.API; api != nil {
		if api.TimeoutSeconds != nil {
			settings.API.TimeoutSeconds = *api.TimeoutSeconds
		}
		if api.ThrottleSeconds != nil {
			settings.API.ThrottleSeconds = *api.ThrottleSeconds
		}
		if len(api.Domains) > 0 {
			settings.API.Domains = api.Domains
		}
	}
	if helper := parsed.Helper; helper != nil {
		if helper.Executable != nil {
			settings.Helper.Executable = *helper.Executable
		}
		if helper.ConfigFile != nil {
			settings.Helper.ConfigFile = *helper.ConfigFile
		}
		if helper.TimeoutSeconds != nil {
			settings.Helper.TimeoutSeconds = *helper.TimeoutSeconds
		}
		if helper.MinimumVersion != nil {
			settings.Helper.MinimumVersion = *helper.MinimumVersion
		}
	}
	if cache := parsed.Cache; cache != nil {
		if cache.Dir != nil {
			settings.Cache.Dir = *cache.Dir
		}
		for class, seconds := range cache.ClassLifetimes {
			settings.Cache.ClassLifetimes[class] = seconds
		}
	}
	for id, enabled := range parsed.Features {
		settings.Features[id] = enabled
	}
	if debug := parsed.Debug; debug != nil {
		if debug.Enabled != nil {
			settings.Debug.Enabled = *debug.Enabled
		}
		if debug.DryRun != nil {
			settings.Debug.DryRun = *debug.DryRun
		}
	}

	return nil
}

// hclEvalContext exposes the process environment to HCL expressions as
// env.<NAME>, so config files can reference tokens and paths without
// hardcoding them.
func hclEvalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		vars[key] = cty.StringVal(value)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}
