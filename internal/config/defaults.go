package config

import "github.com/footprint-tools/fanout/internal/domain"

// Defaults holds the in-code value for every known key. Nothing here is
// persisted unless the user writes it.
var Defaults = buildDefaults()

func buildDefaults() map[string]string {
	defaults := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		defaults[key.Name] = key.Default
	}
	return defaults
}

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	cfg := fileValues()

	if value, exists := cfg[key]; exists {
		return value, true
	}

	value, ok := Defaults[key]
	return value, ok
}

// GetAll returns all config values (user overrides merged with defaults).
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(Defaults))
	for key, value := range Defaults {
		result[key] = value
	}

	for key, value := range fileValues() {
		result[key] = value
	}

	return result, nil
}

// fileValues reads and parses the config file. An unreadable or malformed
// file yields an empty map so callers fall back to defaults.
func fileValues() map[string]string {
	lines, err := ReadLines()
	if err != nil {
		return map[string]string{}
	}

	cfg, err := Parse(lines)
	if err != nil {
		return map[string]string{}
	}

	return cfg
}
