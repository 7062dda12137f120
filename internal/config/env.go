package config

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// Overrides are process-level settings read from the environment. A zero
// value means "not set" and leaves the config file value in place.
type Overrides struct {
	MaxEnumerations         int    `env:"FANOUT_MAX_ENUMERATIONS"`
	MaxWildcardEnumerations int    `env:"FANOUT_MAX_WILDCARD_ENUMERATIONS"`
	LogLevel                string `env:"FANOUT_LOG_LEVEL"`
	DatabasePath            string `env:"FANOUT_DB"`
}

// ParseEnv loads Overrides from the environment.
func ParseEnv() (Overrides, error) {
	var o Overrides
	if err := env.Parse(&o); err != nil {
		return Overrides{}, fmt.Errorf("parse env: %w", err)
	}
	return o, nil
}

// Settings is the resolved view of the keys the host needs at startup.
type Settings struct {
	MaxEnumerations         int
	MaxWildcardEnumerations int
	DisplayName             string
	HelpPerPage             int
	HelpWidth               int
	LogLevel                string
	EnableLog               bool
	DatabasePath            string
}

// Resolve merges values (usually GetAll) with environment overrides.
// Unparseable or non-positive numbers fall back to the key's default.
func Resolve(values map[string]string, o Overrides) Settings {
	s := Settings{
		MaxEnumerations:         positiveInt(values, "max_enumerations"),
		MaxWildcardEnumerations: positiveInt(values, "max_wildcard_enumerations"),
		DisplayName:             stringOr(values, "display_name"),
		HelpPerPage:             positiveInt(values, "help_per_page"),
		HelpWidth:               positiveInt(values, "help_width"),
		LogLevel:                stringOr(values, "log_level"),
		EnableLog:               values["enable_log"] != "false",
	}

	if o.MaxEnumerations > 0 {
		s.MaxEnumerations = o.MaxEnumerations
	}
	if o.MaxWildcardEnumerations > 0 {
		s.MaxWildcardEnumerations = o.MaxWildcardEnumerations
	}
	if o.LogLevel != "" {
		s.LogLevel = o.LogLevel
	}
	s.DatabasePath = o.DatabasePath

	return s
}

func positiveInt(values map[string]string, key string) int {
	if n, err := strconv.Atoi(values[key]); err == nil && n > 0 {
		return n
	}
	n, _ := strconv.Atoi(Defaults[key])
	return n
}

func stringOr(values map[string]string, key string) string {
	if v := values[key]; v != "" {
		return v
	}
	return Defaults[key]
}
