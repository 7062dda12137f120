package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/footprint-tools/fanout/internal/domain"
	"github.com/footprint-tools/fanout/internal/log"
	"github.com/footprint-tools/fanout/internal/paths"
)

// ReadLines returns the raw lines of ~/.forc, creating the file with the
// visible defaults when it is missing or empty.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(configPath)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = initializeDefaults()
		if err := WriteLines(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

func initializeDefaults() []string {
	lines := []string{
		"# fanout configuration",
		"# Edit values below or use: fo config set <key> <value>",
	}

	section := ""
	for _, key := range domain.ConfigKeys {
		if key.Hidden {
			continue
		}
		if key.Section != section {
			section = key.Section
			lines = append(lines, "", "# "+section)
		}

		if key.HideIfEmpty {
			lines = append(lines, "# "+key.Name+"=")
			continue
		}

		value := key.Default
		if strings.Contains(value, " ") {
			value = "\"" + value + "\""
		}
		lines = append(lines, key.Name+"="+value)
	}

	return lines
}
