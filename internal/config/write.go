package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pyshield/shieldtop/internal/errors"
)

// fileConfig mirrors Config for writing. Durations are written as strings
// ("5s") because that is what the loader's duration hook expects back.
type fileConfig struct {
	Server    Server        `yaml:"server"`
	ProxyPort int           `yaml:"proxy_port"`
	Intervals fileIntervals `yaml:"intervals"`
}

type fileIntervals struct {
	Stats string `yaml:"stats"`
	Proxy string `yaml:"proxy"`
}

const fileHeader = "# shieldtop configuration\n# Credentials here are for the appliance's admin API (HTTP Basic).\n"

// Write serializes the config to path. Mode 0600 because the file may hold
// a password.
func Write(path string, cfg *Config) error {
	out := fileConfig{
		Server:    cfg.Server,
		ProxyPort: cfg.ProxyPort,
		Intervals: fileIntervals{
			Stats: cfg.Intervals.Stats.String(),
			Proxy: cfg.Intervals.Proxy.String(),
		},
	}

	var buf strings.Builder
	buf.WriteString(fileHeader)
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&out); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config",
			"")
	}
	encoder.Close()

	if err := os.WriteFile(path, []byte(buf.String()), 0600); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file: "+path,
			"Check directory permissions")
	}
	return nil
}
