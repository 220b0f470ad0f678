package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/pyshield/shieldtop/internal/errors"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".shieldtop.yaml"
	// GlobalConfigDir is the directory for global config, under $HOME.
	GlobalConfigDir = ".config/shieldtop"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// passwordEnvVar overrides the password from the config file.
	passwordEnvVar = "SHIELDTOP_PASSWORD"
)

// Load reads config from the specified path, applies defaults, and validates.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'shieldtop init' to create one, or specify a path with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .shieldtop.yaml in current directory
// 3. ~/.config/shieldtop/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	// 1. Explicit path takes precedence
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	// 2. Current directory
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}
	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	// 3. Global config
	home, err := os.UserHomeDir()
	if err == nil {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadResolved finds and loads the config, falling back to defaults when no
// file exists, and resolves the password from the environment when the file
// leaves it empty.
func LoadResolved(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	var cfg *Config
	if path == "" {
		cfg = &Config{}
		cfg.withDefaults()
	} else {
		cfg, err = Load(path)
		if err != nil {
			return nil, err
		}
	}

	if cfg.Server.Password == "" {
		cfg.Server.Password = os.Getenv(passwordEnvVar)
	}

	return cfg, nil
}

// parseConfig unmarshals the viper instance, applies defaults, and validates.
func parseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config file structure",
			"Run 'shieldtop init' to regenerate it")
	}

	cfg.withDefaults()

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
