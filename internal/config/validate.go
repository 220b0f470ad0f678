package config

import (
	"fmt"
	"net/url"

	"github.com/pyshield/shieldtop/internal/errors"
)

// Validate checks a config for values that would make every request fail.
func Validate(cfg *Config) error {
	u, err := url.Parse(cfg.Server.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid server URL: %q", cfg.Server.URL),
			"Use a full URL like http://127.0.0.1:8000")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unsupported URL scheme: %q", u.Scheme),
			"The appliance admin API speaks http or https")
	}

	if cfg.Server.Username == "" {
		return errors.New(errors.ErrConfig,
			"Server username is empty",
			"Set server.username in the config file")
	}

	if cfg.ProxyPort < 1 || cfg.ProxyPort > 65535 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid proxy_port: %d", cfg.ProxyPort),
			"Ports must be between 1 and 65535")
	}

	if cfg.Intervals.Stats <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid stats interval: %s", cfg.Intervals.Stats),
			"Use a positive duration like 5s")
	}
	if cfg.Intervals.Proxy <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid proxy interval: %s", cfg.Intervals.Proxy),
			"Use a positive duration like 3s")
	}

	return nil
}
