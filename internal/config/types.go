package config

import "time"

// Default values applied when the config file omits a field.
const (
	DefaultServerURL     = "http://127.0.0.1:8000"
	DefaultUsername      = "admin"
	DefaultProxyPort     = 8888
	DefaultStatsInterval = 5 * time.Second
	DefaultProxyInterval = 3 * time.Second
)

// Config represents the complete .shieldtop.yaml configuration file.
type Config struct {
	Server    Server    `yaml:"server" mapstructure:"server"`
	ProxyPort int       `yaml:"proxy_port" mapstructure:"proxy_port"`
	Intervals Intervals `yaml:"intervals" mapstructure:"intervals"`
}

// Server holds the appliance endpoint and the Basic credential carried on
// every request. Password may be empty in the file; it is then resolved from
// the SHIELDTOP_PASSWORD environment variable or an interactive prompt.
type Server struct {
	URL      string `yaml:"url" mapstructure:"url"`
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
}

// Intervals are the periods of the two independent polling tasks.
type Intervals struct {
	Stats time.Duration `yaml:"stats" mapstructure:"stats"`
	Proxy time.Duration `yaml:"proxy" mapstructure:"proxy"`
}

// Default returns a config populated entirely from package defaults.
func Default() *Config {
	var c Config
	c.withDefaults()
	return &c
}

// withDefaults fills zero-valued fields with package defaults.
func (c *Config) withDefaults() {
	if c.Server.URL == "" {
		c.Server.URL = DefaultServerURL
	}
	if c.Server.Username == "" {
		c.Server.Username = DefaultUsername
	}
	if c.ProxyPort == 0 {
		c.ProxyPort = DefaultProxyPort
	}
	if c.Intervals.Stats == 0 {
		c.Intervals.Stats = DefaultStatsInterval
	}
	if c.Intervals.Proxy == 0 {
		c.Intervals.Proxy = DefaultProxyInterval
	}
}
