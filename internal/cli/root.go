package cli

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pyshield/shieldtop/internal/api"
	"github.com/pyshield/shieldtop/internal/config"
	"github.com/pyshield/shieldtop/internal/errors"
)

// Persistent flags shared by every command
var (
	configFlag   string
	urlFlag      string
	usernameFlag string
	passwordFlag string
)

// rootCmd is the base shieldtop command.
var rootCmd = &cobra.Command{
	Use:   "shieldtop",
	Short: "Operational dashboard for a PyShield appliance",
	Long: `shieldtop is a terminal client for a PyShield network-security appliance.

It polls the appliance's REST API and renders a live dashboard of blocked
IPs, attack activity, and intercepted proxy traffic, and offers one-shot
commands for the same management operations.

Get started:
  shieldtop init      create a .shieldtop.yaml configuration
  shieldtop dash      open the live dashboard
  shieldtop stats     print the current firewall statistics`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&urlFlag, "url", "", "appliance base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&usernameFlag, "username", "", "API username (overrides config)")
	rootCmd.PersistentFlags().StringVar(&passwordFlag, "password", "", "API password (overrides config)")
}

// Execute runs the root command. Errors are already formatted by the
// errors package, so they print as-is.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: file (or defaults when no
// file exists), then flag overrides on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadResolved(configFlag)
	if err != nil {
		return nil, err
	}

	if urlFlag != "" {
		cfg.Server.URL = urlFlag
	}
	if usernameFlag != "" {
		cfg.Server.Username = usernameFlag
	}
	if passwordFlag != "" {
		cfg.Server.Password = passwordFlag
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newClient builds an authenticated API client from the resolved config,
// prompting for the password when nothing else supplied one.
func newClient() (*api.Client, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	if cfg.Server.Password == "" {
		pw, err := promptPassword(cfg.Server.Username)
		if err != nil {
			return nil, nil, err
		}
		cfg.Server.Password = pw
	}

	return api.NewClient(cfg.Server.URL, cfg.Server.Username, cfg.Server.Password), cfg, nil
}

// promptPassword reads a password from the terminal without echo.
func promptPassword(username string) (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", errors.New(errors.ErrAuth,
			"No password configured",
			"Set server.password in .shieldtop.yaml, export SHIELDTOP_PASSWORD, or pass --password.")
	}

	fmt.Fprintf(os.Stderr, "Password for %s: ", username)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrAuth,
			"Could not read password",
			"Pass --password or export SHIELDTOP_PASSWORD instead.")
	}
	return string(raw), nil
}
