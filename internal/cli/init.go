package cli

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/pyshield/shieldtop/internal/config"
	"github.com/pyshield/shieldtop/internal/errors"
	"github.com/pyshield/shieldtop/internal/ui"
)

var initForce bool

// initCmd creates a new .shieldtop.yaml configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .shieldtop.yaml configuration",
	Long: `Initialize a shieldtop configuration file in the current directory.

Prompts for the appliance URL and credentials. The password is optional;
when left empty, shieldtop reads SHIELDTOP_PASSWORD or prompts at startup.

Examples:
  shieldtop init
  shieldtop init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	rootCmd.AddCommand(initCmd)
}

func initCommand(force bool) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("'%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Use --force to overwrite without asking.")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.Default()

	serverURL := cfg.Server.URL
	username := cfg.Server.Username
	password := ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Appliance URL").
				Description("Base URL of the PyShield management API").
				Placeholder("http://127.0.0.1:8000").
				Value(&serverURL).
				Validate(func(s string) error {
					u, err := url.Parse(strings.TrimSpace(s))
					if err != nil || u.Scheme == "" || u.Host == "" {
						return fmt.Errorf("enter a full URL like http://10.0.0.1:8000")
					}
					return nil
				}),
			huh.NewInput().
				Title("Username").
				Value(&username).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("username is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Password (optional)").
				Description("Leave empty to use SHIELDTOP_PASSWORD or a startup prompt").
				EchoMode(huh.EchoModePassword).
				Value(&password),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility.")
	}

	cfg.Server.URL = strings.TrimSpace(serverURL)
	cfg.Server.Username = strings.TrimSpace(username)
	cfg.Server.Password = password

	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := config.Write(configPath, cfg); err != nil {
		return err
	}

	ui.Success(os.Stdout, "wrote %s", configPath)
	if password == "" {
		ui.Warning(os.Stdout, "no password stored; export SHIELDTOP_PASSWORD or expect a prompt")
	}
	return nil
}
