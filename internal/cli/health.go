package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pyshield/shieldtop/internal/api"
	"github.com/pyshield/shieldtop/internal/ui"
)

// healthCmd checks that the appliance is reachable.
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check appliance reachability",
	Long: `Ping the appliance's health endpoint and report whether it responds.

Examples:
  shieldtop health
  shieldtop health --url http://10.0.0.1:8000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return healthCommand()
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func healthCommand() error {
	// The health endpoint is unauthenticated, so skip password resolution.
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := api.NewClient(cfg.Server.URL, cfg.Server.Username, cfg.Server.Password)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	h, err := client.Health(ctx)
	if err != nil {
		ui.Failure(os.Stdout, "%s is unreachable", cfg.Server.URL)
		return err
	}

	ui.Success(os.Stdout, "%s is %s (%s)", cfg.Server.URL, h.Status, h.Service)
	return nil
}
