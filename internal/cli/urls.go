package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pyshield/shieldtop/internal/ui"
	"github.com/pyshield/shieldtop/internal/util"
)

// urlsCmd groups the URL blacklist operations.
var urlsCmd = &cobra.Command{
	Use:   "urls",
	Short: "Manage the URL blacklist",
}

var urlsAddCmd = &cobra.Command{
	Use:   "add <url>...",
	Short: "Add URLs to the blacklist",
	Long: `Add one or more URLs or domains to the blacklist. Blacklisted
destinations are blocked by the filtering proxy.

Examples:
  shieldtop urls add evil.example.com
  shieldtop urls add evil.example.com tracker.example.net`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return urlsCommand(args, true)
	},
}

var urlsRemoveCmd = &cobra.Command{
	Use:   "remove <url>...",
	Short: "Remove URLs from the blacklist",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return urlsCommand(args, false)
	},
}

func init() {
	urlsCmd.AddCommand(urlsAddCmd)
	urlsCmd.AddCommand(urlsRemoveCmd)
	rootCmd.AddCommand(urlsCmd)
}

func urlsCommand(items []string, add bool) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if add {
		if err := client.AddURLs(ctx, items); err != nil {
			return err
		}
		ui.Success(os.Stdout, "blacklisted %s", util.JoinOrDefault(items, ""))
		return nil
	}

	if err := client.RemoveURLs(ctx, items); err != nil {
		return err
	}
	ui.Success(os.Stdout, "removed %s from the blacklist", util.JoinOrDefault(items, ""))
	return nil
}
