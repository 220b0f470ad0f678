package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/pyshield/shieldtop/internal/api"
	"github.com/pyshield/shieldtop/internal/errors"
	"github.com/pyshield/shieldtop/internal/ui"
	"github.com/pyshield/shieldtop/internal/util"
)

var statsJSON bool

// statsCmd fetches and prints the current firewall statistics once.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print current firewall statistics",
	Long: `Fetch the appliance's firewall statistics once and print them.

Examples:
  shieldtop stats
  shieldtop stats --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statsCommand(statsJSON)
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print raw JSON")
	rootCmd.AddCommand(statsCmd)
}

func statsCommand(asJSON bool) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	snap, err := client.Stats(ctx)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			return errors.Wrap(err, "Could not encode statistics")
		}
		return nil
	}

	printStats(snap)
	return nil
}

func printStats(snap *api.StatsSnapshot) {
	out := os.Stdout

	ui.Heading(out, "Firewall statistics")
	ui.KeyValue(out, "blocked IPs", fmt.Sprintf("%d", len(snap.BlockedIPs)), 18)
	ui.KeyValue(out, "blacklisted URLs", fmt.Sprintf("%d", len(snap.BlockedURLs)), 18)
	ui.KeyValue(out, "blocked ports", util.JoinOrDefault(portStrings(snap.BlockedPorts), "none"), 18)
	ui.KeyValue(out, "active attacks", fmt.Sprintf("%d", len(snap.ActiveAttacks)), 18)

	if len(snap.BlockedIPs) > 0 {
		fmt.Fprintln(out)
		ui.Heading(out, "Blocked IPs")
		for _, ip := range sortedKeys(snap.BlockedIPs) {
			count := snap.BlockedIPs[ip]
			ui.Item(out, "%s (%d %s)", ip, count, util.Pluralize(count, "hit", "hits"))
		}
	}

	if len(snap.ActiveAttacks) > 0 {
		fmt.Fprintln(out)
		ui.Heading(out, "Active attacks")
		for _, name := range sortedKeys(snap.ActiveAttacks) {
			count := snap.ActiveAttacks[name]
			ui.Item(out, "%s (%d %s)", name, count, util.Pluralize(count, "event", "events"))
		}
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func portStrings(ports []int) []string {
	out := make([]string, len(ports))
	for i, p := range ports {
		out[i] = fmt.Sprintf("%d", p)
	}
	return out
}
