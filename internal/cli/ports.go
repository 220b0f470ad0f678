package cli

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pyshield/shieldtop/internal/errors"
	"github.com/pyshield/shieldtop/internal/ui"
	"github.com/pyshield/shieldtop/internal/util"
)

// portsCmd groups the port block/unblock operations.
var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "Manage blocked ports",
}

var portsBlockCmd = &cobra.Command{
	Use:   "block <ports>",
	Short: "Block one or more ports",
	Long: `Block inbound traffic on the given ports.

Ports may be separated by commas or spaces; invalid tokens are ignored.

Examples:
  shieldtop ports block 23
  shieldtop ports block "80, 443"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return portsCommand(args, true)
	},
}

var portsUnblockCmd = &cobra.Command{
	Use:   "unblock <ports>",
	Short: "Unblock one or more ports",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return portsCommand(args, false)
	},
}

func init() {
	portsCmd.AddCommand(portsBlockCmd)
	portsCmd.AddCommand(portsUnblockCmd)
	rootCmd.AddCommand(portsCmd)
}

func portsCommand(args []string, block bool) error {
	ports := util.ParsePorts(strings.Join(args, " "))
	if len(ports) == 0 {
		return errors.New(errors.ErrInput,
			"No valid ports in input",
			"Ports are numbers between 1 and 65535, e.g. 'shieldtop ports block 80, 443'.")
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if block {
		if err := client.BlockPorts(ctx, ports); err != nil {
			return err
		}
		ui.Success(os.Stdout, "blocked %s %s",
			util.Pluralize(len(ports), "port", "ports"), util.JoinPorts(ports))
		return nil
	}

	if err := client.UnblockPorts(ctx, ports); err != nil {
		return err
	}
	ui.Success(os.Stdout, "unblocked %s %s",
		util.Pluralize(len(ports), "port", "ports"), util.JoinPorts(ports))
	return nil
}
