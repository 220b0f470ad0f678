package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/pyshield/shieldtop/internal/api"
	"github.com/pyshield/shieldtop/internal/errors"
	"github.com/pyshield/shieldtop/internal/ui"
)

var (
	ddosRequestLimit int
	ddosWindow       int
	ddosBan          int
)

// ddosCmd tunes the appliance's DDoS rate-limit settings.
var ddosCmd = &cobra.Command{
	Use:   "ddos",
	Short: "Tune DDoS protection settings",
	Long: `Adjust the appliance's rate-limit parameters: how many requests a
source may make inside the detection window, and how long offenders stay
banned.

Without flags the current settings are fetched and presented in an
interactive form. With any flag set, the command applies the given values
directly, keeping the appliance's current value for the others.

Examples:
  shieldtop ddos
  shieldtop ddos --request-limit 500 --window 60
  shieldtop ddos --ban 1800`,
	RunE: func(cmd *cobra.Command, args []string) error {
		interactive := !cmd.Flags().Changed("request-limit") &&
			!cmd.Flags().Changed("window") &&
			!cmd.Flags().Changed("ban")
		return ddosCommand(cmd, interactive)
	},
}

func init() {
	ddosCmd.Flags().IntVar(&ddosRequestLimit, "request-limit", 0, "max requests per source per window")
	ddosCmd.Flags().IntVar(&ddosWindow, "window", 0, "detection window in seconds")
	ddosCmd.Flags().IntVar(&ddosBan, "ban", 0, "ban duration in seconds")
	rootCmd.AddCommand(ddosCmd)
}

func ddosCommand(cmd *cobra.Command, interactive bool) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	current, err := client.DDoSSettings(ctx)
	if err != nil {
		return err
	}

	next := *current
	if interactive {
		updated, err := ddosForm(current)
		if err != nil {
			return err
		}
		next = *updated
	} else {
		if cmd.Flags().Changed("request-limit") {
			next.RequestLimit = ddosRequestLimit
		}
		if cmd.Flags().Changed("window") {
			next.WindowSeconds = ddosWindow
		}
		if cmd.Flags().Changed("ban") {
			next.BanSeconds = ddosBan
		}
	}

	if err := validateDDoS(&next); err != nil {
		return err
	}

	if err := client.UpdateDDoSSettings(ctx, next); err != nil {
		return err
	}

	ui.Success(os.Stdout, "DDoS settings updated: %d requests / %ds window, %ds ban",
		next.RequestLimit, next.WindowSeconds, next.BanSeconds)
	return nil
}

// ddosForm presents the current settings for editing.
func ddosForm(current *api.DDoSSettings) (*api.DDoSSettings, error) {
	limit := strconv.Itoa(current.RequestLimit)
	window := strconv.Itoa(current.WindowSeconds)
	ban := strconv.Itoa(current.BanSeconds)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Request limit").
				Description("Max requests per source inside the detection window").
				Value(&limit).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Window (seconds)").
				Description("Detection window length").
				Value(&window).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Ban (seconds)").
				Description("How long offenders stay banned").
				Value(&ban).
				Validate(validatePositiveInt),
		),
	)

	if err := form.Run(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrInput,
			"Failed to get user input",
			"Use --request-limit/--window/--ban for non-interactive updates.")
	}

	out := *current
	out.RequestLimit, _ = strconv.Atoi(limit)
	out.WindowSeconds, _ = strconv.Atoi(window)
	out.BanSeconds, _ = strconv.Atoi(ban)
	return &out, nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if n <= 0 {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}

func validateDDoS(s *api.DDoSSettings) error {
	if s.RequestLimit <= 0 || s.WindowSeconds <= 0 || s.BanSeconds <= 0 {
		return errors.New(errors.ErrInput,
			"DDoS settings must all be positive",
			"Example: shieldtop ddos --request-limit 200 --window 60 --ban 900")
	}
	return nil
}
