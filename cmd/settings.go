package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/slowdive/internal/models"
	"github.com/desertthunder/slowdive/internal/shared"
	"github.com/urfave/cli/v3"
)

// SettingsShow prints the signed-in user's feature flags.
func (r *Runner) SettingsShow(ctx context.Context, cmd *cli.Command) error {
	settings, err := r.backend.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(settings, cmd.Bool("pretty"))
	}

	r.writePlain("Collection Mode:       %s\n", onOff(settings.CollectionMode))
	r.writePlain("Valuation Mode:        %s\n", onOff(settings.ValuationMode))
	r.writePlain("Price Comparison Mode: %s\n", onOff(settings.PriceComparisonMode))
	return nil
}

// SettingsToggle flips one flag and writes the full settings object back.
func (r *Runner) SettingsToggle(ctx context.Context, cmd *cli.Command) error {
	flag := cmd.StringArg("flag")

	settings, err := r.backend.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	next := *settings
	switch flag {
	case "collection":
		next.CollectionMode = !next.CollectionMode
	case "valuation":
		next.ValuationMode = !next.ValuationMode
	case "prices":
		next.PriceComparisonMode = !next.PriceComparisonMode
	default:
		return fmt.Errorf("%w: flag must be collection, valuation, or prices", shared.ErrInvalidArgument)
	}

	stored, err := r.backend.PutSettings(ctx, next)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return r.writePlain("✓ %s is now %s\n", flag, onOff(flagValue(stored, flag)))
}

func flagValue(settings *models.UserSettings, flag string) bool {
	switch flag {
	case "collection":
		return settings.CollectionMode
	case "valuation":
		return settings.ValuationMode
	default:
		return settings.PriceComparisonMode
	}
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
