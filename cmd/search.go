package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/slowdive/internal/shared"
	"github.com/urfave/cli/v3"
)

// Search performs a sitewide search and prints the grouped results.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}

	r.logger.Debug("searching", "query", query)

	results, err := r.backend.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(results, cmd.Bool("pretty"))
	}

	if len(results.Artists) == 0 && len(results.Albums) == 0 {
		return r.writePlain("No results for %q\n", query)
	}

	if len(results.Artists) > 0 {
		r.writePlain("Artists:\n")
		for _, artist := range results.Artists {
			r.writePlain("  [%d] %s\n", artist.ID, artist.Name)
		}
	}

	if len(results.Albums) > 0 {
		r.writePlain("Albums:\n")
		for _, album := range results.Albums {
			r.writePlain("  [%d] %s — %s\n", album.ID, album.Title, album.ArtistName)
		}
	}

	return nil
}
