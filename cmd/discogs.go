package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/slowdive/internal/catalog"
	"github.com/desertthunder/slowdive/internal/shared"
	"github.com/urfave/cli/v3"
)

// DiscogsSearch queries the catalog proxy and applies the filter flags
// client-side, the same way the interactive browser narrows results.
func (r *Runner) DiscogsSearch(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}

	r.logger.Debug("searching catalog", "query", query)

	results, err := r.backend.SearchCatalog(ctx, query)
	if err != nil {
		return fmt.Errorf("catalog search failed: %w", err)
	}

	filter := catalog.Filter{
		Formats: cmd.StringSlice("format"),
		Year:    cmd.String("year"),
		Country: cmd.String("country"),
		Label:   cmd.String("label"),
	}
	filtered := filter.Apply(results)

	if cmd.Bool("json") {
		return r.writeJSON(filtered, cmd.Bool("pretty"))
	}

	if cmd.Bool("facets") {
		facets := catalog.ExtractFacets(results)
		r.writePlain("Formats:   %v\n", catalog.CommonFormats)
		r.writePlain("Years:     %v\n", facets.Years)
		r.writePlain("Countries: %v\n", facets.Countries)
		r.writePlain("Labels:    %v\n", facets.Labels)
		r.writePlain("\n")
	}

	if len(filtered) == 0 {
		return r.writePlain("No results match the active filters (%d unfiltered)\n", len(results))
	}

	for _, result := range filtered {
		line := fmt.Sprintf("[%d] %s", result.ID, result.Title)
		if result.Year != "" {
			line = fmt.Sprintf("%s (%s)", line, result.Year)
		}
		if len(result.Formats) > 0 {
			line = fmt.Sprintf("%s [%s]", line, result.Formats[0])
		}
		if result.Country != "" {
			line = fmt.Sprintf("%s, %s", line, result.Country)
		}
		r.writePlain("%s\n", line)
	}
	return r.writePlainln("Showing %d of %d results", len(filtered), len(results))
}
