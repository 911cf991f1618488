package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/slowdive/internal/browse"
	"github.com/desertthunder/slowdive/internal/shared"
	"github.com/urfave/cli/v3"
)

// ArtistsGet prints an artist profile and sorted discography.
func (r *Runner) ArtistsGet(ctx context.Context, cmd *cli.Command) error {
	id := cmd.IntArg("id")
	if id == 0 {
		return fmt.Errorf("%w: artist id", shared.ErrMissingArgument)
	}

	artist, err := r.backend.GetArtist(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get artist: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(artist, cmd.Bool("pretty"))
	}

	var sortKey browse.SortKey
	switch cmd.String("sort") {
	case "time":
		sortKey = browse.SortByTime
	case "rating":
		sortKey = browse.SortByRating
	default:
		return fmt.Errorf("%w: sort must be time or rating", shared.ErrInvalidFlag)
	}

	var order browse.SortOrder
	switch cmd.String("order") {
	case "desc":
		order = browse.Descending
	case "asc":
		order = browse.Ascending
	default:
		return fmt.Errorf("%w: order must be asc or desc", shared.ErrInvalidFlag)
	}

	r.writePlain("%s\n", artist.Name)
	if artist.Location != "" {
		r.writePlain("%s\n", artist.Location)
	}

	if artist.Bio != "" {
		r.writePlain("\n")
		if cmd.Bool("full-bio") || !browse.ShouldCollapse(artist.Bio) {
			for _, paragraph := range browse.Paragraphs(artist.Bio) {
				r.writePlain("%s\n\n", paragraph)
			}
		} else {
			for _, paragraph := range browse.BioPreview(artist.Bio) {
				r.writePlain("%s\n\n", paragraph)
			}
			r.writePlain("(pass --full-bio to read the rest)\n\n")
		}
	}

	sorted := browse.SortAlbums(artist.Albums, sortKey, order)
	r.writePlain("Discography (%d albums):\n", len(sorted))
	for _, album := range sorted {
		line := fmt.Sprintf("  %s", album.Title)
		if album.ReleaseDate != "" {
			line = fmt.Sprintf("%s (%s)", line, album.ReleaseDate)
		}
		if album.Rating > 0 {
			line = fmt.Sprintf("%s — %.2f", line, album.Rating)
		}
		r.writePlain("%s\n", line)
	}

	return nil
}
