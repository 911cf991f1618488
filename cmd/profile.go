package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// ProfileLikes lists the signed-in user's liked albums.
func (r *Runner) ProfileLikes(ctx context.Context, cmd *cli.Command) error {
	albums, err := r.backend.LikedAlbums(ctx)
	if err != nil {
		return fmt.Errorf("failed to list liked albums: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(albums, cmd.Bool("pretty"))
	}

	if len(albums) == 0 {
		return r.writePlain("No liked albums yet\n")
	}

	for _, album := range albums {
		r.writePlain("♥ [%d] %s — %s\n", album.ID, album.Title, album.ArtistName)
	}
	return r.writePlainln("%d liked albums", len(albums))
}
