package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/slowdive/internal/services"
	"github.com/desertthunder/slowdive/internal/shared"
	"github.com/urfave/cli/v3"
)

// AlbumsList prints one page of the ranked album listing.
func (r *Runner) AlbumsList(ctx context.Context, cmd *cli.Command) error {
	opts := services.AlbumListOptions{
		Limit:  cmd.Int("limit"),
		Offset: cmd.Int("offset"),
		Genre:  cmd.String("genre"),
	}

	r.logger.Debug("listing albums", "limit", opts.Limit, "offset", opts.Offset, "genre", opts.Genre)

	page, err := r.backend.ListAlbums(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to list albums: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(page, cmd.Bool("pretty"))
	}

	for _, album := range page.Albums {
		like := " "
		if album.IsLiked {
			like = "♥"
		}
		r.writePlain("%s #%-4d %s — %s\n", like, album.Rank, album.Title, album.ArtistName)
	}
	return r.writePlainln("Showing %d of %d albums", len(page.Albums), page.Total)
}

// AlbumsGet prints a single album's details.
func (r *Runner) AlbumsGet(ctx context.Context, cmd *cli.Command) error {
	id := cmd.IntArg("id")
	if id == 0 {
		return fmt.Errorf("%w: album id", shared.ErrMissingArgument)
	}

	album, err := r.backend.GetAlbum(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get album: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(album, cmd.Bool("pretty"))
	}

	r.writePlain("%s — %s\n", album.Title, album.ArtistName)
	if album.Rank > 0 {
		r.writePlain("Rank: #%d\n", album.Rank)
	}
	if album.ReleaseDate != "" {
		r.writePlain("Released: %s\n", album.ReleaseDate)
	}
	if album.Rating > 0 {
		r.writePlain("Rating: %.2f (%s ratings)\n", album.Rating, album.RatingsCount)
	}
	if len(album.Genres) > 0 {
		r.writePlain("Genres:")
		for _, genre := range album.Genres {
			r.writePlain(" %s", genre)
		}
		r.writePlain("\n")
	}
	if album.IsLiked {
		r.writePlain("♥ Liked\n")
	}
	return nil
}

// AlbumsOpen launches a streaming link for the album in the browser.
func (r *Runner) AlbumsOpen(ctx context.Context, cmd *cli.Command) error {
	id := cmd.IntArg("id")
	if id == 0 {
		return fmt.Errorf("%w: album id", shared.ErrMissingArgument)
	}

	album, err := r.backend.GetAlbum(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get album: %w", err)
	}

	var link string
	switch player := cmd.String("player"); player {
	case "spotify":
		link = album.SpotifyLink
	case "youtube":
		link = album.YouTubeLink
	case "apple":
		link = album.AppleMusicLink
	default:
		return fmt.Errorf("%w: unknown player %q", shared.ErrInvalidFlag, player)
	}

	if link == "" {
		return fmt.Errorf("%w: album has no link for that player", shared.ErrNotFound)
	}

	r.logger.Info("opening streaming link", "url", link)
	return shared.OpenBrowser(link)
}

// AlbumsLike toggles a like on an album and prints the resulting state.
func (r *Runner) AlbumsLike(ctx context.Context, cmd *cli.Command) error {
	id := cmd.IntArg("id")
	if id == 0 {
		return fmt.Errorf("%w: album id", shared.ErrMissingArgument)
	}

	liked, err := r.backend.ToggleLike(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to toggle like: %w", err)
	}

	if liked {
		return r.writePlain("♥ Liked album %d\n", id)
	}
	return r.writePlain("Removed like from album %d\n", id)
}
