// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// albumsCommand handles album browsing operations
func albumsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "albums",
		Aliases: []string{"al"},
		Usage:   "Browse the ranked album listing",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List one page of ranked albums",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of albums to return",
						Value: 40,
					},
					&cli.IntFlag{
						Name:  "offset",
						Usage: "Listing offset to start from",
					},
					&cli.StringFlag{
						Name:    "genre",
						Aliases: []string{"g"},
						Usage:   "Scope the listing to one genre",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.AlbumsList,
			},
			{
				Name:  "get",
				Usage: "Show one album's details",
				Arguments: []cli.Argument{
					&cli.IntArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.AlbumsGet,
			},
			{
				Name:  "open",
				Usage: "Open an album's streaming link in the browser",
				Arguments: []cli.Argument{
					&cli.IntArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "player",
						Usage: "Preferred player (spotify, youtube, apple)",
						Value: "spotify",
					},
				},
				Action: r.AlbumsOpen,
			},
			{
				Name:  "like",
				Usage: "Toggle a like on an album",
				Arguments: []cli.Argument{
					&cli.IntArg{Name: "id"},
				},
				Action: r.AlbumsLike,
			},
		},
	}
}

// artistsCommand handles artist profile operations
func artistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "artists",
		Aliases: []string{"ar"},
		Usage:   "Artist profiles and discographies",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Show an artist profile with discography",
				Arguments: []cli.Argument{
					&cli.IntArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Discography sort key (time or rating)",
						Value: "time",
					},
					&cli.StringFlag{
						Name:  "order",
						Usage: "Sort order (asc or desc)",
						Value: "desc",
					},
					&cli.BoolFlag{
						Name:  "full-bio",
						Usage: "Print the full bio instead of the preview",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.ArtistsGet,
			},
		},
	}
}

// searchCommand handles sitewide search
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search artists and albums",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "query"},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Search,
	}
}

// authCommand handles authentication operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage authentication",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Sign in and cache the session locally",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Usage:    "Account username",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "register",
				Usage: "Create an account and sign in",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Usage:    "Account username",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:   "logout",
				Usage:  "End the session and clear the local cache",
				Action: r.AuthLogout,
			},
			{
				Name:   "status",
				Usage:  "Show the cached session state",
				Action: r.AuthStatus,
			},
		},
	}
}

// profileCommand handles the signed-in user's profile
func profileCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Your profile",
		Commands: []*cli.Command{
			{
				Name:  "likes",
				Usage: "List the albums you've liked",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.ProfileLikes,
			},
		},
	}
}

// settingsCommand handles feature flag management
func settingsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "Manage feature flags",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show your current settings",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.SettingsShow,
			},
			{
				Name:  "toggle",
				Usage: "Flip one feature flag (collection, valuation, or prices)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "flag"},
				},
				Action: r.SettingsToggle,
			},
		},
	}
}

// collectionCommand handles the record collection
func collectionCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "collection",
		Aliases: []string{"col"},
		Usage:   "Manage your record collection",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List your collection",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.CollectionList,
			},
			{
				Name:  "add",
				Usage: "Add a Discogs release to your collection",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "query"},
				},
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "release-id",
						Usage:    "Discogs release id from a prior search",
						Required: true,
					},
				},
				Action: r.CollectionAdd,
			},
			{
				Name:  "remove",
				Usage: "Remove an item from your collection",
				Arguments: []cli.Argument{
					&cli.IntArg{Name: "id"},
				},
				Action: r.CollectionRemove,
			},
			{
				Name:  "snapshot",
				Usage: "Save an offline snapshot of your collection",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.CollectionSnapshot,
			},
			{
				Name:  "snapshots",
				Usage: "List locally saved snapshots",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
					&cli.StringFlag{
						Name:  "artist",
						Usage: "Only show snapshots for one artist",
					},
				},
				Action: r.CollectionSnapshots,
			},
		},
	}
}

// discogsCommand handles external catalog searches
func discogsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "discogs",
		Usage: "Search the Discogs catalog",
		Commands: []*cli.Command{
			{
				Name:  "search",
				Usage: "Search releases and masters",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "query"},
				},
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "format",
						Usage: "Keep results matching any of these formats",
					},
					&cli.StringFlag{
						Name:  "year",
						Usage: "Keep results from this exact year",
					},
					&cli.StringFlag{
						Name:  "country",
						Usage: "Keep results from this country",
					},
					&cli.StringFlag{
						Name:  "label",
						Usage: "Keep results on this label",
					},
					&cli.BoolFlag{
						Name:  "facets",
						Usage: "Print the filterable facet values",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.DiscogsSearch,
			},
		},
	}
}

// setupCommand handles setup operations for the local database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
			{
				Name:  "rollback",
				Usage: "Roll back the most recent migration",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupRollback,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive album browser",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "genre",
				Aliases: []string{"g"},
				Usage:   "Scope the album grid to one genre",
			},
		},
		Action: r.TUI,
	}
}
