package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/desertthunder/slowdive/internal/models"
	"github.com/desertthunder/slowdive/internal/repositories"
	"github.com/desertthunder/slowdive/internal/shared"
	"github.com/urfave/cli/v3"
)

// CollectionList prints the signed-in user's record collection.
func (r *Runner) CollectionList(ctx context.Context, cmd *cli.Command) error {
	items, err := r.backend.ListCollection(ctx)
	if err != nil {
		return fmt.Errorf("failed to list collection: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(items, cmd.Bool("pretty"))
	}

	if len(items) == 0 {
		return r.writePlain("Your collection is empty\n")
	}

	for _, item := range items {
		line := fmt.Sprintf("[%d] %s — %s", item.ID, item.Artist, item.Title)
		if item.Format != "" {
			line = fmt.Sprintf("%s (%s)", line, item.Format)
		}
		if item.Year != "" {
			line = fmt.Sprintf("%s %s", line, item.Year)
		}
		r.writePlain("%s\n", line)
	}
	return r.writePlainln("%d items", len(items))
}

// CollectionAdd searches the catalog for the query and adds the result whose
// release id matches --release-id.
func (r *Runner) CollectionAdd(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}
	releaseID := cmd.Int("release-id")

	results, err := r.backend.SearchCatalog(ctx, query)
	if err != nil {
		return fmt.Errorf("catalog search failed: %w", err)
	}

	for _, result := range results {
		if result.ID == releaseID {
			item, err := r.backend.AddCollectionItem(ctx, result)
			if err != nil {
				return fmt.Errorf("failed to add to collection: %w", err)
			}
			return r.writePlain("✓ Added %s — %s to your collection\n", item.Artist, item.Title)
		}
	}

	return fmt.Errorf("%w: release %d not in results for %q", shared.ErrNotFound, releaseID, query)
}

// CollectionRemove deletes one item from the collection.
func (r *Runner) CollectionRemove(ctx context.Context, cmd *cli.Command) error {
	id := cmd.IntArg("id")
	if id == 0 {
		return fmt.Errorf("%w: item id", shared.ErrMissingArgument)
	}

	if err := r.backend.RemoveCollectionItem(ctx, id); err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}

	return r.writePlain("✓ Removed item %d\n", id)
}

// CollectionSnapshot fetches the live collection and saves an offline copy of
// every item to the local database.
func (r *Runner) CollectionSnapshot(ctx context.Context, cmd *cli.Command) error {
	items, err := r.backend.ListCollection(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch collection: %w", err)
	}
	if len(items) == 0 {
		return r.writePlain("Nothing to snapshot; your collection is empty\n")
	}

	db, err := r.openDatabase(cmd.String("config"))
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewSnapshotRepository(db)

	saved := 0
	for _, item := range items {
		if err := repo.Create(models.NewSnapshot(0, item)); err != nil {
			r.logger.Warn("failed to snapshot item", "item", item.Title, "error", err)
			continue
		}
		saved++
	}

	return r.writePlain("✓ Saved %d of %d items to %s\n", saved, len(items), r.config.Database.Path)
}

// CollectionSnapshots lists locally saved snapshots.
func (r *Runner) CollectionSnapshots(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase(cmd.String("config"))
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewSnapshotRepository(db)

	criteria := map[string]any{}
	if artist := cmd.String("artist"); artist != "" {
		criteria["artist"] = artist
	}

	snapshots, err := repo.List(criteria)
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	if len(snapshots) == 0 {
		return r.writePlain("No snapshots saved\n")
	}

	for _, snapshot := range snapshots {
		item := snapshot.Item()
		r.writePlain("%s  %s — %s (taken %s)\n",
			snapshot.ID()[:8], item.Artist, item.Title,
			snapshot.TakenAt().Format("2006-01-02 15:04"))
	}
	return r.writePlainln("%d snapshots", len(snapshots))
}

// openDatabase loads config, opens the local database, and ensures migrations
// have run.
func (r *Runner) openDatabase(configPath string) (*sql.DB, error) {
	if _, err := os.Stat(configPath); err == nil {
		if config, err := shared.LoadConfig(configPath); err == nil {
			r.config = config
		}
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
