package repositories

import (
	"database/sql"
	"testing"

	"github.com/desertthunder/slowdive/internal/models"
	"github.com/desertthunder/slowdive/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func testItem() models.CollectionItem {
	return models.CollectionItem{
		ID:       42,
		Title:    "Souvlaki",
		Artist:   "Slowdive",
		Format:   "Vinyl, LP",
		Year:     "1993",
		ThumbURL: "https://img.example/souvlaki.jpg",
		AddedAt:  "2026-08-01T12:00:00Z",
	}
}

func TestSnapshotRepository(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSnapshotRepository(db)
		snapshot := models.NewSnapshot(0, testItem())

		if err := repo.Create(snapshot); err != nil {
			t.Fatalf("failed to create snapshot: %v", err)
		}

		if snapshot.ID() == "" {
			t.Error("snapshot ID should be set after creation")
		}
		if snapshot.Sequence() != 1 {
			t.Errorf("expected sequence 1 on the created snapshot, got %d", snapshot.Sequence())
		}
	})

	t.Run("Create Rejects Invalid Item", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSnapshotRepository(db)
		snapshot := models.NewSnapshot(0, models.CollectionItem{ID: 1})

		if err := repo.Create(snapshot); err == nil {
			t.Error("expected validation error for item without title")
		}
	})

	t.Run("Get", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSnapshotRepository(db)
		snapshot := models.NewSnapshot(0, testItem())

		if err := repo.Create(snapshot); err != nil {
			t.Fatalf("failed to create snapshot: %v", err)
		}

		got, err := repo.Get(snapshot.ID())
		if err != nil {
			t.Fatalf("failed to get snapshot: %v", err)
		}

		if got.Item().Title != "Souvlaki" || got.Item().Artist != "Slowdive" {
			t.Errorf("unexpected item data: %+v", got.Item())
		}
		if got.Item().ID != 42 {
			t.Errorf("expected item id 42, got %d", got.Item().ID)
		}
	})

	t.Run("Get Missing", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSnapshotRepository(db)
		if _, err := repo.Get("nonexistent"); err == nil {
			t.Error("expected error for missing snapshot")
		}
	})

	t.Run("Update", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSnapshotRepository(db)
		snapshot := models.NewSnapshot(0, testItem())
		if err := repo.Create(snapshot); err != nil {
			t.Fatalf("failed to create snapshot: %v", err)
		}

		item := snapshot.Item()
		item.Notes = "first pressing"
		snapshot.SetItem(item)

		if err := repo.Update(snapshot); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}

		got, err := repo.Get(snapshot.ID())
		if err != nil {
			t.Fatalf("failed to get snapshot: %v", err)
		}
		if got.Item().Notes != "first pressing" {
			t.Errorf("expected updated notes, got %q", got.Item().Notes)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSnapshotRepository(db)
		snapshot := models.NewSnapshot(0, testItem())
		if err := repo.Create(snapshot); err != nil {
			t.Fatalf("failed to create snapshot: %v", err)
		}

		if err := repo.Delete(snapshot.ID()); err != nil {
			t.Fatalf("failed to delete snapshot: %v", err)
		}

		if _, err := repo.Get(snapshot.ID()); err == nil {
			t.Error("soft-deleted snapshot should not be retrievable")
		}

		if err := repo.Delete(snapshot.ID()); err == nil {
			t.Error("expected error deleting an already deleted snapshot")
		}
	})

	t.Run("List", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSnapshotRepository(db)

		first := testItem()
		second := testItem()
		second.ID = 43
		second.Title = "Pygmalion"

		for _, item := range []models.CollectionItem{first, second} {
			if err := repo.Create(models.NewSnapshot(0, item)); err != nil {
				t.Fatalf("failed to create snapshot: %v", err)
			}
		}

		all, err := repo.List(nil)
		if err != nil {
			t.Fatalf("failed to list snapshots: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("expected 2 snapshots, got %d", len(all))
		}
		if all[0].Sequence() >= all[1].Sequence() {
			t.Error("expected ascending sequence order")
		}

		scoped, err := repo.List(map[string]any{"item_id": 43})
		if err != nil {
			t.Fatalf("failed to list by item id: %v", err)
		}
		if len(scoped) != 1 || scoped[0].Item().Title != "Pygmalion" {
			t.Errorf("unexpected scoped result: %+v", scoped)
		}
	})

	t.Run("Sequence Increments", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		first, err := NextSequence(db, "collection_snapshots")
		if err != nil {
			t.Fatalf("failed to get sequence: %v", err)
		}
		second, err := NextSequence(db, "collection_snapshots")
		if err != nil {
			t.Fatalf("failed to get sequence: %v", err)
		}

		if second != first+1 {
			t.Errorf("expected sequence to increment, got %d then %d", first, second)
		}
	})
}
