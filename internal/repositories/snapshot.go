package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/slowdive/internal/models"
	"github.com/desertthunder/slowdive/internal/shared"
)

// SnapshotRepository implements [models.Repository] for [models.Snapshot]
// persistence. Snapshots are offline copies of collection items and never
// stand in for the live backend collection.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new [SnapshotRepository] with the given database connection
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Create inserts a new snapshot into the database with generated ID and sequence
func (r *SnapshotRepository) Create(snapshot *models.Snapshot) error {
	sequence, err := NextSequence(r.db, "collection_snapshots")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	snapshot.SetID(id)
	snapshot.SetSequence(sequence)

	if err := snapshot.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	item := snapshot.Item()
	query := `
		INSERT INTO collection_snapshots (id, sequence, item_id, title, artist, format, year, thumb_url, notes, item_added_at, taken_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id, sequence, item.ID, item.Title, item.Artist, item.Format, item.Year,
		item.ThumbURL, item.Notes, item.AddedAt,
		snapshot.TakenAt(), snapshot.CreatedAt(), snapshot.UpdatedAt())
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	return nil
}

// Get retrieves a snapshot by ID, excluding soft-deleted snapshots
func (r *SnapshotRepository) Get(id string) (*models.Snapshot, error) {
	query := `
		SELECT id, sequence, item_id, title, artist, format, year, thumb_url, notes, item_added_at, taken_at, created_at, updated_at, deleted_at
		FROM collection_snapshots
		WHERE id = ? AND deleted_at IS NULL
	`

	snapshot, err := scanSnapshot(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("snapshot not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}

	return snapshot, nil
}

// Update modifies an existing snapshot in the database
func (r *SnapshotRepository) Update(snapshot *models.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	snapshot.SetUpdatedAt(now)

	item := snapshot.Item()
	query := `
		UPDATE collection_snapshots
		SET title = ?, artist = ?, format = ?, year = ?, thumb_url = ?, notes = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, item.Title, item.Artist, item.Format, item.Year, item.ThumbURL, item.Notes, now, snapshot.ID())
	if err != nil {
		return fmt.Errorf("failed to update snapshot: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("snapshot not found or already deleted: %s", snapshot.ID())
	}

	return nil
}

// Delete soft-deletes a snapshot by ID
func (r *SnapshotRepository) Delete(id string) error {
	now := time.Now()

	query := `
		UPDATE collection_snapshots
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("snapshot not found or already deleted: %s", id)
	}

	return nil
}

// List retrieves all snapshots matching the given criteria, excluding
// soft-deleted snapshots. Supported criteria: "item_id" (int), "artist" (string).
func (r *SnapshotRepository) List(criteria map[string]any) ([]*models.Snapshot, error) {
	query := `
		SELECT id, sequence, item_id, title, artist, format, year, thumb_url, notes, item_added_at, taken_at, created_at, updated_at, deleted_at
		FROM collection_snapshots
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if itemID, ok := criteria["item_id"].(int); ok && itemID != 0 {
		query += " AND item_id = ?"
		args = append(args, itemID)
	}
	if artist, ok := criteria["artist"].(string); ok && artist != "" {
		query += " AND artist = ?"
		args = append(args, artist)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*models.Snapshot
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return snapshots, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*models.Snapshot, error) {
	var (
		id          string
		sequence    int
		item        models.CollectionItem
		takenAt     time.Time
		createdAt   time.Time
		updatedAt   time.Time
		deletedAt   sql.NullTime
		format      sql.NullString
		year        sql.NullString
		thumbURL    sql.NullString
		notes       sql.NullString
		itemAddedAt sql.NullString
	)

	err := row.Scan(&id, &sequence, &item.ID, &item.Title, &item.Artist, &format, &year,
		&thumbURL, &notes, &itemAddedAt, &takenAt, &createdAt, &updatedAt, &deletedAt)
	if err != nil {
		return nil, err
	}

	item.Format = format.String
	item.Year = year.String
	item.ThumbURL = thumbURL.String
	item.Notes = notes.String
	item.AddedAt = itemAddedAt.String

	snapshot := models.NewSnapshot(sequence, item)
	snapshot.SetID(id)
	snapshot.SetTakenAt(takenAt)
	snapshot.SetCreatedAt(createdAt)
	snapshot.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		snapshot.SetDeletedAt(&deletedAt.Time)
	}

	return snapshot, nil
}
