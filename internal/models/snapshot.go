package models

import (
	"fmt"
	"time"
)

var _ Model = (*Snapshot)(nil)

// Snapshot is a locally persisted copy of one [CollectionItem], taken when the
// user explicitly exports their collection for offline reference. It never
// shadows the backend: views always fetch the live collection.
type Snapshot struct {
	id        string
	sequence  int
	item      CollectionItem
	takenAt   time.Time
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

// NewSnapshot creates a snapshot of a collection item with the given sequence number.
func NewSnapshot(sequence int, item CollectionItem) *Snapshot {
	now := time.Now()
	return &Snapshot{
		sequence:  sequence,
		item:      item,
		takenAt:   now,
		createdAt: now,
		updatedAt: now,
	}
}

func (s *Snapshot) ID() string            { return s.id }
func (s *Snapshot) Sequence() int         { return s.sequence }
func (s *Snapshot) Item() CollectionItem  { return s.item }
func (s *Snapshot) TakenAt() time.Time    { return s.takenAt }
func (s *Snapshot) CreatedAt() time.Time  { return s.createdAt }
func (s *Snapshot) UpdatedAt() time.Time  { return s.updatedAt }
func (s *Snapshot) DeletedAt() *time.Time { return s.deletedAt }

func (s *Snapshot) SetID(id string)             { s.id = id }
func (s *Snapshot) SetSequence(sequence int)    { s.sequence = sequence }
func (s *Snapshot) SetTakenAt(t time.Time)      { s.takenAt = t }
func (s *Snapshot) SetCreatedAt(t time.Time)    { s.createdAt = t }
func (s *Snapshot) SetUpdatedAt(t time.Time)    { s.updatedAt = t }
func (s *Snapshot) SetDeletedAt(t *time.Time)   { s.deletedAt = t }
func (s *Snapshot) SetItem(item CollectionItem) { s.item = item }

// Validate checks that the snapshot carries enough data to be useful later.
func (s *Snapshot) Validate() error {
	if s.item.ID == 0 {
		return fmt.Errorf("snapshot missing collection item id")
	}
	if s.item.Title == "" {
		return fmt.Errorf("snapshot missing title")
	}
	if s.item.Artist == "" {
		return fmt.Errorf("snapshot missing artist")
	}
	return nil
}
