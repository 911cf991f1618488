// Package repositories implements SQLite persistence for locally stored entities.
//
// The backend owns all shared state; this package only stores data the user
// explicitly asks to keep on their machine. Repositories support soft deletes
// via deleted_at timestamps and exclude deleted records from queries by default.
//
// Key Implementations:
//   - [SnapshotRepository] : offline copies of collection items, taken on demand
//
// Sequence numbers provide stable, human-readable ordering independent of
// UUIDs and creation timestamps. The [NextSequence] function atomically
// increments named counters in the shared sequences table.
package repositories
