// Package browse holds the view-independent state management behind the
// album browsing surfaces: incremental grid pagination, optimistic
// mutations, discography sorting, and biography previews.
//
// [Pager] is the core piece: a sans-IO cursor state machine driven by
// whatever event model the surface prefers (cursor proximity in the TUI, an
// explicit load-more action elsewhere). It enforces the single-in-flight
// guard, strict de-duplication by album id, and terminal end-of-content
// handling, and resets wholesale when the scoping genre changes.
//
// [Optimistic] generalizes the apply-then-reconcile pattern shared by the
// like toggle and the settings flags: flip the displayed value immediately,
// trust the server's answer on success, roll back to the snapshot on failure.
package browse
