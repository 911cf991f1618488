// Package models defines domain entities for the Slowdive client.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): structs mirroring the backend wire format
//   - [Album] : Ranked album summary with per-viewer like flag
//   - [Artist] : Artist profile with embedded discography
//   - [CollectionItem] : User-owned record sourced from the catalog
//   - [UserSettings] : Three independent feature flags
//   - [CatalogResult] : One external catalog (Discogs) search hit
//   - [Session] : Locally cached viewer identity
//
// 2. Persistent Entities: locally stored models with full lifecycle management
//   - [Snapshot] : Offline copy of a collection item
//
// Persistent entities implement the [Model] interface providing ID generation,
// timestamps, validation, and soft delete support. The [Repository] interface
// defines standard CRUD operations for local database access.
package models
