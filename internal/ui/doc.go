// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view browsing workflow:
//  1. [GridView] : The ranked album grid with incremental page loading
//  2. [AlbumView] : Album detail with like toggling and streaming links
//  3. [ArtistView] : Artist profile with collapsible bio and sortable discography
//  4. [SearchView] : Sitewide search over artists and albums
//  5. [ProfileView] : The signed-in user's liked albums
//  6. [SettingsView] : Feature flag toggles saved optimistically
//  7. [CollectionView] / [CatalogView] : Collection manager backed by the Discogs proxy
//  8. [LoginView] : Credential entry
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Backend calls run as commands and resolve through typed messages; writes are
// applied optimistically and reconciled when the backend answers.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
