package ui

import (
	"github.com/desertthunder/slowdive/internal/models"
)

// pageFetchedMsg carries one album page from the backend. initial marks the
// first page of a fresh scope (startup or genre change).
type pageFetchedMsg struct {
	page    models.AlbumPage
	initial bool
	err     error
}

// albumFetchedMsg carries an album detail response.
type albumFetchedMsg struct {
	album *models.Album
	err   error
}

// artistFetchedMsg carries an artist profile response.
type artistFetchedMsg struct {
	artist *models.Artist
	err    error
}

// searchDoneMsg carries sitewide search hits.
type searchDoneMsg struct {
	results *models.SearchResults
	err     error
}

// likeResolvedMsg carries the backend's authoritative like state for one album.
type likeResolvedMsg struct {
	albumID int
	liked   bool
	err     error
}

// likedFetchedMsg carries the profile's liked album list.
type likedFetchedMsg struct {
	albums []models.Album
	err    error
}

// settingsFetchedMsg carries the stored feature flags. open moves the TUI to
// the settings view on success; the startup probe leaves the view alone.
type settingsFetchedMsg struct {
	settings *models.UserSettings
	open     bool
	err      error
}

// settingsSavedMsg resolves an optimistic settings write.
type settingsSavedMsg struct {
	settings *models.UserSettings
	err      error
}

// collectionFetchedMsg carries the live collection listing.
type collectionFetchedMsg struct {
	items []models.CollectionItem
	err   error
}

// collectionChangedMsg resolves an add or remove against the collection.
type collectionChangedMsg struct {
	added *models.CollectionItem
	err   error
}

// catalogDoneMsg carries external catalog search hits.
type catalogDoneMsg struct {
	results []models.CatalogResult
	err     error
}

// authDoneMsg resolves a login or registration attempt.
type authDoneMsg struct {
	session *models.Session
	err     error
}

// toastExpiredMsg dismisses the toast with the matching id.
type toastExpiredMsg struct {
	id int
}

// browserOpenedMsg reports the outcome of launching a streaming link.
type browserOpenedMsg struct {
	err error
}
