// package services defines interface Service for interacting with the
// Slowdive backend HTTP API
package services

import (
	"context"

	"github.com/desertthunder/slowdive/internal/models"
)

// AlbumListOptions scopes a paginated album listing request.
type AlbumListOptions struct {
	Limit  int
	Offset int
	Genre  string
}

// Service defines the backend surface the client consumes. The backend owns
// all mutation; locally held state is an optimistic mirror reconciled from
// these calls.
type Service interface {
	// ListAlbums retrieves one page of the ranked album listing.
	ListAlbums(ctx context.Context, opts AlbumListOptions) (*models.AlbumPage, error)

	// GetAlbum retrieves a single album. IsLiked reflects the current
	// session's user when one is present.
	GetAlbum(ctx context.Context, id int) (*models.Album, error)

	// GetArtist retrieves an artist profile with its embedded discography.
	GetArtist(ctx context.Context, id int) (*models.Artist, error)

	// Search performs a sitewide search over artists and albums.
	Search(ctx context.Context, query string) (*models.SearchResults, error)

	// ToggleLike flips the like state of an album for the signed-in user.
	// The returned value is the authoritative resulting state.
	ToggleLike(ctx context.Context, albumID int) (liked bool, err error)

	// LikedAlbums lists the albums the signed-in user has liked.
	LikedAlbums(ctx context.Context) ([]models.Album, error)

	// Login exchanges credentials for a session, caching it locally.
	Login(ctx context.Context, username, password string) (*models.Session, error)

	// Register creates an account and signs in, caching the session locally.
	Register(ctx context.Context, username, password string) (*models.Session, error)

	// Logout tells the backend to end the session (best effort) and clears
	// the local cache.
	Logout(ctx context.Context) error

	// GetSettings retrieves the signed-in user's feature flags.
	GetSettings(ctx context.Context) (*models.UserSettings, error)

	// PutSettings replaces the full settings object and returns the stored value.
	PutSettings(ctx context.Context, settings models.UserSettings) (*models.UserSettings, error)

	// ListCollection lists the signed-in user's record collection.
	ListCollection(ctx context.Context) ([]models.CollectionItem, error)

	// AddCollectionItem attaches a catalog result to the collection.
	AddCollectionItem(ctx context.Context, result models.CatalogResult) (*models.CollectionItem, error)

	// RemoveCollectionItem deletes one collection item by id.
	RemoveCollectionItem(ctx context.Context, id int) error

	// SearchCatalog queries the external catalog through the backend proxy.
	SearchCatalog(ctx context.Context, query string) ([]models.CatalogResult, error)

	// Name returns the name of the backend (e.g., "Slowdive")
	Name() string
}
