// package models defines the data model for the Slowdive music discovery client
package models

import (
	"time"
)

// Album represents a ranked album as served by the Slowdive backend.
//
// IsLiked is a per-viewer flag and only carries meaning when the request
// that produced the album identified the current session's user.
type Album struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	ArtistID       int      `json:"artist_id"`
	ArtistName     string   `json:"artist_name"`
	Rank           int      `json:"rank"`
	ReleaseDate    string   `json:"release_date,omitempty"`
	Rating         float64  `json:"rating,omitempty"`
	RatingsCount   string   `json:"ratings_count,omitempty"`
	ImagePath      string   `json:"image_path"`
	SpotifyLink    string   `json:"spotify_link,omitempty"`
	YouTubeLink    string   `json:"youtube_link,omitempty"`
	AppleMusicLink string   `json:"apple_music_link,omitempty"`
	Genres         []string `json:"genres"`
	IsLiked        bool     `json:"is_liked,omitempty"`
}

// Artist represents an artist profile with its embedded discography.
type Artist struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug,omitempty"`
	Bio       string  `json:"bio,omitempty"`
	ImagePath string  `json:"image_path,omitempty"`
	Location  string  `json:"location,omitempty"`
	Albums    []Album `json:"albums"`
}

// AlbumPage is one response from the paginated album listing endpoint.
type AlbumPage struct {
	Albums  []Album `json:"albums"`
	Total   int     `json:"total"`
	HasMore bool    `json:"has_more"`
}

// SearchResults holds sitewide search hits, grouped by entity.
type SearchResults struct {
	Artists []Artist `json:"artists"`
	Albums  []Album  `json:"albums"`
}

// CollectionItem is a user-owned record in the personal collection,
// populated from a catalog (Discogs) entry.
type CollectionItem struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Format   string `json:"format"`
	Year     string `json:"year"`
	ThumbURL string `json:"thumb_url"`
	Notes    string `json:"notes,omitempty"`
	AddedAt  string `json:"added_at"`
}

// UserSettings holds the three independent feature flags gating UI sections.
type UserSettings struct {
	CollectionMode      bool `json:"collection_mode"`
	ValuationMode       bool `json:"valuation_mode"`
	PriceComparisonMode bool `json:"price_comparison_mode"`
}

// CatalogResult is one entry from the external catalog search endpoint.
// Type is either "release" or "master".
type CatalogResult struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Year     string   `json:"year,omitempty"`
	Thumb    string   `json:"thumb,omitempty"`
	Formats  []string `json:"format,omitempty"`
	Labels   []string `json:"label,omitempty"`
	Country  string   `json:"country,omitempty"`
	Type     string   `json:"type"`
	MasterID int      `json:"master_id,omitempty"`
}

// Session is the locally cached identity of the authenticated viewer.
// The backend owns the real session via an HTTP-only cookie; Token mirrors
// that cookie's value so the client can forward it on requests.
type Session struct {
	UserID   int    `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token,omitempty"`
}

// Model defines the base interface for all locally persisted models.
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	CreatedAt() time.Time // CreatedAt returns when this model was created
	UpdatedAt() time.Time // UpdatedAt returns when this model was last updated
	Validate() error      // Validate checks if the model's data is valid and returns an error if not
}

// Repository defines the interface for local data access operations.
type Repository[T Model] interface {
	Create(model T) error                      // Create inserts a new model into the database
	Get(id string) (T, error)                  // Get retrieves a model by its ID
	Update(model T) error                      // Update modifies an existing model in the database
	Delete(id string) error                    // Delete removes a model from the database by its ID
	List(criteria map[string]any) ([]T, error) // List retrieves all models matching the given criteria
}
