package browse

import (
	"sort"
	"time"

	"github.com/desertthunder/slowdive/internal/models"
)

// SortKey selects which album attribute a discography is ordered by.
type SortKey int

const (
	SortByTime SortKey = iota
	SortByRating
)

// SortOrder selects the direction of a discography sort.
type SortOrder int

const (
	Descending SortOrder = iota
	Ascending
)

// Toggle flips the order between ascending and descending.
func (o SortOrder) Toggle() SortOrder {
	if o == Descending {
		return Ascending
	}
	return Descending
}

// releaseDateLayouts are tried in order when parsing an album's release date.
var releaseDateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// releaseTime parses an album's release date; unparseable dates sort as zero.
func releaseTime(album models.Album) time.Time {
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, album.ReleaseDate); err == nil {
			return t
		}
	}
	return time.Time{}
}

// SortAlbums returns a copy of albums ordered by the given key and order.
// Used for discography views; the backend's rank order is left untouched
// elsewhere.
func SortAlbums(albums []models.Album, key SortKey, order SortOrder) []models.Album {
	sorted := make([]models.Album, len(albums))
	copy(sorted, albums)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if order == Descending {
			a, b = b, a
		}
		switch key {
		case SortByRating:
			return a.Rating < b.Rating
		default:
			return releaseTime(a).Before(releaseTime(b))
		}
	})

	return sorted
}
