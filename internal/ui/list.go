package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/slowdive/internal/models"
)

var (
	_ list.Item = albumItem{}
	_ list.Item = artistItem{}
	_ list.Item = collectionItem{}
	_ list.Item = catalogItem{}
)

// albumItem wraps [models.Album] to implement [list.Item].
type albumItem struct {
	album models.Album
}

func (i albumItem) FilterValue() string { return i.album.Title }
func (i albumItem) Title() string {
	title := fmt.Sprintf("#%d %s", i.album.Rank, i.album.Title)
	if i.album.Rank == 0 {
		title = i.album.Title
	}
	if i.album.IsLiked {
		title = fmt.Sprintf("%s %s", title, styles.like.Render("♥"))
	}
	return title
}
func (i albumItem) Description() string {
	desc := i.album.ArtistName
	if i.album.Rating > 0 {
		desc = fmt.Sprintf("%s • %.2f", desc, i.album.Rating)
	}
	if i.album.ReleaseDate != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.album.ReleaseDate)
	}
	return desc
}

// artistItem wraps [models.Artist] to implement [list.Item].
type artistItem struct {
	artist models.Artist
}

func (i artistItem) FilterValue() string { return i.artist.Name }
func (i artistItem) Title() string       { return i.artist.Name }
func (i artistItem) Description() string {
	desc := "Artist"
	if i.artist.Location != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.artist.Location)
	}
	return desc
}

// collectionItem wraps [models.CollectionItem] to implement [list.Item].
type collectionItem struct {
	item models.CollectionItem
}

func (i collectionItem) FilterValue() string { return i.item.Title }
func (i collectionItem) Title() string       { return i.item.Title }
func (i collectionItem) Description() string {
	desc := i.item.Artist
	if i.item.Format != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.item.Format)
	}
	if i.item.Year != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.item.Year)
	}
	return desc
}

// catalogItem wraps [models.CatalogResult] to implement [list.Item].
type catalogItem struct {
	result models.CatalogResult
}

func (i catalogItem) FilterValue() string { return i.result.Title }
func (i catalogItem) Title() string       { return i.result.Title }
func (i catalogItem) Description() string {
	desc := i.result.Type
	if i.result.Year != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.result.Year)
	}
	if len(i.result.Formats) > 0 {
		desc = fmt.Sprintf("%s • %s", desc, i.result.Formats[0])
	}
	if i.result.Country != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.result.Country)
	}
	return desc
}
