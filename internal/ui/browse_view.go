package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/slowdive/internal/browse"
	"github.com/desertthunder/slowdive/internal/models"
	"github.com/desertthunder/slowdive/internal/shared"
)

// rebuildGrid projects the pager's sequence into the grid list, preserving
// the cursor position across page appends.
func (m *Model) rebuildGrid() {
	albums := m.pager.Albums()
	items := make([]list.Item, len(albums))
	for i, album := range albums {
		items[i] = albumItem{album: album}
	}

	if !m.gridReady {
		m.grid = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.grid.Title = m.gridTitle()
		m.grid.SetFilteringEnabled(false)
		m.grid.SetSize(m.width-4, m.height-8)
		m.gridReady = true
		return
	}

	idx := m.grid.Index()
	m.grid.SetItems(items)
	if idx < len(items) {
		m.grid.Select(idx)
	}
}

func (m *Model) gridTitle() string {
	if genre := m.pager.Genre(); genre != "" {
		return fmt.Sprintf("Top Albums • %s", genre)
	}
	return "Top Albums"
}

func (m *Model) handleGridKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if album, ok := m.selectedGridAlbum(); ok {
			return m, m.fetchAlbum(album.ID)
		}
		return m, nil
	case "l":
		if album, ok := m.selectedGridAlbum(); ok {
			return m, m.toggleLike(album.ID, album.IsLiked)
		}
		return m, nil
	case "/":
		m.view = SearchView
		m.searchFocused = true
		m.searchInput.SetValue("")
		return m, m.searchInput.Focus()
	case "p":
		return m, m.fetchLiked()
	case "s":
		return m, m.fetchSettings(false)
	case "c":
		return m.openCollection()
	case "i":
		return m.openLogin()
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)

	if m.pager.ShouldFetch(m.grid.Index()) {
		cmd = tea.Batch(cmd, m.startPageFetch(false))
	}
	return m, cmd
}

func (m *Model) selectedGridAlbum() (models.Album, bool) {
	if !m.gridReady {
		return models.Album{}, false
	}
	if item, ok := m.grid.SelectedItem().(albumItem); ok {
		return item.album, true
	}
	return models.Album{}, false
}

func (m *Model) renderGrid() string {
	if !m.gridReady {
		return styles.help.Render("Loading albums...")
	}

	footer := ""
	if m.pager.InFlight() {
		footer = styles.help.Render("Loading more...")
	} else if m.pager.EndReached() {
		footer = styles.help.Render("You've reached the end")
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.like, m.keys.search, m.keys.settings, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n\n%s", m.grid.View(), footer, helpView)
}

// toggleLike flips the like optimistically and asks the backend to confirm.
// Signed-out viewers get the sign-in prompt without any network traffic. A
// toggle already awaiting confirmation swallows further presses for that
// album until the response lands.
func (m *Model) toggleLike(albumID int, current bool) tea.Cmd {
	if !m.signedIn() {
		return m.toast.show("Sign in to like albums", toastInfo, toastLong)
	}

	if opt, exists := m.likes[albumID]; exists && opt.Pending() {
		return nil
	}

	opt := &browse.Optimistic[bool]{}
	m.likes[albumID] = opt
	m.applyLike(albumID, opt.Begin(current, !current))

	return func() tea.Msg {
		liked, err := m.backend.ToggleLike(m.ctx, albumID)
		return likeResolvedMsg{albumID: albumID, liked: liked, err: err}
	}
}

// applyLike writes a like state into every copy of the album the UI holds.
func (m *Model) applyLike(albumID int, liked bool) {
	albums := m.pager.Albums()
	for i := range albums {
		if albums[i].ID == albumID {
			albums[i].IsLiked = liked
		}
	}
	m.rebuildGrid()

	if m.album != nil && m.album.ID == albumID {
		m.album.IsLiked = liked
	}
}

func (m *Model) completeLike(msg likeResolvedMsg) (tea.Model, tea.Cmd) {
	opt, exists := m.likes[msg.albumID]
	if !exists {
		return m, nil
	}
	delete(m.likes, msg.albumID)

	m.applyLike(msg.albumID, opt.Resolve(msg.liked, msg.err))

	if msg.err != nil {
		return m, m.toast.show(describeError(msg.err), toastError, toastLong)
	}
	return m, nil
}

func (m *Model) handleAlbumKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.album = nil
		m.view = GridView
		return m, nil
	case "l":
		if m.album != nil {
			return m, m.toggleLike(m.album.ID, m.album.IsLiked)
		}
	case "o":
		if m.album != nil {
			return m, m.openStreamingLink(*m.album)
		}
	case "v":
		if m.album != nil {
			return m, m.fetchArtist(m.album.ArtistID)
		}
	case "a":
		if m.album != nil {
			return m.openCatalogFor(*m.album)
		}
	}
	return m, nil
}

// openStreamingLink launches the first available streaming link.
func (m *Model) openStreamingLink(album models.Album) tea.Cmd {
	link := album.SpotifyLink
	if link == "" {
		link = album.YouTubeLink
	}
	if link == "" {
		link = album.AppleMusicLink
	}
	if link == "" {
		return m.toast.show("No streaming links for this album", toastInfo, toastShort)
	}

	return func() tea.Msg {
		return browserOpenedMsg{err: shared.OpenBrowser(link)}
	}
}

func (m *Model) renderAlbum() string {
	if m.album == nil {
		return styles.help.Render("Loading album...")
	}

	a := m.album
	title := styles.title.Render(fmt.Sprintf("%s — %s", a.Title, a.ArtistName))

	var lines []string
	if a.Rank > 0 {
		lines = append(lines, fmt.Sprintf("Rank: #%d", a.Rank))
	}
	if a.ReleaseDate != "" {
		lines = append(lines, fmt.Sprintf("Released: %s", a.ReleaseDate))
	}
	if a.Rating > 0 {
		ratings := a.RatingsCount
		if ratings == "" {
			ratings = "unknown"
		}
		lines = append(lines, fmt.Sprintf("Rating: %.2f (%s ratings)", a.Rating, ratings))
	}
	if len(a.Genres) > 0 {
		lines = append(lines, fmt.Sprintf("Genres: %s", strings.Join(a.Genres, ", ")))
	}
	if a.IsLiked {
		lines = append(lines, styles.like.Render("♥ Liked"))
	}

	body := ""
	for _, line := range lines {
		body += line + "\n"
	}

	helpKeys := []key.Binding{m.keys.like, m.keys.open, m.keys.artist, m.keys.add, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n%s", title, body, helpView)
}

// rebuildDiscography re-sorts the artist's albums into the discography list.
func (m *Model) rebuildDiscography() {
	if m.artist == nil {
		return
	}

	sorted := browse.SortAlbums(m.artist.Albums, m.discoKey, m.discoOrder)
	items := make([]list.Item, len(sorted))
	for i, album := range sorted {
		items[i] = albumItem{album: album}
	}

	m.discoList = list.New(items, list.NewDefaultDelegate(), m.width-4, (m.height-8)/2)
	m.discoList.Title = "Discography"
	m.discoList.SetFilteringEnabled(false)
}

func (m *Model) handleArtistKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.artist = nil
		m.view = GridView
		return m, nil
	case "e":
		m.bioExpanded = !m.bioExpanded
		return m, nil
	case "t":
		m.applyDiscoSort(browse.SortByTime)
		return m, nil
	case "r":
		m.applyDiscoSort(browse.SortByRating)
		return m, nil
	case "enter":
		if item, ok := m.discoList.SelectedItem().(albumItem); ok {
			return m, m.fetchAlbum(item.album.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.discoList, cmd = m.discoList.Update(msg)
	return m, cmd
}

// applyDiscoSort selects a sort key, flipping the order when the active key
// is pressed again.
func (m *Model) applyDiscoSort(sortKey browse.SortKey) {
	if m.discoKey == sortKey {
		m.discoOrder = m.discoOrder.Toggle()
	} else {
		m.discoKey = sortKey
		m.discoOrder = browse.Descending
	}
	m.rebuildDiscography()
}

func (m *Model) renderArtist() string {
	if m.artist == nil {
		return styles.help.Render("Loading artist...")
	}

	a := m.artist
	title := styles.title.Render(a.Name)
	meta := ""
	if a.Location != "" {
		meta = styles.help.Render(a.Location) + "\n"
	}

	bio := ""
	if a.Bio != "" {
		if m.bioExpanded || !browse.ShouldCollapse(a.Bio) {
			for _, p := range browse.Paragraphs(a.Bio) {
				bio += p + "\n\n"
			}
		} else {
			for _, p := range browse.BioPreview(a.Bio) {
				bio += p + "\n\n"
			}
			bio += styles.help.Render("(e to read more)") + "\n\n"
		}
	}

	helpKeys := []key.Binding{m.keys.sortTime, m.keys.sortRating, m.keys.expand, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s%s%s\n\n%s", title, meta, bio, m.discoList.View(), helpView)
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.searchFocused {
			m.view = GridView
			m.searchInput.Blur()
			return m, nil
		}
		m.searchFocused = true
		return m, m.searchInput.Focus()
	case "enter":
		if m.searchFocused {
			query := m.searchInput.Value()
			if query == "" {
				return m, nil
			}
			return m, m.runSearch(query)
		}
		return m.openSearchResult()
	}

	var cmd tea.Cmd
	if m.searchFocused {
		m.searchInput, cmd = m.searchInput.Update(msg)
	} else {
		m.searchList, cmd = m.searchList.Update(msg)
	}
	return m, cmd
}

func (m *Model) runSearch(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := m.backend.Search(m.ctx, query)
		return searchDoneMsg{results: results, err: err}
	}
}

func (m *Model) completeSearch(msg searchDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, m.toast.show(describeError(msg.err), toastError, toastLong)
	}

	var items []list.Item
	for _, artist := range msg.results.Artists {
		items = append(items, artistItem{artist: artist})
	}
	for _, album := range msg.results.Albums {
		items = append(items, albumItem{album: album})
	}

	m.searchList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-8)
	m.searchList.Title = fmt.Sprintf("Results for %q", m.searchInput.Value())
	m.searchList.SetFilteringEnabled(false)
	m.searchReady = true
	m.searchFocused = false
	m.searchInput.Blur()
	return m, nil
}

func (m *Model) openSearchResult() (tea.Model, tea.Cmd) {
	switch item := m.searchList.SelectedItem().(type) {
	case artistItem:
		return m, m.fetchArtist(item.artist.ID)
	case albumItem:
		return m, m.fetchAlbum(item.album.ID)
	}
	return m, nil
}

func (m *Model) renderSearch() string {
	body := m.searchInput.View()
	if m.searchReady && !m.searchFocused {
		body = fmt.Sprintf("%s\n\n%s", body, m.searchList.View())
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", body, helpView)
}

func (m *Model) fetchLiked() tea.Cmd {
	if !m.signedIn() {
		return m.toast.show("Sign in to view your profile", toastInfo, toastLong)
	}
	return func() tea.Msg {
		albums, err := m.backend.LikedAlbums(m.ctx)
		return likedFetchedMsg{albums: albums, err: err}
	}
}

func (m *Model) rebuildProfile(albums []models.Album) {
	items := make([]list.Item, len(albums))
	for i, album := range albums {
		items[i] = albumItem{album: album}
	}

	m.profileList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-8)
	m.profileList.Title = "Liked Albums"
	m.profileList.SetFilteringEnabled(false)
	m.profileReady = true
}

func (m *Model) handleProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = GridView
		return m, nil
	case "enter":
		if item, ok := m.profileList.SelectedItem().(albumItem); ok {
			return m, m.fetchAlbum(item.album.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.profileList, cmd = m.profileList.Update(msg)
	return m, cmd
}

func (m *Model) renderProfile() string {
	if !m.profileReady {
		return styles.help.Render("Loading profile...")
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.profileList.View(), helpView)
}
