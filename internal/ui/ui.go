package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/slowdive/internal/browse"
	"github.com/desertthunder/slowdive/internal/catalog"
	"github.com/desertthunder/slowdive/internal/models"
	"github.com/desertthunder/slowdive/internal/services"
	"github.com/desertthunder/slowdive/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	GridView ViewState = iota
	AlbumView
	ArtistView
	SearchView
	ProfileView
	SettingsView
	CollectionView
	CatalogView
	LoginView
)

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	view    ViewState
	backend services.Service
	session *shared.SessionStore
	width   int
	height  int

	pager     *browse.Pager
	grid      list.Model
	gridReady bool

	album *models.Album

	artist      *models.Artist
	bioExpanded bool
	discoKey    browse.SortKey
	discoOrder  browse.SortOrder
	discoList   list.Model

	searchInput   textinput.Model
	searchFocused bool
	searchList    list.Model
	searchReady   bool

	profileList  list.Model
	profileReady bool

	settings    *models.UserSettings
	settingsOpt browse.Optimistic[models.UserSettings]

	collectionList  list.Model
	collectionReady bool
	catalogInput    textinput.Model
	catalogFocused  bool
	catalogList     list.Model
	catalogReady    bool
	catalogAll      []models.CatalogResult
	facets          catalog.Facets
	filter          catalog.Filter
	filterIdx       int

	usernameInput textinput.Model
	passwordInput textinput.Model
	loginFocus    int

	likes map[int]*browse.Optimistic[bool]

	toast toast
	help  help.Model
	keys  keyMap
}

// NewModel creates a new TUI model with the provided dependencies. The genre
// scopes the album grid for the whole session ("" for unscoped).
func NewModel(ctx context.Context, backend services.Service, session *shared.SessionStore, genre string) *Model {
	searchInput := textinput.New()
	searchInput.Placeholder = "Search artists and albums"
	searchInput.CharLimit = 120

	catalogInput := textinput.New()
	catalogInput.Placeholder = "Search Discogs"
	catalogInput.CharLimit = 120

	usernameInput := textinput.New()
	usernameInput.Placeholder = "Username"
	usernameInput.CharLimit = 64

	passwordInput := textinput.New()
	passwordInput.Placeholder = "Password"
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.CharLimit = 128

	return &Model{
		ctx:           ctx,
		view:          GridView,
		backend:       backend,
		session:       session,
		pager:         browse.NewPager(nil, genre, false),
		discoOrder:    browse.Descending,
		discoKey:      browse.SortByTime,
		searchInput:   searchInput,
		catalogInput:  catalogInput,
		usernameInput: usernameInput,
		passwordInput: passwordInput,
		filterIdx:     -1,
		likes:         make(map[int]*browse.Optimistic[bool]),
		help:          help.New(),
		keys:          newKeyMap(),
	}
}

// Init kicks off the first grid page and the settings fetch.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.startPageFetch(true), m.fetchSettings(true))
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.pager.SetWidth(msg.Width)
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case GridView:
			return m.handleGridKeys(msg)
		case AlbumView:
			return m.handleAlbumKeys(msg)
		case ArtistView:
			return m.handleArtistKeys(msg)
		case SearchView:
			return m.handleSearchKeys(msg)
		case ProfileView:
			return m.handleProfileKeys(msg)
		case SettingsView:
			return m.handleSettingsKeys(msg)
		case CollectionView:
			return m.handleCollectionKeys(msg)
		case CatalogView:
			return m.handleCatalogKeys(msg)
		case LoginView:
			return m.handleLoginKeys(msg)
		}

	case pageFetchedMsg:
		m.pager.Complete(msg.page, msg.err)
		m.rebuildGrid()
		return m, nil

	case albumFetchedMsg:
		if msg.err != nil {
			return m, m.toast.show(describeError(msg.err), toastError, toastLong)
		}
		m.album = msg.album
		m.view = AlbumView
		return m, nil

	case artistFetchedMsg:
		if msg.err != nil {
			return m, m.toast.show(describeError(msg.err), toastError, toastLong)
		}
		m.artist = msg.artist
		m.bioExpanded = false
		m.discoKey = browse.SortByTime
		m.discoOrder = browse.Descending
		m.rebuildDiscography()
		m.view = ArtistView
		return m, nil

	case searchDoneMsg:
		return m.completeSearch(msg)

	case likeResolvedMsg:
		return m.completeLike(msg)

	case likedFetchedMsg:
		if msg.err != nil {
			return m, m.toast.show(describeError(msg.err), toastError, toastLong)
		}
		m.rebuildProfile(msg.albums)
		m.view = ProfileView
		return m, nil

	case settingsFetchedMsg:
		return m.completeSettingsFetch(msg)

	case settingsSavedMsg:
		return m.completeSettingsSave(msg)

	case collectionFetchedMsg:
		if msg.err != nil {
			return m, m.toast.show(describeError(msg.err), toastError, toastLong)
		}
		m.rebuildCollection(msg.items)
		m.view = CollectionView
		return m, nil

	case collectionChangedMsg:
		return m.completeCollectionChange(msg)

	case catalogDoneMsg:
		return m.completeCatalogSearch(msg)

	case authDoneMsg:
		return m.completeAuth(msg)

	case browserOpenedMsg:
		if msg.err != nil {
			return m, m.toast.show(fmt.Sprintf("Could not open link: %v", msg.err), toastError, toastLong)
		}
		return m, nil

	case toastExpiredMsg:
		m.toast.expire(msg.id)
		return m, nil
	}

	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var body string
	switch m.view {
	case GridView:
		body = m.renderGrid()
	case AlbumView:
		body = m.renderAlbum()
	case ArtistView:
		body = m.renderArtist()
	case SearchView:
		body = m.renderSearch()
	case ProfileView:
		body = m.renderProfile()
	case SettingsView:
		body = m.renderSettings()
	case CollectionView:
		body = m.renderCollection()
	case CatalogView:
		body = m.renderCatalog()
	case LoginView:
		body = m.renderLogin()
	}

	if t := m.toast.render(); t != "" {
		body = fmt.Sprintf("%s\n\n%s", body, t)
	}
	return body
}

func (m *Model) resizeLists() {
	w, h := m.width-4, m.height-8
	if m.gridReady {
		m.grid.SetSize(w, h)
	}
	if m.searchReady {
		m.searchList.SetSize(w, h)
	}
	if m.profileReady {
		m.profileList.SetSize(w, h)
	}
	if m.collectionReady {
		m.collectionList.SetSize(w, h)
	}
	if m.catalogReady {
		m.catalogList.SetSize(w, h)
	}
	if m.artist != nil {
		m.discoList.SetSize(w, h/2)
	}
}

// startPageFetch begins the next grid page fetch when the pager allows one.
func (m *Model) startPageFetch(initial bool) tea.Cmd {
	limit, offset, ok := m.pager.StartFetch()
	if !ok {
		return nil
	}

	genre := m.pager.Genre()
	return func() tea.Msg {
		page, err := m.backend.ListAlbums(m.ctx, services.AlbumListOptions{
			Limit:  limit,
			Offset: offset,
			Genre:  genre,
		})
		if err != nil {
			return pageFetchedMsg{initial: initial, err: err}
		}
		return pageFetchedMsg{page: *page, initial: initial}
	}
}

// fetchSettings loads the viewer's feature flags. The quiet form is the
// startup probe: signed-out viewers simply have no settings and no error is
// surfaced.
func (m *Model) fetchSettings(quiet bool) tea.Cmd {
	return func() tea.Msg {
		settings, err := m.backend.GetSettings(m.ctx)
		if quiet && err != nil {
			return settingsFetchedMsg{}
		}
		return settingsFetchedMsg{settings: settings, open: !quiet, err: err}
	}
}

func (m *Model) fetchAlbum(id int) tea.Cmd {
	return func() tea.Msg {
		album, err := m.backend.GetAlbum(m.ctx, id)
		return albumFetchedMsg{album: album, err: err}
	}
}

func (m *Model) fetchArtist(id int) tea.Cmd {
	return func() tea.Msg {
		artist, err := m.backend.GetArtist(m.ctx, id)
		return artistFetchedMsg{artist: artist, err: err}
	}
}

// signedIn reports whether a cached identity is present. Feature flags load
// separately and may be missing even when the viewer is signed in, so
// identity checks never go through m.settings.
func (m *Model) signedIn() bool {
	return m.session != nil && m.session.Current() != nil
}

// describeError folds well-known failures into viewer-facing text.
func describeError(err error) string {
	switch {
	case errors.Is(err, shared.ErrNotAuthenticated):
		return "Sign in to do that"
	case errors.Is(err, shared.ErrAlbumNotFound):
		return "Album not found"
	case errors.Is(err, shared.ErrArtistNotFound):
		return "Artist not found"
	case errors.Is(err, shared.ErrNotFound):
		return "Not found"
	default:
		return fmt.Sprintf("Request failed: %v", err)
	}
}
