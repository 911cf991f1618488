package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/slowdive/internal/catalog"
	"github.com/desertthunder/slowdive/internal/models"
)

// openCollection enters the collection manager. The view is gated behind the
// collection mode feature flag.
func (m *Model) openCollection() (tea.Model, tea.Cmd) {
	if !m.signedIn() {
		return m, m.toast.show("Sign in to manage your collection", toastInfo, toastLong)
	}
	if m.settings == nil || !m.settings.CollectionMode {
		return m, m.toast.show("Enable Collection Mode in settings first", toastInfo, toastLong)
	}
	return m, m.fetchCollection()
}

// openCatalogFor jumps into the catalog search pre-filled for one album, so a
// release can be attached to the collection from its detail view.
func (m *Model) openCatalogFor(album models.Album) (tea.Model, tea.Cmd) {
	if !m.signedIn() {
		return m, m.toast.show("Sign in to manage your collection", toastInfo, toastLong)
	}
	if m.settings == nil || !m.settings.CollectionMode {
		return m, m.toast.show("Enable Collection Mode in settings first", toastInfo, toastLong)
	}

	query := fmt.Sprintf("%s %s", album.ArtistName, album.Title)
	m.view = CatalogView
	m.catalogFocused = true
	m.catalogInput.SetValue(query)
	return m, tea.Batch(m.catalogInput.Focus(), m.runCatalogSearch(query))
}

// fetchCollection always hits the backend; the collection view never renders
// from a stale local copy.
func (m *Model) fetchCollection() tea.Cmd {
	return func() tea.Msg {
		items, err := m.backend.ListCollection(m.ctx)
		return collectionFetchedMsg{items: items, err: err}
	}
}

func (m *Model) rebuildCollection(records []models.CollectionItem) {
	items := make([]list.Item, len(records))
	for i, record := range records {
		items[i] = collectionItem{item: record}
	}

	m.collectionList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-8)
	m.collectionList.Title = "My Collection"
	m.collectionList.SetFilteringEnabled(false)
	m.collectionReady = true
}

func (m *Model) handleCollectionKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = GridView
		return m, nil
	case "/":
		m.view = CatalogView
		m.catalogFocused = true
		m.catalogInput.SetValue("")
		return m, m.catalogInput.Focus()
	case "d":
		if item, ok := m.collectionList.SelectedItem().(collectionItem); ok {
			return m, m.removeCollectionItem(item.item.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.collectionList, cmd = m.collectionList.Update(msg)
	return m, cmd
}

func (m *Model) removeCollectionItem(id int) tea.Cmd {
	return func() tea.Msg {
		err := m.backend.RemoveCollectionItem(m.ctx, id)
		return collectionChangedMsg{err: err}
	}
}

func (m *Model) completeCollectionChange(msg collectionChangedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// The backend's detail message explains duplicates and the like.
		return m, m.toast.show(describeError(msg.err), toastError, toastLong)
	}

	if msg.added != nil {
		// A successful attach closes the catalog; the refetched collection
		// view takes over once it lands.
		return m, tea.Batch(m.fetchCollection(),
			m.toast.show(fmt.Sprintf("Added %q to collection", msg.added.Title), toastSuccess, toastShort))
	}
	return m, tea.Batch(m.fetchCollection(),
		m.toast.show("Removed from collection", toastSuccess, toastShort))
}

func (m *Model) renderCollection() string {
	if !m.collectionReady {
		return styles.help.Render("Loading collection...")
	}

	footer := ""
	if m.settings != nil && m.settings.ValuationMode {
		footer = styles.help.Render(fmt.Sprintf("Valuation Mode • tracking %d items", len(m.collectionList.Items()))) + "\n"
	}

	helpKeys := []key.Binding{m.keys.search, m.keys.remove, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n%s", m.collectionList.View(), footer, helpView)
}

func (m *Model) handleCatalogKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.catalogFocused && m.catalogReady {
			m.catalogFocused = false
			m.catalogInput.Blur()
			return m, nil
		}
		m.view = CollectionView
		m.catalogInput.Blur()
		return m, m.fetchCollection()
	case "enter":
		if m.catalogFocused {
			query := m.catalogInput.Value()
			if query == "" {
				return m, nil
			}
			return m, m.runCatalogSearch(query)
		}
	case "/":
		if !m.catalogFocused {
			m.catalogFocused = true
			return m, m.catalogInput.Focus()
		}
	case "a":
		if !m.catalogFocused {
			if item, ok := m.catalogList.SelectedItem().(catalogItem); ok {
				return m, m.addCatalogResult(item.result)
			}
			return m, nil
		}
	case "f":
		if !m.catalogFocused {
			m.cycleFormatFilter()
			return m, nil
		}
	case "F":
		if !m.catalogFocused {
			m.filter = catalog.Filter{}
			m.filterIdx = -1
			m.rebuildCatalog()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.catalogFocused {
		m.catalogInput, cmd = m.catalogInput.Update(msg)
	} else {
		m.catalogList, cmd = m.catalogList.Update(msg)
	}
	return m, cmd
}

func (m *Model) runCatalogSearch(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := m.backend.SearchCatalog(m.ctx, query)
		return catalogDoneMsg{results: results, err: err}
	}
}

func (m *Model) completeCatalogSearch(msg catalogDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, m.toast.show(describeError(msg.err), toastError, toastLong)
	}

	m.catalogAll = msg.results
	m.facets = catalog.ExtractFacets(msg.results)
	m.filter = catalog.Filter{}
	m.filterIdx = -1
	m.catalogFocused = false
	m.catalogInput.Blur()
	m.rebuildCatalog()
	return m, nil
}

// cycleFormatFilter steps through the common format filters, ending back at
// no filter.
func (m *Model) cycleFormatFilter() {
	m.filterIdx++
	if m.filterIdx >= len(catalog.CommonFormats) {
		m.filterIdx = -1
		m.filter.Formats = nil
	} else {
		m.filter.Formats = []string{catalog.CommonFormats[m.filterIdx]}
	}
	m.rebuildCatalog()
}

// rebuildCatalog re-applies the active filters over the full result set.
func (m *Model) rebuildCatalog() {
	filtered := m.filter.Apply(m.catalogAll)
	items := make([]list.Item, len(filtered))
	for i, result := range filtered {
		items[i] = catalogItem{result: result}
	}

	title := fmt.Sprintf("Discogs Results (%d/%d)", len(filtered), len(m.catalogAll))
	if len(m.filter.Formats) > 0 {
		title = fmt.Sprintf("%s • %s", title, m.filter.Formats[0])
	}

	m.catalogList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-8)
	m.catalogList.Title = title
	m.catalogList.SetFilteringEnabled(false)
	m.catalogReady = true
}

func (m *Model) addCatalogResult(result models.CatalogResult) tea.Cmd {
	return func() tea.Msg {
		item, err := m.backend.AddCollectionItem(m.ctx, result)
		return collectionChangedMsg{added: item, err: err}
	}
}

func (m *Model) renderCatalog() string {
	body := m.catalogInput.View()
	if m.catalogReady && !m.catalogFocused {
		facetLine := styles.help.Render(fmt.Sprintf("%d years • %d countries • %d labels",
			len(m.facets.Years), len(m.facets.Countries), len(m.facets.Labels)))
		body = fmt.Sprintf("%s\n\n%s\n%s", body, m.catalogList.View(), facetLine)
	}

	helpKeys := []key.Binding{m.keys.add, m.keys.filter, m.keys.clear, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", body, helpView)
}
