package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/slowdive/internal/models"
	"github.com/desertthunder/slowdive/internal/shared"
)

func (m *Model) completeSettingsFetch(msg settingsFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, shared.ErrNotAuthenticated) {
			m.view = GridView
			return m, m.toast.show("Sign in to manage settings", toastInfo, toastLong)
		}
		return m, m.toast.show(describeError(msg.err), toastError, toastLong)
	}

	if msg.settings != nil {
		m.settings = msg.settings
	}
	if msg.open {
		m.view = SettingsView
	}
	return m, nil
}

func (m *Model) handleSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = GridView
		return m, nil
	case "1":
		return m, m.toggleSetting(func(s *models.UserSettings) {
			s.CollectionMode = !s.CollectionMode
		})
	case "2":
		return m, m.toggleSetting(func(s *models.UserSettings) {
			s.ValuationMode = !s.ValuationMode
		})
	case "3":
		return m, m.toggleSetting(func(s *models.UserSettings) {
			s.PriceComparisonMode = !s.PriceComparisonMode
		})
	}
	return m, nil
}

// toggleSetting flips one flag optimistically and writes the full settings
// object back. A failed write reverts exactly the flipped flag since the
// snapshot differs from the optimistic value in that flag alone.
func (m *Model) toggleSetting(flip func(*models.UserSettings)) tea.Cmd {
	if m.settings == nil {
		return m.toast.show("Sign in to manage settings", toastInfo, toastLong)
	}
	if m.settingsOpt.Pending() {
		return nil
	}

	next := *m.settings
	flip(&next)

	applied := m.settingsOpt.Begin(*m.settings, next)
	m.settings = &applied

	return func() tea.Msg {
		stored, err := m.backend.PutSettings(m.ctx, next)
		return settingsSavedMsg{settings: stored, err: err}
	}
}

func (m *Model) completeSettingsSave(msg settingsSavedMsg) (tea.Model, tea.Cmd) {
	var server models.UserSettings
	if msg.settings != nil {
		server = *msg.settings
	}

	resolved := m.settingsOpt.Resolve(server, msg.err)
	m.settings = &resolved

	if msg.err != nil {
		if errors.Is(msg.err, shared.ErrNotAuthenticated) {
			m.view = GridView
			return m, m.toast.show("Session expired. Sign in again", toastInfo, toastLong)
		}
		return m, m.toast.show("Could not save settings", toastError, toastLong)
	}
	return m, nil
}

func (m *Model) renderSettings() string {
	title := styles.title.Render("Settings")

	if m.settings == nil {
		return fmt.Sprintf("%s\n%s", title, styles.help.Render("Loading settings..."))
	}

	rows := []struct {
		key     string
		label   string
		enabled bool
	}{
		{"1", "Collection Mode", m.settings.CollectionMode},
		{"2", "Valuation Mode", m.settings.ValuationMode},
		{"3", "Price Comparison Mode", m.settings.PriceComparisonMode},
	}

	body := ""
	for _, row := range rows {
		state := styles.warn.Render("off")
		if row.enabled {
			state = styles.ok.Render("on")
		}
		body += fmt.Sprintf("  [%s] %-24s %s\n", row.key, row.label, state)
	}

	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n%s", title, body, helpView)
}
