package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) openLogin() (tea.Model, tea.Cmd) {
	m.view = LoginView
	m.usernameInput.SetValue("")
	m.passwordInput.SetValue("")
	m.passwordInput.Blur()
	m.loginFocus = 0
	return m, m.usernameInput.Focus()
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = GridView
		m.usernameInput.Blur()
		m.passwordInput.Blur()
		return m, nil
	case "tab", "shift+tab", "up", "down":
		return m, m.swapLoginFocus()
	case "enter":
		if m.loginFocus == 0 {
			return m, m.swapLoginFocus()
		}
		username := m.usernameInput.Value()
		password := m.passwordInput.Value()
		if username == "" || password == "" {
			return m, m.toast.show("Username and password are required", toastInfo, toastShort)
		}
		return m, m.runLogin(username, password)
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.usernameInput, cmd = m.usernameInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) swapLoginFocus() tea.Cmd {
	if m.loginFocus == 0 {
		m.loginFocus = 1
		m.usernameInput.Blur()
		return m.passwordInput.Focus()
	}
	m.loginFocus = 0
	m.passwordInput.Blur()
	return m.usernameInput.Focus()
}

func (m *Model) runLogin(username, password string) tea.Cmd {
	return func() tea.Msg {
		session, err := m.backend.Login(m.ctx, username, password)
		return authDoneMsg{session: session, err: err}
	}
}

// completeAuth finishes a sign-in: the grid is refetched so per-viewer like
// flags appear, and the settings probe runs again.
func (m *Model) completeAuth(msg authDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, m.toast.show(describeError(msg.err), toastError, toastLong)
	}

	m.view = GridView
	m.usernameInput.Blur()
	m.passwordInput.Blur()
	m.pager.Reset(nil, m.pager.Genre())

	return m, tea.Batch(
		m.startPageFetch(true),
		m.fetchSettings(true),
		m.toast.show(fmt.Sprintf("Signed in as %s", msg.session.Username), toastSuccess, toastShort),
	)
}

func (m *Model) renderLogin() string {
	title := styles.title.Render("Sign In")
	body := fmt.Sprintf("%s\n%s\n", m.usernameInput.View(), m.passwordInput.View())

	helpKeys := []key.Binding{m.keys.enter, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n%s", title, body, helpView)
}
