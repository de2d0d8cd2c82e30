// Package tui provides the terminal user interface for the business
// assistant client.
package tui

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"golang.org/x/term"

	"github.com/ovoronin/bizcli/internal/api"
	"github.com/ovoronin/bizcli/internal/bridge"
	"github.com/ovoronin/bizcli/internal/config"
	"github.com/ovoronin/bizcli/internal/debug"
	"github.com/ovoronin/bizcli/internal/events"
	"github.com/ovoronin/bizcli/internal/pubsub"
	"github.com/ovoronin/bizcli/internal/tui/page"
	"github.com/ovoronin/bizcli/internal/tui/page/account"
	"github.com/ovoronin/bizcli/internal/tui/page/chat"
	"github.com/ovoronin/bizcli/internal/tui/page/files"
	"github.com/ovoronin/bizcli/internal/tui/page/login"
	"github.com/ovoronin/bizcli/internal/tui/styles"
	"github.com/ovoronin/bizcli/internal/tui/util"
)

// Model is the main TUI model. It routes messages to the active page and
// handles the global concerns: authentication transitions, page switching
// and window sizing.
type Model struct {
	client      *api.Client
	cfg         *config.Config
	hub         *pubsub.Hub
	bridge      *bridge.TUIBridge
	program     *tea.Program
	loginPage   *login.Model
	chatPage    *chat.Model
	filesPage   *files.Model
	accountPage *account.Model
	currentPage page.ID
	keyMap      KeyMap
	statusMsg   string
	width       int
	height      int
	ready       bool
}

// New creates the main TUI model. A client that already carries a token
// skips the login page.
func New(cfg *config.Config, client *api.Client, hub *pubsub.Hub) *Model {
	m := &Model{
		client:      client,
		cfg:         cfg,
		hub:         hub,
		keyMap:      DefaultKeyMap(),
		loginPage:   login.New(client),
		chatPage:    chat.New(client, hub),
		filesPage:   files.New(client, hub),
		accountPage: account.New(client),
		currentPage: page.Login,
	}

	if client.Token() != "" {
		m.currentPage = page.Chat
	}

	return m
}

// Init initializes the active page.
func (m *Model) Init() tea.Cmd {
	if m.currentPage == page.Chat {
		return m.chatPage.Init()
	}
	return m.loginPage.Init()
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		debug.Event("tui", "WindowSize", fmt.Sprintf("width=%d height=%d", msg.Width, msg.Height))
		m.handleWindowSize(msg)
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}

	case login.SuccessMsg:
		return m.handleLoggedIn(msg)

	case account.LogoutMsg:
		return m.handleLoggedOut()

	case bridge.AuthEventMsg:
		// Token invalidated elsewhere (e.g. a 401 response cleared it).
		if msg.Event.Payload.Type == events.AuthEventLoggedOut && m.currentPage != page.Login {
			return m.handleLoggedOut()
		}
		return m, nil

	case util.InfoMsg:
		// The chat page has its own status bar.
		if m.currentPage != page.Chat {
			m.statusMsg = msg.Msg
		}
		return m, nil

	case page.ChangeMsg:
		return m, m.switchPage(msg.Page)
	}

	cmd := m.routeToPage(msg)
	return m, cmd
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true
	m.updateComponentSizes()
}

// handleGlobalKeys processes quit and page-switching keys. Page switching
// is only available once authenticated.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()

	if matches(key, m.keyMap.Quit) {
		return tea.Quit, true
	}

	if m.currentPage == page.Login {
		return nil, false
	}

	switch {
	case matches(key, m.keyMap.PageChat):
		return m.switchPage(page.Chat), true
	case matches(key, m.keyMap.PageFiles):
		return m.switchPage(page.Files), true
	case matches(key, m.keyMap.PageAccount):
		return m.switchPage(page.Account), true
	}
	return nil, false
}

func (m *Model) switchPage(id page.ID) tea.Cmd {
	if m.currentPage == id {
		return nil
	}
	debug.Event("tui", "PageChange", fmt.Sprintf("page=%s", id))
	m.currentPage = id
	m.statusMsg = ""

	switch id {
	case page.Files:
		return m.filesPage.Init()
	case page.Account:
		return m.accountPage.Refresh()
	}
	return nil
}

func (m *Model) handleLoggedIn(msg login.SuccessMsg) (tea.Model, tea.Cmd) {
	m.client.SetToken(msg.Token)
	if err := config.StoreToken(msg.Token, msg.Username); err != nil {
		debug.Error("tui", err, "persisting token")
	}
	if m.hub != nil {
		m.hub.Auth.Publish(pubsub.EventCreated, events.NewLoggedInEvent(msg.Username))
	}
	m.currentPage = page.Chat
	m.statusMsg = ""
	return m, m.chatPage.Init()
}

func (m *Model) handleLoggedOut() (tea.Model, tea.Cmd) {
	m.client.ClearToken()
	if err := config.ClearToken(); err != nil {
		debug.Error("tui", err, "clearing stored token")
	}
	if m.hub != nil {
		m.hub.Auth.Publish(pubsub.EventDeleted, events.NewLoggedOutEvent())
	}

	// Fresh pages so the next login starts from a clean slate.
	m.loginPage = login.New(m.client)
	m.chatPage = chat.New(m.client, m.hub)
	m.filesPage = files.New(m.client, m.hub)
	m.accountPage = account.New(m.client)
	m.updateComponentSizes()

	m.currentPage = page.Login
	m.statusMsg = "Вы вышли из аккаунта"
	return m, m.loginPage.Init()
}

func (m *Model) routeToPage(msg tea.Msg) tea.Cmd {
	switch m.currentPage {
	case page.Login:
		_, cmd := m.loginPage.Update(msg)
		return cmd
	case page.Chat:
		_, cmd := m.chatPage.Update(msg)
		return cmd
	case page.Files:
		_, cmd := m.filesPage.Update(msg)
		return cmd
	case page.Account:
		_, cmd := m.accountPage.Update(msg)
		return cmd
	}
	return nil
}

// View renders the TUI.
func (m *Model) View() tea.View {
	t := styles.CurrentTheme()

	var view tea.View
	view.AltScreen = true

	if !m.ready {
		view.Content = "Загрузка..."
		return view
	}

	var content string
	switch m.currentPage {
	case page.Login:
		content = m.loginPage.View()
	case page.Chat:
		content = m.chatPage.View()
	case page.Files:
		content = m.filesPage.View()
	case page.Account:
		content = m.accountPage.View()
	}

	if m.currentPage != page.Login && m.currentPage != page.Chat {
		tabs := t.S().Muted.Render("[F1] Чат  [F2] Файлы  [F3] Аккаунт")
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", tabs)
	}

	if m.statusMsg != "" && m.currentPage != page.Chat {
		content = lipgloss.JoinVertical(lipgloss.Left, content, "",
			t.S().Info.Render(m.statusMsg))
	}

	view.Content = content

	switch m.currentPage {
	case page.Login:
		view.Cursor = m.loginPage.Cursor()
	case page.Chat:
		view.Cursor = m.chatPage.Cursor()
	case page.Files:
		view.Cursor = m.filesPage.Cursor()
	}

	return view
}

func (m *Model) updateComponentSizes() {
	m.loginPage.SetSize(m.width, m.height)
	m.chatPage.SetSize(m.width, m.height)
	m.filesPage.SetSize(m.width, m.height)
	m.accountPage.SetSize(m.width, m.height)
}

// Run starts the TUI program.
func Run(cfg *config.Config, client *api.Client, hub *pubsub.Hub) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("bizcli requires an interactive terminal: stdin/stdout must be connected to a TTY")
	}

	styles.NewManager()

	model := New(cfg, client, hub)
	p := tea.NewProgram(model)
	model.program = p

	if hub != nil {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		tuiBridge := bridge.NewTUIBridge(hub, p)
		model.bridge = tuiBridge
		tuiBridge.Start(ctx)
		defer tuiBridge.Stop()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
