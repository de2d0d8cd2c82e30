// Package account renders the profile and usage view.
package account

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ovoronin/bizcli/internal/api"
	"github.com/ovoronin/bizcli/internal/debug"
	"github.com/ovoronin/bizcli/internal/tui/styles"
	"github.com/ovoronin/bizcli/internal/tui/util"
)

// LogoutMsg asks the root model to drop the session and return to login.
type LogoutMsg struct{}

// profileMsg carries a finished profile fetch.
type profileMsg struct {
	Err   error
	User  *api.User
	Stats *api.Stats
}

// Model is the account page model.
type Model struct {
	client  *api.Client
	user    *api.User
	stats   *api.Stats
	loading bool
	errMsg  string
	width   int
	height  int
}

// New creates the account page.
func New(client *api.Client) *Model {
	return &Model{client: client}
}

// Init fetches the profile.
func (m *Model) Init() tea.Cmd {
	return m.Refresh()
}

// Refresh re-fetches the profile; the root model calls it when the page
// becomes visible.
func (m *Model) Refresh() tea.Cmd {
	m.loading = true
	return func() tea.Msg {
		user, stats, err := m.client.GetUser(context.Background())
		return profileMsg{User: user, Stats: stats, Err: err}
	}
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (util.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileMsg:
		m.loading = false
		if msg.Err != nil {
			debug.Error("account", msg.Err, "fetching profile")
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.user = msg.User
		m.stats = msg.Stats
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.Refresh()
		case "ctrl+d":
			return m, util.CmdHandler(LogoutMsg{})
		}
	}
	return m, nil
}

// View renders the account page.
func (m *Model) View() string {
	t := styles.CurrentTheme()

	var rows []string
	rows = append(rows, t.S().Title.Render("Аккаунт"), "")

	switch {
	case m.loading && m.user == nil:
		rows = append(rows, t.S().Info.Render("Загрузка профиля..."))
	case m.errMsg != "":
		rows = append(rows, t.S().Error.Render("Ошибка: "+m.errMsg))
	case m.user != nil:
		rows = append(rows,
			row(t, "Пользователь", m.user.Username),
			row(t, "Бизнес", m.user.BusinessName),
		)
		if m.user.Specialization != "" {
			rows = append(rows, row(t, "Специализация", m.user.Specialization))
		}
		if !m.user.CreatedAt.IsZero() {
			rows = append(rows, row(t, "Зарегистрирован", m.user.CreatedAt.Format("02.01.2006")))
		}
		if m.stats != nil {
			rows = append(rows, "",
				t.S().Subtitle.Render("Статистика"),
				row(t, "Сообщений", fmt.Sprintf("%d", m.stats.MessagesCount)),
				row(t, "Файлов", fmt.Sprintf("%d", m.stats.FilesCount)),
			)
		}
	}

	rows = append(rows, "",
		t.S().Muted.Render("[r] Обновить  [ctrl+d] Выйти из аккаунта"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Render(content)
}

func row(t *styles.Theme, label, value string) string {
	return fmt.Sprintf("%s %s",
		t.S().Muted.Render(fmt.Sprintf("%-16s", label+":")),
		t.S().Text.Render(value))
}

// SetSize sets the page size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
