// Package login provides the authentication page: sign in or register a
// new business account.
package login

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"charm.land/lipgloss/v2"

	"github.com/ovoronin/bizcli/internal/api"
	"github.com/ovoronin/bizcli/internal/debug"
	"github.com/ovoronin/bizcli/internal/tui/components/logo"
	"github.com/ovoronin/bizcli/internal/tui/styles"
	"github.com/ovoronin/bizcli/internal/tui/util"
)

// SuccessMsg is sent when authentication completes. The root model stores
// the token and switches to the chat page.
type SuccessMsg struct {
	Token    string
	Username string
}

// authResultMsg carries the API response back into the page.
type authResultMsg struct {
	Err  error
	Resp *api.AuthResponse
}

// mode selects between the two forms.
type mode int

const (
	modeLogin mode = iota
	modeRegister
)

const minPasswordLen = 6

// field indexes into the inputs slice.
const (
	fieldUsername = iota
	fieldPassword
	fieldBusinessName
	fieldSpecialization
)

// Model is the login page model.
type Model struct {
	client  *api.Client
	inputs  []textinput.Model
	mode    mode
	cursor  int
	busy    bool
	errMsg  string
	width   int
	height  int
}

// New creates the login page.
func New(client *api.Client) *Model {
	username := textinput.New()
	username.Placeholder = "Имя пользователя"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "Пароль"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword

	businessName := textinput.New()
	businessName.Placeholder = "Название бизнеса"
	businessName.CharLimit = 128

	specialization := textinput.New()
	specialization.Placeholder = "Сфера деятельности"
	specialization.CharLimit = 128

	return &Model{
		client: client,
		inputs: []textinput.Model{username, password, businessName, specialization},
	}
}

// Init initializes the page.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// visibleFields returns how many inputs the current mode shows.
func (m *Model) visibleFields() int {
	if m.mode == modeRegister {
		return 4
	}
	return 2
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (util.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case authResultMsg:
		m.busy = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			debug.Error("login", msg.Err, "authenticating")
			return m, nil
		}
		m.errMsg = ""
		return m, util.CmdHandler(SuccessMsg{
			Token:    msg.Resp.Token,
			Username: msg.Resp.User.Username,
		})
	}

	var cmd tea.Cmd
	m.inputs[m.cursor], cmd = m.inputs[m.cursor].Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (util.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	switch msg.String() {
	case "tab", "down":
		return m, m.focusField((m.cursor + 1) % m.visibleFields())
	case "shift+tab", "up":
		return m, m.focusField((m.cursor - 1 + m.visibleFields()) % m.visibleFields())
	case "ctrl+r":
		m.toggleMode()
		return m, m.focusField(0)
	case "enter":
		return m, m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.cursor], cmd = m.inputs[m.cursor].Update(msg)
	return m, cmd
}

func (m *Model) toggleMode() {
	if m.mode == modeLogin {
		m.mode = modeRegister
	} else {
		m.mode = modeLogin
	}
	m.errMsg = ""
}

func (m *Model) focusField(idx int) tea.Cmd {
	m.inputs[m.cursor].Blur()
	m.cursor = idx
	return m.inputs[m.cursor].Focus()
}

// validate checks the form locally before any request is made.
func (m *Model) validate() string {
	username := strings.TrimSpace(m.inputs[fieldUsername].Value())
	password := m.inputs[fieldPassword].Value()

	if username == "" {
		return "Укажите имя пользователя"
	}
	if len(password) < minPasswordLen {
		return "Пароль должен быть не короче 6 символов"
	}
	if m.mode == modeRegister {
		if strings.TrimSpace(m.inputs[fieldBusinessName].Value()) == "" {
			return "Укажите название бизнеса"
		}
	}
	return ""
}

func (m *Model) submit() tea.Cmd {
	if errText := m.validate(); errText != "" {
		m.errMsg = errText
		return nil
	}

	m.busy = true
	m.errMsg = ""

	username := strings.TrimSpace(m.inputs[fieldUsername].Value())
	password := m.inputs[fieldPassword].Value()
	businessName := strings.TrimSpace(m.inputs[fieldBusinessName].Value())
	specialization := strings.TrimSpace(m.inputs[fieldSpecialization].Value())
	register := m.mode == modeRegister

	return func() tea.Msg {
		ctx := context.Background()
		var resp *api.AuthResponse
		var err error
		if register {
			resp, err = m.client.Register(ctx, api.RegisterRequest{
				Username:       username,
				Password:       password,
				BusinessName:   businessName,
				Specialization: specialization,
			})
		} else {
			resp, err = m.client.Login(ctx, username, password)
		}
		return authResultMsg{Resp: resp, Err: err}
	}
}

// View renders the login page.
func (m *Model) View() string {
	t := styles.CurrentTheme()

	title := "Вход"
	hint := "[ctrl+r] Регистрация  [enter] Войти"
	if m.mode == modeRegister {
		title = "Регистрация"
		hint = "[ctrl+r] Вход  [enter] Создать аккаунт"
	}

	var rows []string
	rows = append(rows, t.S().Subtitle.Render(title))
	rows = append(rows, "")

	for i := 0; i < m.visibleFields(); i++ {
		rows = append(rows, m.inputs[i].View())
	}

	if m.busy {
		rows = append(rows, "", t.S().Info.Render("Выполняется запрос..."))
	} else if m.errMsg != "" {
		rows = append(rows, "", t.S().Error.Render(m.errMsg))
	}

	rows = append(rows, "", t.S().Muted.Render(hint))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(1, 3)

	box := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	content := box
	if m.width >= logo.Width()+4 && m.height >= lipgloss.Height(box)+logo.Height()+3 {
		content = lipgloss.JoinVertical(lipgloss.Center, logo.RenderWithTagline(), "", box)
	} else {
		content = lipgloss.JoinVertical(lipgloss.Center,
			t.S().Title.Render("Бизнес-ассистент"), "", box)
	}

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}

// SetSize sets the page size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	for i := range m.inputs {
		m.inputs[i].SetWidth(min(40, max(20, width-20)))
	}
}

// Cursor returns the cursor for the focused field.
func (m *Model) Cursor() *tea.Cursor {
	if m.busy {
		return nil
	}
	return m.inputs[m.cursor].Cursor()
}
