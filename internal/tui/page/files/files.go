// Package files provides the attachments page: upload, list, and delete
// documents the assistant can draw on.
package files

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/ovoronin/bizcli/internal/api"
	"github.com/ovoronin/bizcli/internal/bridge"
	"github.com/ovoronin/bizcli/internal/debug"
	"github.com/ovoronin/bizcli/internal/events"
	"github.com/ovoronin/bizcli/internal/pubsub"
	"github.com/ovoronin/bizcli/internal/tui/styles"
	"github.com/ovoronin/bizcli/internal/tui/util"
)

// listMsg carries a finished file list fetch.
type listMsg struct {
	Err   error
	Files []api.File
}

// uploadMsg reports an upload outcome.
type uploadMsg struct {
	Err      error
	Filename string
}

// deleteMsg reports a deletion outcome.
type deleteMsg struct {
	Err    error
	FileID string
}

// mode selects between browsing and entering an upload path.
type mode int

const (
	modeList mode = iota
	modeUploadPath
	modeConfirmDelete
)

// Model is the files page model.
type Model struct {
	client    *api.Client
	hub       *pubsub.Hub
	files     []api.File
	pathInput textinput.Model
	mode      mode
	cursor    int
	busy      bool
	errMsg    string
	width     int
	height    int
}

// New creates the files page.
func New(client *api.Client, hub *pubsub.Hub) *Model {
	pathInput := textinput.New()
	pathInput.Placeholder = "Путь к файлу..."
	pathInput.CharLimit = 512

	return &Model{
		client:    client,
		hub:       hub,
		pathInput: pathInput,
	}
}

// Init triggers the first listing.
func (m *Model) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m *Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		files, err := m.client.ListFiles(context.Background())
		return listMsg{Files: files, Err: err}
	}
}

func (m *Model) uploadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		err := m.client.UploadFile(context.Background(), path)
		return uploadMsg{Filename: filepath.Base(path), Err: err}
	}
}

func (m *Model) deleteCmd(fileID string) tea.Cmd {
	return func() tea.Msg {
		err := m.client.DeleteFile(context.Background(), fileID)
		return deleteMsg{FileID: fileID, Err: err}
	}
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (util.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case listMsg:
		if msg.Err != nil {
			debug.Error("files", msg.Err, "listing files")
			m.files = nil
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.files = msg.Files
		if m.cursor >= len(m.files) {
			m.cursor = max(0, len(m.files)-1)
		}
		return m, nil

	case uploadMsg:
		m.busy = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, util.ReportError(msg.Err)
		}
		m.errMsg = ""
		if m.hub != nil {
			m.hub.File.Publish(pubsub.EventCreated,
				events.NewFileUploadedEvent(msg.Filename))
		}
		return m, tea.Batch(
			m.refreshCmd(),
			util.ReportSuccess("Файл загружен: "+msg.Filename),
		)

	case deleteMsg:
		m.busy = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, util.ReportError(msg.Err)
		}
		m.errMsg = ""
		if m.hub != nil {
			m.hub.File.Publish(pubsub.EventDeleted,
				events.NewFileDeletedEvent(msg.FileID))
		}
		return m, tea.Batch(m.refreshCmd(), util.ReportSuccess("Файл удалён"))

	case bridge.FileEventMsg:
		// Another component changed the attachment set.
		return m, m.refreshCmd()
	}

	if m.mode == modeUploadPath {
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (util.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	if m.mode == modeConfirmDelete {
		switch msg.String() {
		case "y", "Y", "enter":
			m.mode = modeList
			if m.cursor < len(m.files) {
				m.busy = true
				return m, m.deleteCmd(m.files[m.cursor].ID)
			}
		case "n", "N", "esc":
			m.mode = modeList
		}
		return m, nil
	}

	if m.mode == modeUploadPath {
		switch msg.String() {
		case "enter":
			path := strings.TrimSpace(m.pathInput.Value())
			if path == "" {
				return m, nil
			}
			m.mode = modeList
			m.pathInput.SetValue("")
			m.pathInput.Blur()
			m.busy = true
			return m, m.uploadCmd(path)
		case "esc":
			m.mode = modeList
			m.pathInput.SetValue("")
			m.pathInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.files)-1 {
			m.cursor++
		}
	case "u":
		m.mode = modeUploadPath
		return m, m.pathInput.Focus()
	case "d":
		if m.cursor < len(m.files) {
			m.mode = modeConfirmDelete
		}
	case "r":
		return m, m.refreshCmd()
	}

	return m, nil
}

// View renders the files page.
func (m *Model) View() string {
	t := styles.CurrentTheme()

	var rows []string
	rows = append(rows, t.S().Title.Render("Файлы"))
	rows = append(rows, "")

	if len(m.files) == 0 {
		rows = append(rows, t.S().Muted.Render("Файлов нет. [u] — загрузить."))
	}

	for i, f := range m.files {
		name := ansi.Truncate(f.Filename, max(8, m.width-24), "...")
		size := formatSize(f.FileSize)
		line := fmt.Sprintf("%s  %s", name, t.S().Muted.Render(size))
		if i == m.cursor {
			rows = append(rows, t.S().Primary.Bold(true).Render("> ")+line)
		} else {
			rows = append(rows, "  "+line)
		}
	}

	switch m.mode {
	case modeUploadPath:
		rows = append(rows, "", t.S().Text.Render("Загрузка файла:"), m.pathInput.View())
	case modeConfirmDelete:
		if m.cursor < len(m.files) {
			rows = append(rows, "",
				t.S().Warning.Render(fmt.Sprintf("Удалить файл «%s»? [y] Да  [n] Нет", m.files[m.cursor].Filename)))
		}
	}

	if m.busy {
		rows = append(rows, "", t.S().Info.Render("Выполняется..."))
	} else if m.errMsg != "" {
		rows = append(rows, "", t.S().Error.Render(m.errMsg))
	}

	rows = append(rows, "",
		t.S().Muted.Render("[u] Загрузить  [d] Удалить  [r] Обновить"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Render(content)
}

// SetSize sets the page size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.pathInput.SetWidth(min(60, max(20, width-10)))
}

// Cursor returns the cursor when entering an upload path.
func (m *Model) Cursor() *tea.Cursor {
	if m.mode == modeUploadPath {
		return m.pathInput.Cursor()
	}
	return nil
}

func formatSize(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f МБ", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f КБ", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%d Б", size)
	}
}
