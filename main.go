package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"setlist/internal/config"
	"setlist/internal/playlist"
	"setlist/internal/ui/cursor"
	"setlist/internal/ui/render"
)

var (
	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	trackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	playingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252"))

	dimmedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

const playingSymbol = "\u25B6" // ▶

// inputMode selects what the text prompt is collecting.
type inputMode int

const (
	modeNormal inputMode = iota
	modeAdd
	modeInsert
	modeRemoveTitle
)

type model struct {
	queue   *playlist.Queue
	history *playlist.History
	input   textinput.Model
	mode    inputMode
	cursor  cursor.Cursor
	status  string
	width   int
	height  int
}

func initialModel() (model, error) {
	cfg, err := config.Load()
	if err != nil {
		return model{}, err
	}

	input := textinput.New()
	input.Placeholder = "Title / seconds"
	input.CharLimit = 128

	queue := playlist.NewQueue(cfg.MaxTracks)
	history := playlist.NewHistory(cfg.HistorySize)
	history.Push(queue.Tracks())

	return model{
		queue:   queue,
		history: history,
		input:   input,
	}, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeNormal {
			return m.updatePrompt(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

// updateNormal handles key presses outside the text prompt.
func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		m.cursor.Move(-1, m.queue.Len(), m.listHeight())

	case "down", "j":
		m.cursor.Move(1, m.queue.Len(), m.listHeight())

	case "a":
		return m.openPrompt(modeAdd, "Title / seconds")

	case "i":
		return m.openPrompt(modeInsert, "Title / seconds")

	case "x":
		return m.openPrompt(modeRemoveTitle, "Title to remove")

	case "d":
		if m.queue.RemoveAt(m.cursor.Pos()) {
			m.cursor.ClampToBounds(m.queue.Len())
			m.snapshot()
		}

	case "D":
		if m.queue.Len() > 0 {
			m.queue.RemoveAt(m.queue.Len() - 1)
			m.cursor.ClampToBounds(m.queue.Len())
			m.snapshot()
		}

	case "s":
		if m.queue.Len() > 1 {
			m.queue.SortByDuration()
			m.snapshot()
			m.status = "sorted by duration"
		}

	case "enter":
		m.queue.JumpTo(m.cursor.Pos())

	case "n":
		if next := m.queue.Next(); next != nil {
			m.cursor.Jump(m.queue.CurrentIndex(), m.queue.Len(), m.listHeight())
		}

	case "u":
		if tracks, ok := m.history.Undo(); ok {
			m.queue.Replace(tracks...)
			m.cursor.ClampToBounds(m.queue.Len())
			m.status = "undo"
		}

	case "r":
		if tracks, ok := m.history.Redo(); ok {
			m.queue.Replace(tracks...)
			m.cursor.ClampToBounds(m.queue.Len())
			m.status = "redo"
		}
	}

	return m, nil
}

// updatePrompt handles key presses while the text prompt is open.
func (m model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		return m, nil

	case "enter":
		m.submitPrompt()
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) openPrompt(mode inputMode, placeholder string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	return m, m.input.Focus()
}

// submitPrompt applies the prompt value according to the current mode.
func (m *model) submitPrompt() {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		return
	}

	switch m.mode {
	case modeAdd:
		track, err := parseTrack(value)
		if err != nil {
			m.status = err.Error()
			return
		}
		if !m.queue.Add(track) {
			m.status = "playlist is full"
			return
		}
		m.snapshot()

	case modeInsert:
		track, err := parseTrack(value)
		if err != nil {
			m.status = err.Error()
			return
		}
		if !m.queue.Insert(m.cursor.Pos(), track) {
			m.status = "playlist is full"
			return
		}
		m.snapshot()

	case modeRemoveTitle:
		if !m.queue.RemoveByTitle(value) {
			m.status = fmt.Sprintf("no track titled %q", value)
			return
		}
		m.cursor.ClampToBounds(m.queue.Len())
		m.snapshot()
	}
}

// parseTrack parses "Title / seconds" into a track.
func parseTrack(s string) (playlist.Track, error) {
	idx := strings.LastIndex(s, "/")
	if idx < 0 {
		return playlist.Track{}, fmt.Errorf("expected %q", "Title / seconds")
	}

	title := strings.TrimSpace(s[:idx])
	if title == "" {
		return playlist.Track{}, fmt.Errorf("title is empty")
	}

	seconds, err := strconv.Atoi(strings.TrimSpace(s[idx+1:]))
	if err != nil || seconds < 0 {
		return playlist.Track{}, fmt.Errorf("invalid duration %q", strings.TrimSpace(s[idx+1:]))
	}

	return playlist.NewTrack(title, seconds), nil
}

func (m *model) snapshot() {
	m.history.Push(m.queue.Tracks())
}

const panelChrome = 6 // borders, header, separator, footer lines

func (m model) listHeight() int {
	return max(m.height-panelChrome, 1)
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	innerWidth := m.width - 2
	listHeight := m.listHeight()

	header := headerStyle.Render(
		render.TruncateAndPad(fmt.Sprintf("Setlist (%d/%d)", m.queue.Len(), m.queue.Cap()), innerWidth),
	)

	lines := make([]string, 0, listHeight)
	tracks := m.queue.Tracks()
	for i := range listHeight {
		idx := i + m.cursor.Offset()
		if idx >= len(tracks) {
			lines = append(lines, render.EmptyLine(innerWidth))
			continue
		}
		lines = append(lines, m.renderTrackLine(tracks[idx], idx, innerWidth))
	}

	content := header + "\n" +
		render.Separator(innerWidth) + "\n" +
		strings.Join(lines, "\n") + "\n" +
		render.Separator(innerWidth) + "\n" +
		m.renderFooter(innerWidth)

	return panelStyle.Width(innerWidth).Render(content)
}

func (m model) renderTrackLine(t playlist.Track, idx, width int) string {
	prefix := "  "
	style := trackStyle
	if idx == m.queue.CurrentIndex() {
		prefix = playingSymbol + " "
		style = playingStyle
	}

	duration := playlist.FormatDuration(t.Duration)
	titleWidth := max(width-lipgloss.Width(prefix)-len(duration)-1, 0)
	line := prefix + render.TruncateAndPad(t.Title, titleWidth) + " " + duration

	if idx == m.cursor.Pos() {
		return cursorStyle.Render(line)
	}
	return style.Render(line)
}

func (m model) renderFooter(width int) string {
	if m.mode != modeNormal {
		label := "add: "
		switch m.mode {
		case modeInsert:
			label = "insert: "
		case modeRemoveTitle:
			label = "remove: "
		}
		// The input view carries ANSI styling, so no width-based padding here.
		return label + m.input.View()
	}

	left := "total " + playlist.FormatDuration(m.queue.TotalDuration())
	if title, ok := m.queue.ShortestTrackTitle(); ok {
		left += "  shortest: " + render.Truncate(title, 24)
	}

	if m.status != "" {
		return statusStyle.Render(render.TruncateAndPad(m.status, width))
	}

	hints := "a:add i:insert d:del s:sort u:undo q:quit"
	return dimmedStyle.Render(render.Row(left, hints, width))
}

func main() {
	m, err := initialModel()
	if err != nil {
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
