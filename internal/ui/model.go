package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/davrell/mdoutline/internal/config"
	"github.com/davrell/mdoutline/internal/document"
	"github.com/davrell/mdoutline/internal/nav"
	"github.com/davrell/mdoutline/internal/outline"
)

// ============================================================================
// Debounce
// ============================================================================

// filterMsg triggers re-filtering after the search debounce
type filterMsg struct{}

// debounceFilter returns a command that triggers filtering after a delay
func debounceFilter() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return filterMsg{}
	})
}

// docChangedMsg is sent by the watcher pump when the document was modified
// and the debounce window elapsed
type docChangedMsg struct {
	path string
}

// ============================================================================
// Model
// ============================================================================

// model is the Bubble Tea model for the outline view
type model struct {
	width     int
	height    int
	textInput textinput.Model
	quitting  bool

	path    string
	source  document.Source
	session *outline.Session
	docText string

	visible []outline.VisibleHeading
	cursor  int
	offset  int // viewport scroll offset

	selected  *outline.Heading // heading chosen with enter
	mover     *nav.EditorMover
	lastQuery string

	indent       int
	previewLines int
}

func newModel(src document.Source, session *outline.Session, text string, mover *nav.EditorMover) model {
	ti := textinput.New()
	ti.Placeholder = "Type to filter headings..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	m := model{
		textInput:    ti,
		path:         src.Path(),
		source:       src,
		session:      session,
		docText:      text,
		mover:        mover,
		indent:       maxInt(config.GetIndent(), 1),
		previewLines: maxInt(config.GetPreviewLines(), 3),
	}
	m.refresh()
	return m
}

// Init implements tea.Model
func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 4
		return m, nil

	case docChangedMsg:
		// Notifications can arrive for a handle other than the displayed
		// document; those are ignored.
		if msg.path != m.path {
			return m, nil
		}
		m.reload()
		return m, nil

	case filterMsg:
		m.session.SetSearch(m.textInput.Value())
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	prevQuery := m.textInput.Value()
	var tiCmd tea.Cmd
	m.textInput, tiCmd = m.textInput.Update(msg)
	cmds = append(cmds, tiCmd)

	// Only trigger debounced filter if query changed
	if m.textInput.Value() != prevQuery {
		cmds = append(cmds, debounceFilter())
	}

	return m, tea.Batch(cmds...)
}

// handleKey processes keyboard input; handled reports whether the key was
// consumed and must not reach the text input
func (m *model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return tea.Quit, true
	case "esc":
		// First esc clears an active filter, second one exits
		if m.textInput.Value() != "" {
			m.textInput.SetValue("")
			m.session.SetSearch("")
			m.refresh()
			return nil, true
		}
		m.quitting = true
		return tea.Quit, true
	case "enter":
		if m.cursor < len(m.visible) {
			h := m.visible[m.cursor].Heading
			m.session.SetActive(h.ID())
			m.selected = &h
			return tea.Quit, true
		}
		return nil, true
	case "tab":
		if m.cursor < len(m.visible) {
			m.session.ToggleVisible(m.visible[m.cursor])
			m.refresh()
		}
		return nil, true
	case "ctrl+k":
		m.session.CollapseAll()
		m.refresh()
		return nil, true
	case "ctrl+l":
		m.session.ExpandAll()
		m.refresh()
		return nil, true
	case "ctrl+o":
		m.mover.OpenPlain()
		return nil, true
	case "up", "ctrl+p":
		m.moveCursor(-1)
		return nil, true
	case "down", "ctrl+n":
		m.moveCursor(1)
		return nil, true
	case "pgup":
		m.moveCursor(-10)
		return nil, true
	case "pgdown":
		m.moveCursor(10)
		return nil, true
	case "home", "ctrl+a":
		m.cursor = 0
		m.adjustOffset()
		return nil, true
	case "end", "ctrl+e":
		m.cursor = max(0, len(m.visible)-1)
		m.adjustOffset()
		return nil, true
	}
	return nil, false
}

// reload re-reads the document and re-extracts headings. Collapse state
// survives; stale identities simply stop matching.
func (m *model) reload() {
	text, err := m.source.ReadText()
	if err != nil {
		m.session.SetReadError(err)
		m.docText = ""
	} else {
		m.session.Reload(text)
		m.docText = text
	}
	m.refresh()
}

// refresh recomputes the visible subset from current session state
func (m *model) refresh() {
	m.visible = m.session.Visible()
	m.cursor = clamp(m.cursor, 0, max(0, len(m.visible)-1))
	m.adjustOffset()
}

// moveCursor moves the cursor by delta, clamping to valid range
func (m *model) moveCursor(delta int) {
	m.cursor += delta
	m.cursor = clamp(m.cursor, 0, max(0, len(m.visible)-1))
	m.adjustOffset()
}

// adjustOffset ensures cursor is visible within viewport
func (m *model) adjustOffset() {
	viewHeight := maxInt(m.height-m.previewLines-5, 3)
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+viewHeight {
		m.offset = m.cursor - viewHeight + 1
	}
	maxOffset := max(0, len(m.visible)-viewHeight)
	m.offset = clamp(m.offset, 0, maxOffset)
}

// ============================================================================
// Run TUI
// ============================================================================

// Options wires the outline view to its collaborators.
type Options struct {
	Source  document.Source
	Watcher *document.Watcher // nil disables live reload
	Query   string            // initial search term
}

// Run launches the Bubble Tea interface and, when the user picked a heading,
// fires the navigation request after the terminal is released.
func Run(opts Options) error {
	text, readErr := opts.Source.ReadText()

	session := outline.NewSession(text)
	if readErr != nil {
		session.SetReadError(readErr)
	}

	mover := nav.NewEditorMover(config.GetEditor(), opts.Source.Path())
	m := newModel(opts.Source, session, text, mover)

	if opts.Query != "" {
		m.textInput.SetValue(opts.Query)
		session.SetSearch(opts.Query)
		m.refresh()
	}

	RefreshStyles()
	p := tea.NewProgram(m, tea.WithAltScreen())

	if opts.Watcher != nil {
		go func() {
			for ev := range opts.Watcher.Events() {
				p.Send(docChangedMsg{path: ev.Path})
			}
		}()
	}

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running outline view: %w", err)
	}

	result := finalModel.(model)
	if result.selected != nil {
		// Fire-and-forget: the move is not verified.
		nav.NewBridge(mover).Open(*result.selected)
	}
	return nil
}

// ============================================================================
// Helpers
// ============================================================================

// clamp restricts v to the range [minV, maxV]
func clamp(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// maxInt returns the larger of a and b
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// countLines counts the number of lines in a string
func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// scrollWindow calculates the visible range for a scrollable list
func scrollWindow(cursor, total, height int, offset *int) (start, end int) {
	if cursor < *offset {
		*offset = cursor
	}
	if cursor >= *offset+height {
		*offset = cursor - height + 1
	}
	maxOffset := max(0, total-height)
	*offset = clamp(*offset, 0, maxOffset)

	start = *offset
	end = min(start+height, total)
	return
}

// truncateString truncates a string to maxLen with ellipsis
func truncateString(s string, maxLen int) string {
	if maxLen <= 3 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
