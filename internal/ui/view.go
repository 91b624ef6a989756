package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/davrell/mdoutline/internal/outline"
)

// View implements tea.Model
func (m model) View() string {
	if m.quitting {
		return ""
	}

	width := maxInt(m.width, 80)
	height := maxInt(m.height, 24)

	preview := m.renderPreview(width)
	previewLines := countLines(preview)

	inputLines := 3 // divider + info + input
	listHeight := maxInt(height-previewLines-inputLines, 3)
	list := m.renderList(listHeight)
	listLines := countLines(list)

	padding := maxInt(height-previewLines-listLines-inputLines, 0)

	var b strings.Builder
	b.WriteString(preview)
	b.WriteString(list)
	b.WriteString(strings.Repeat("\n", padding))
	b.WriteString(m.renderInput(width))

	return b.String()
}

// renderPreview renders the section body of the heading under the cursor
func (m model) renderPreview(width int) string {
	var b strings.Builder
	lines := 0

	if err := m.session.ReadError(); err != nil {
		b.WriteString(styles.ErrBan.Render("document read failed"))
		b.WriteString("\n")
		b.WriteString(styles.Dim.Render(truncateString(err.Error(), width-2)))
		b.WriteString("\n")
		lines = 2
	} else if m.cursor < len(m.visible) {
		h := m.visible[m.cursor].Heading
		body := m.sectionBody(h)
		rendered := renderMarkdown(body, width-2)
		for _, line := range strings.Split(rendered, "\n") {
			if lines >= m.previewLines {
				break
			}
			b.WriteString(truncateString(line, width))
			b.WriteString("\n")
			lines++
		}
	}

	for lines < m.previewLines {
		b.WriteString("\n")
		lines++
	}

	b.WriteString(styles.Divider.Render(strings.Repeat("─", width)))
	b.WriteString("\n")

	return b.String()
}

// sectionBody returns the document text from the heading line up to the next
// heading in the full sequence
func (m model) sectionBody(h outline.Heading) string {
	docLines := strings.Split(m.docText, "\n")
	if h.Line < 1 || h.Line > len(docLines) {
		return ""
	}

	end := len(docLines)
	for _, next := range m.session.Headings() {
		if next.Line > h.Line {
			end = next.Line - 1
			break
		}
	}

	// A section can run long; the preview only shows a handful of rendered
	// lines, so cap the raw input early.
	if end > h.Line-1+m.previewLines*4 {
		end = h.Line - 1 + m.previewLines*4
	}
	return strings.Join(docLines[h.Line-1:end], "\n")
}

// renderMarkdown renders a markdown fragment for the preview pane, falling
// back to the raw text when rendering fails
func renderMarkdown(body string, width int) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(maxInt(width, 20)),
	)
	if err != nil {
		return body
	}
	out, err := r.Render(body)
	if err != nil {
		return body
	}
	return strings.Trim(out, "\n")
}

// renderList renders the scrollable outline
func (m *model) renderList(maxHeight int) string {
	if len(m.visible) == 0 {
		if m.session.ReadError() != nil {
			return ""
		}
		if len(m.session.Headings()) == 0 {
			return styles.Dim.Render("  no headings found") + "\n"
		}
		return styles.Dim.Render("  no headings match the filter") + "\n"
	}

	start, end := scrollWindow(m.cursor, len(m.visible), maxHeight, &m.offset)

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(m.visible[i], i == m.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

// renderRow renders a single outline row with tree guides and fold markers
func (m model) renderRow(v outline.VisibleHeading, selected bool) string {
	indent := strings.Repeat(" ", (v.Level-1)*m.indent)

	guide := ""
	switch v.Position {
	case outline.PositionFirst, outline.PositionMiddle:
		guide = "├─ "
	case outline.PositionLast, outline.PositionOnly:
		guide = "└─ "
	}

	marker := "  "
	if v.HasChildren {
		if v.Collapsed {
			marker = "▸ "
		} else {
			marker = "▾ "
		}
	}

	hStyle := styles.Heading
	if v.Active {
		hStyle = styles.Active
	}
	if selected {
		hStyle = styles.WithSelection(hStyle)
	}

	line := styles.Guide.Render(indent+guide) + styles.Dim.Render(marker) + hStyle.Render(v.Text)
	if selected {
		return styles.Cursor.Render("▶ ") + line
	}
	return "  " + line
}

// renderInput renders the footer and search input
func (m model) renderInput(width int) string {
	var b strings.Builder
	b.WriteString(styles.Divider.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(styles.Dim.Render(fmt.Sprintf("  %d/%d", len(m.visible), len(m.session.Headings()))))
	b.WriteString(" • ")
	b.WriteString(styles.Dim.Render("Tab fold"))
	b.WriteString(" • ")
	b.WriteString(styles.Dim.Render("Ctrl+K/L fold/unfold all"))
	b.WriteString(" • ")
	b.WriteString(styles.Dim.Render("Enter jump"))
	b.WriteString(" • ")
	b.WriteString(styles.Dim.Render("ESC exit"))
	b.WriteString("\n")
	b.WriteString(m.textInput.View())
	return b.String()
}
