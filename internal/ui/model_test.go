package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davrell/mdoutline/internal/nav"
	"github.com/davrell/mdoutline/internal/outline"
)

// stubSource is an in-memory document source
type stubSource struct {
	path string
	text string
	err  error
}

func (s *stubSource) Path() string { return s.path }

func (s *stubSource) ReadText() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func testModel(t *testing.T, text string) (model, *stubSource) {
	t.Helper()
	src := &stubSource{path: "/tmp/doc.md", text: text}
	session := outline.NewSession(text)
	m := newModel(src, session, text, nav.NewEditorMover("true", src.path))
	return m, src
}

func visibleOf(m tea.Model) []outline.VisibleHeading {
	return m.(model).visible
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestTabTogglesFoldUnderCursor(t *testing.T) {
	m, _ := testModel(t, "# A\n## B\n# C\n")
	require.Len(t, m.visible, 3)

	next, _ := m.Update(keyMsg(tea.KeyTab))
	assert.Len(t, visibleOf(next), 2)

	next, _ = next.Update(keyMsg(tea.KeyTab))
	assert.Len(t, visibleOf(next), 3)
}

func TestTabOnLeafIsNoop(t *testing.T) {
	m, _ := testModel(t, "# A\n## B\n# C\n")
	m.cursor = 1 // B has no children

	next, _ := m.Update(keyMsg(tea.KeyTab))
	assert.Len(t, visibleOf(next), 3)
}

func TestCollapseAllExpandAllKeys(t *testing.T) {
	m, _ := testModel(t, "# A\n## B\n### C\n# D\n")

	next, _ := m.Update(keyMsg(tea.KeyCtrlK))
	assert.Len(t, visibleOf(next), 2) // A and D

	next, _ = next.Update(keyMsg(tea.KeyCtrlL))
	assert.Len(t, visibleOf(next), 4)
}

func TestEnterSelectsHeading(t *testing.T) {
	m, _ := testModel(t, "# A\n## B\n")
	m.cursor = 1

	next, cmd := m.Update(keyMsg(tea.KeyEnter))
	require.NotNil(t, cmd)

	result := next.(model)
	require.NotNil(t, result.selected)
	assert.Equal(t, 2, result.selected.Line)
	assert.Equal(t, outline.Identity{Level: 2, Line: 2}, result.selected.ID())
}

func TestDocChangedForForeignPathIgnored(t *testing.T) {
	m, src := testModel(t, "# A\n")
	src.text = "# A\n# B\n"

	next, _ := m.Update(docChangedMsg{path: "/tmp/other.md"})
	assert.Len(t, visibleOf(next), 1)

	next, _ = next.Update(docChangedMsg{path: "/tmp/doc.md"})
	assert.Len(t, visibleOf(next), 2)
}

func TestDocChangedKeepsCollapseState(t *testing.T) {
	m, src := testModel(t, "# A\n## B\n# C\n")

	next, _ := m.Update(keyMsg(tea.KeyTab))
	require.Len(t, visibleOf(next), 2)

	// Same shape on disk: the collapsed section stays collapsed.
	next, _ = next.Update(docChangedMsg{path: src.path})
	assert.Len(t, visibleOf(next), 2)
}

func TestDocChangedReadFailure(t *testing.T) {
	m, src := testModel(t, "# A\n")
	src.err = errors.New("gone")

	next, _ := m.Update(docChangedMsg{path: src.path})
	result := next.(model)
	assert.Error(t, result.session.ReadError())
	assert.Empty(t, result.visible)
}

func TestFilterMsgAppliesSearch(t *testing.T) {
	m, _ := testModel(t, "# Alpha\n## Beta\n# Gamma\n")
	m.textInput.SetValue("beta")

	next, _ := m.Update(filterMsg{})
	vs := visibleOf(next)
	require.Len(t, vs, 1)
	assert.Equal(t, "Beta", vs[0].Text)
}

func TestEscClearsFilterBeforeQuitting(t *testing.T) {
	m, _ := testModel(t, "# Alpha\n# Beta\n")
	m.textInput.SetValue("alpha")

	next, _ := m.Update(filterMsg{})
	require.Len(t, visibleOf(next), 1)

	next, cmd := next.Update(keyMsg(tea.KeyEsc))
	assert.Nil(t, cmd)
	assert.Len(t, visibleOf(next), 2)

	_, cmd = next.Update(keyMsg(tea.KeyEsc))
	assert.NotNil(t, cmd)
}
