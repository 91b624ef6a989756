package outline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visibleTexts(vs []VisibleHeading) []string {
	texts := make([]string, len(vs))
	for i, v := range vs {
		texts[i] = v.Text
	}
	return texts
}

func TestCollapseHidesChildren(t *testing.T) {
	s := NewSession("# A\n## B\n# C\n")
	require.Len(t, s.Headings(), 3)

	s.Toggle(0)
	got := visibleTexts(s.Visible())
	assert.Equal(t, []string{"A", "C"}, got)
}

func TestToggleChildlessIsNoop(t *testing.T) {
	s := NewSession("# A\n## B\n# C\n")
	s.Toggle(1)
	s.Toggle(2)
	s.Toggle(99)
	s.Toggle(-1)
	assert.Equal(t, []string{"A", "B", "C"}, visibleTexts(s.Visible()))
}

func TestToggleTwiceRestores(t *testing.T) {
	s := NewSession("# A\n## B\n# C\n")
	s.Toggle(0)
	s.Toggle(0)
	assert.Equal(t, []string{"A", "B", "C"}, visibleTexts(s.Visible()))
}

func TestCollapseAllExpandAllRoundTrip(t *testing.T) {
	s := NewSession("# A\n## B\n### C\n## D\n# E\n## F\n")
	full := visibleTexts(s.Visible())

	s.CollapseAll()
	assert.True(t, s.Collapse().AllCollapsed())
	collapsed := visibleTexts(s.Visible())
	assert.Equal(t, []string{"A", "E"}, collapsed)

	s.ExpandAll()
	assert.False(t, s.Collapse().AllCollapsed())
	assert.Equal(t, full, visibleTexts(s.Visible()))
	assert.False(t, s.Collapse().IsCollapsed(Identity{Level: 1, Line: 1}))
}

func TestSingleParentCheckSemantics(t *testing.T) {
	// Collapsing only the top heading hides its direct children; a deeper
	// descendant whose own parent remains expanded stays visible. Hiding the
	// whole subtree requires every intermediate ancestor to be collapsed.
	s := NewSession("# A\n## B\n### C\n")
	s.Toggle(0)
	assert.Equal(t, []string{"A", "C"}, visibleTexts(s.Visible()))

	s.Toggle(1)
	assert.Equal(t, []string{"A"}, visibleTexts(s.Visible()))
}

func TestSearchFiltersFlatList(t *testing.T) {
	s := NewSession("# Intro\n## Setup\n### Deploy target\n# Appendix\n")
	s.SetSearch("deploy")

	vs := s.Visible()
	require.Len(t, vs, 1)
	// The match surfaces without its ancestors; no fabricated parents.
	assert.Equal(t, "Deploy target", vs[0].Text)
	assert.Equal(t, PositionNone, vs[0].Position)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	s := NewSession("# Alpha\n# beta\n")
	s.SetSearch("ALPHA")
	assert.Equal(t, []string{"Alpha"}, visibleTexts(s.Visible()))
}

func TestSearchHierarchyComputedOnFilteredSequence(t *testing.T) {
	// Both headings match, and within the reduced sequence the level-2
	// heading still sits under the level-1 one, so collapsing the survivor
	// parent hides it.
	s := NewSession("# task list\n## task detail\n# other\n")
	s.SetSearch("task")
	assert.Equal(t, []string{"task list", "task detail"}, visibleTexts(s.Visible()))

	s.Toggle(0)
	assert.Equal(t, []string{"task list"}, visibleTexts(s.Visible()))
}

func TestVisibleAnnotations(t *testing.T) {
	s := NewSession("# A\n## B\n## C\n")
	s.SetActive(Identity{Level: 2, Line: 2})
	s.Toggle(0)
	s.ExpandAll()

	vs := s.Visible()
	require.Len(t, vs, 3)
	assert.True(t, vs[0].HasChildren)
	assert.False(t, vs[0].Collapsed)
	assert.False(t, vs[0].Active)
	assert.True(t, vs[1].Active)
	assert.Equal(t, PositionOnly, vs[1].Position)
	assert.Equal(t, PositionLast, vs[2].Position)
}

func TestExtractCollapseExpandRoundTrip(t *testing.T) {
	text := "# One\n## Two\n### Three\n## Four\n# Five\n"
	s := NewSession(text)
	original := visibleTexts(s.Visible())

	s.CollapseAll()
	s.ExpandAll()
	assert.Equal(t, original, visibleTexts(s.Visible()))
}

func TestReloadKeepsCollapseState(t *testing.T) {
	s := NewSession("# A\n## B\n# C\n")
	s.Toggle(0)

	// Same shape after reload: the identity still matches, so the section
	// stays collapsed.
	s.Reload("# A\n## B\n# C\n")
	assert.Equal(t, []string{"A", "C"}, visibleTexts(s.Visible()))

	// Lines shifted: the stale identity no longer matches anything and the
	// collapse silently stops applying.
	s.Reload("intro\n# A\n## B\n# C\n")
	assert.Equal(t, []string{"A", "B", "C"}, visibleTexts(s.Visible()))
}

func TestReadErrorDistinctFromEmpty(t *testing.T) {
	s := NewSession("")
	assert.Empty(t, s.Visible())
	assert.NoError(t, s.ReadError())

	readErr := errors.New("document gone")
	s.SetReadError(readErr)
	assert.Empty(t, s.Visible())
	assert.ErrorIs(t, s.ReadError(), readErr)

	s.Reload("# Back\n")
	assert.NoError(t, s.ReadError())
	assert.Equal(t, []string{"Back"}, visibleTexts(s.Visible()))
}
