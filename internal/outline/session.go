package outline

import "strings"

// ChildPosition classifies a heading's place within its sibling group, used
// for grouped rendering (tree guides).
type ChildPosition int

const (
	PositionNone ChildPosition = iota // no direct parent
	PositionFirst
	PositionMiddle
	PositionLast
	PositionOnly // both first and last child
)

// VisibleHeading is a heading annotated for display.
type VisibleHeading struct {
	Heading
	HasChildren bool
	Collapsed   bool
	Active      bool
	Position    ChildPosition
}

// Session owns the outline state for one displayed document: the extracted
// headings, per-heading collapse state, the active heading, and the search
// term. It is single-threaded by contract; every mutation runs to completion
// before the next is processed.
type Session struct {
	headings  []Heading
	collapse  *CollapseState
	active    Identity
	hasActive bool
	search    string
	readErr   error
}

// NewSession builds a session from document text.
func NewSession(text string) *Session {
	return &Session{
		headings: Extract(text),
		collapse: NewCollapseState(),
	}
}

// Reload re-extracts headings from the current document text. Collapse state
// is retained: identity is positional, so entries whose lines shifted simply
// stop matching. Idempotent and safe to call repeatedly.
func (s *Session) Reload(text string) {
	s.headings = Extract(text)
	s.readErr = nil
}

// SetReadError records that the document source failed; the outline becomes
// empty but the failure stays distinguishable from "no headings found".
func (s *Session) SetReadError(err error) {
	s.headings = nil
	s.readErr = err
}

// ReadError returns the recorded source failure, or nil.
func (s *Session) ReadError() error {
	return s.readErr
}

// Headings returns the full extracted sequence.
func (s *Session) Headings() []Heading {
	return s.headings
}

// SetSearch updates the filter term. Matching is a case-insensitive
// substring test on heading text.
func (s *Session) SetSearch(term string) {
	s.search = term
}

// Search returns the current filter term.
func (s *Session) Search() string {
	return s.search
}

// SetActive records the selected heading.
func (s *Session) SetActive(id Identity) {
	s.active = id
	s.hasActive = true
}

// ClearActive drops the selection.
func (s *Session) ClearActive() {
	s.hasActive = false
}

// Toggle flips collapse state for the heading at index i of the full
// sequence. Toggling a childless heading is a no-op.
func (s *Session) Toggle(i int) {
	if i < 0 || i >= len(s.headings) || !HasChildren(s.headings, i) {
		return
	}
	s.collapse.Toggle(s.headings[i].ID())
}

// ToggleVisible flips collapse state for a displayed heading. The
// HasChildren annotation was computed against the working (possibly
// filtered) sequence, which is exactly the legality check for toggling;
// a childless row is a no-op.
func (s *Session) ToggleVisible(v VisibleHeading) {
	if !v.HasChildren {
		return
	}
	s.collapse.Toggle(v.ID())
}

// CollapseAll collapses every heading that has children.
func (s *Session) CollapseAll() {
	s.collapse.CollapseAll(s.headings)
}

// ExpandAll restores full visibility and forgets all individual states.
func (s *Session) ExpandAll() {
	s.collapse.ExpandAll()
}

// Collapse exposes the underlying store.
func (s *Session) Collapse() *CollapseState {
	return s.collapse
}

// Visible computes the ordered display subset. With a non-empty search term
// the headings are first reduced to those whose text contains the term, and
// every hierarchy computation runs against that reduced sequence: a matching
// child can appear without its parent. A heading is hidden when its direct
// parent within the working sequence is collapsed; only the direct parent's
// state gates visibility.
func (s *Session) Visible() []VisibleHeading {
	working := s.headings
	if term := strings.TrimSpace(s.search); term != "" {
		needle := strings.ToLower(term)
		working = make([]Heading, 0, len(s.headings))
		for _, h := range s.headings {
			if strings.Contains(strings.ToLower(h.Text), needle) {
				working = append(working, h)
			}
		}
	}

	visible := make([]VisibleHeading, 0, len(working))
	for i, h := range working {
		if p := DirectParent(working, i); p >= 0 && s.collapse.IsCollapsed(working[p].ID()) {
			continue
		}
		visible = append(visible, VisibleHeading{
			Heading:     h,
			HasChildren: HasChildren(working, i),
			Collapsed:   s.collapse.IsCollapsed(h.ID()),
			Active:      s.hasActive && s.active == h.ID(),
			Position:    classify(working, i),
		})
	}
	return visible
}

// classify derives the child-position annotation for rendering.
func classify(headings []Heading, i int) ChildPosition {
	if DirectParent(headings, i) < 0 {
		return PositionNone
	}
	first := IsFirstChild(headings, i)
	last := IsLastChild(headings, i)
	switch {
	case first && last:
		return PositionOnly
	case first:
		return PositionFirst
	case last:
		return PositionLast
	default:
		return PositionMiddle
	}
}
