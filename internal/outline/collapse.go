package outline

// CollapseState tracks which headings are collapsed, keyed by Identity.
// A missing key means expanded. The store belongs to one outline session
// and is never persisted.
type CollapseState struct {
	collapsed    map[Identity]bool
	allCollapsed bool
}

// NewCollapseState returns an empty store with everything expanded.
func NewCollapseState() *CollapseState {
	return &CollapseState{
		collapsed: make(map[Identity]bool),
	}
}

// Toggle flips the collapsed flag for id. The caller must only invoke this
// for headings that have children; calling it for a childless heading is
// harmless but the entry will never gate anything.
func (c *CollapseState) Toggle(id Identity) {
	c.collapsed[id] = !c.collapsed[id]
}

// IsCollapsed returns the stored flag for id, defaulting to expanded.
func (c *CollapseState) IsCollapsed(id Identity) bool {
	return c.collapsed[id]
}

// CollapseAll marks every heading that has children as collapsed and raises
// the global flag.
func (c *CollapseState) CollapseAll(headings []Heading) {
	c.allCollapsed = true
	for i, h := range headings {
		if HasChildren(headings, i) {
			c.collapsed[h.ID()] = true
		}
	}
}

// ExpandAll clears the entire mapping and lowers the global flag. Individual
// collapse choices are forgotten, including those for currently hidden
// descendants.
func (c *CollapseState) ExpandAll() {
	c.allCollapsed = false
	c.collapsed = make(map[Identity]bool)
}

// AllCollapsed reports whether the last global operation was a collapse-all.
func (c *CollapseState) AllCollapsed() bool {
	return c.allCollapsed
}
