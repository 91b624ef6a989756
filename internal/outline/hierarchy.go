package outline

// Hierarchy queries are stateless and recomputed on demand from the flat
// ordered heading slice. Keeping no tree means nothing to invalidate when
// the document changes; the cost is a backward scan per parent lookup.

// HasChildren reports whether the heading at i has at least one child.
// Only the immediately following heading is inspected: a heading followed
// by one two levels deeper still counts as having children even though the
// intervening level is absent.
func HasChildren(headings []Heading, i int) bool {
	return i >= 0 && i < len(headings)-1 && headings[i+1].Level > headings[i].Level
}

// DirectParent returns the index of the nearest preceding heading exactly
// one level shallower than headings[i], or -1 when none exists. The scan
// aborts as soon as a heading shallower than level-1 appears: a skipped
// ancestor level means there is no direct parent at the expected depth.
func DirectParent(headings []Heading, i int) int {
	if i <= 0 || i >= len(headings) {
		return -1
	}
	want := headings[i].Level - 1
	for j := i - 1; j >= 0; j-- {
		if headings[j].Level == want {
			return j
		}
		if headings[j].Level < want {
			return -1
		}
	}
	return -1
}

// IsFirstChild reports whether headings[i] directly follows its parent.
func IsFirstChild(headings []Heading, i int) bool {
	return i > 0 && i < len(headings) && headings[i-1].Level == headings[i].Level-1
}

// IsLastChild reports whether headings[i] is the last heading of its group:
// either the final heading, or followed by one at the same or a shallower
// level.
func IsLastChild(headings []Heading, i int) bool {
	if i < 0 || i >= len(headings) {
		return false
	}
	return i == len(headings)-1 || headings[i+1].Level <= headings[i].Level
}

// IsMiddleChild reports whether headings[i] has a direct parent and is
// neither the first nor the last child of its group.
func IsMiddleChild(headings []Heading, i int) bool {
	return DirectParent(headings, i) >= 0 &&
		!IsFirstChild(headings, i) &&
		!IsLastChild(headings, i)
}
