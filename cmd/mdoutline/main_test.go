package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davrell/mdoutline/internal/outline"
)

func TestFormatTree(t *testing.T) {
	headings := []outline.Heading{
		{Level: 1, Text: "Intro", Line: 1},
		{Level: 2, Text: "Setup", Line: 4},
		{Level: 2, Text: "Usage", Line: 9},
		{Level: 3, Text: "Flags", Line: 11},
		{Level: 1, Text: "Appendix", Line: 20},
	}

	// last-child means "not followed by a deeper heading", so Setup gets the
	// closing glyph while Usage, whose subsection follows, gets the tee.
	want := "Intro  (line 1)\n" +
		"  └─ Setup  (line 4)\n" +
		"  ├─ Usage  (line 9)\n" +
		"    └─ Flags  (line 11)\n" +
		"Appendix  (line 20)\n"

	assert.Equal(t, want, formatTree(headings, 2))
}

func TestFormatTreeOrphanHasNoGuide(t *testing.T) {
	// A level-3 heading with no level-2 parent renders without a guide.
	headings := []outline.Heading{
		{Level: 1, Text: "Top", Line: 1},
		{Level: 3, Text: "Orphan", Line: 2},
	}

	want := "Top  (line 1)\n" +
		"    Orphan  (line 2)\n"

	assert.Equal(t, want, formatTree(headings, 2))
}
