package outline

import (
	"bufio"
	"regexp"
	"strings"
)

// Heading is a single detected heading. Values are immutable once emitted;
// tree relationships are derived from slice order and Level, never stored.
type Heading struct {
	Level int    // count of leading '#' characters, >= 1
	Text  string // trimmed heading text, never empty
	Line  int    // 1-based source line
}

// Identity keys collapse state. Text is deliberately excluded: two headings
// may share text, but never a line.
type Identity struct {
	Level int
	Line  int
}

// ID returns the heading's collapse-state key.
func (h Heading) ID() Identity {
	return Identity{Level: h.Level, Line: h.Line}
}

var headingRegex = regexp.MustCompile(`(\s*)(#+)\s+(.+)`)

// Extract scans document text top to bottom and returns the ordered heading
// sequence. A line whose trimmed content starts with a triple backtick
// toggles fence state and is never itself a heading candidate; inside a
// fence no line is examined. An unterminated fence suppresses detection for
// the remainder of the document.
func Extract(text string) []Heading {
	var headings []Heading
	inFence := false
	line := 0

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line++
		raw := scanner.Text()

		if strings.HasPrefix(strings.TrimSpace(raw), "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		if h, ok := matchHeading(raw, line); ok {
			headings = append(headings, h)
		}
	}

	return headings
}

// matchHeading applies the heading pattern to a single line.
func matchHeading(raw string, line int) (Heading, bool) {
	m := headingRegex.FindStringSubmatchIndex(raw)
	if m == nil {
		return Heading{}, false
	}

	// Indented markers don't count: headings inside block quotes or list
	// items are ignored.
	if m[3] > m[2] {
		return Heading{}, false
	}

	// An odd number of backticks before the marker means the '#' sits
	// inside an inline code span.
	if strings.Count(raw[:m[4]], "`")%2 == 1 {
		return Heading{}, false
	}

	text := strings.TrimSpace(raw[m[6]:m[7]])
	if text == "" {
		return Heading{}, false
	}

	return Heading{
		Level: m[5] - m[4],
		Text:  text,
		Line:  line,
	}, true
}
