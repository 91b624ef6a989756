// Package nav translates a selected heading into a cursor move against the
// editing surface. Requests are fire-and-forget: the outline never blocks on
// or verifies the move.
package nav

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/davrell/mdoutline/internal/outline"
)

// Mover is the external cursor/viewport interface. Lines and columns are
// 0-based. Neither call reports failure.
type Mover interface {
	MoveTo(line, col int)
	FocusEditor()
}

// Bridge converts heading selections into Mover requests.
type Bridge struct {
	mover Mover
}

func NewBridge(m Mover) *Bridge {
	return &Bridge{mover: m}
}

// Open requests a jump to the heading's source line. The 1-based heading
// line becomes a 0-based move target, column 0.
func (b *Bridge) Open(h outline.Heading) {
	b.mover.MoveTo(h.Line-1, 0)
	b.mover.FocusEditor()
}

// EditorMover implements Mover by spawning an external editor at the target
// line. Spawning already transfers focus, so FocusEditor does nothing extra.
type EditorMover struct {
	editor string
	path   string
}

// NewEditorMover picks the editor from config, $EDITOR, or a per-platform
// opener fallback.
func NewEditorMover(editor, path string) *EditorMover {
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	return &EditorMover{editor: editor, path: path}
}

func (e *EditorMover) MoveTo(line, col int) {
	cmd := e.command(line + 1) // editors count lines from 1
	if cmd == nil {
		return
	}
	_ = cmd.Start()
}

func (e *EditorMover) FocusEditor() {}

// OpenPlain opens the document without a line target (used by the ctrl+o
// shortcut).
func (e *EditorMover) OpenPlain() {
	var cmd *exec.Cmd
	if e.editor != "" {
		cmd = exec.Command(e.editor, e.path)
	} else {
		cmd = exec.Command("xdg-open", e.path)
	}
	_ = cmd.Start()
}

// command builds the editor invocation for a 1-based line.
func (e *EditorMover) command(line int) *exec.Cmd {
	if e.editor == "" {
		return exec.Command("xdg-open", e.path)
	}
	switch filepath.Base(e.editor) {
	case "code", "codium":
		return exec.Command(e.editor, "--goto", fmt.Sprintf("%s:%d:1", e.path, line))
	case "subl":
		return exec.Command(e.editor, fmt.Sprintf("%s:%d", e.path, line))
	default:
		// vi/vim/nvim/nano/emacs/micro all accept +N
		return exec.Command(e.editor, fmt.Sprintf("+%d", line), e.path)
	}
}
