package editor

import (
	"os"
	"path/filepath"

	"github.com/iw2rmb/sable/buffer"
)

// Message is a status line message produced by command execution.
type Message struct {
	Text string
	Err  bool
}

// Editor is the aggregate editing state: one document, one selection, the
// active mode, and the viewport scroll. It is owned exclusively by the event
// loop; every input event is applied as one synchronous update.
type Editor struct {
	pwd      string
	path     string
	modified bool
	text     *buffer.Buffer

	anchor int
	head   int

	// Cached display column for vertical movement. Invalidated by every
	// horizontal move or edit, recomputed lazily on the next vertical move.
	desiredCol    int
	hasDesiredCol bool

	scroll int

	mode Mode

	message  *Message
	exitCode *int
}

// New returns an empty scratch editor.
func New() *Editor {
	pwd, _ := os.Getwd()
	return &Editor{
		pwd:  pwd,
		text: buffer.New(""),
		mode: NormalMode{},
	}
}

// Open reads path into a new editor. A path that does not exist yet is
// accepted: the buffer starts empty and the path is kept for a later save.
func Open(path string) (*Editor, error) {
	e := New()

	_, err := os.Stat(path)
	switch {
	case err == nil:
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(abs)
		if err != nil {
			return nil, err
		}
		e.text = buffer.New(string(data))
		e.path = abs
	case os.IsNotExist(err):
		e.path = path
	default:
		return nil, err
	}
	return e, nil
}

// Save writes the full buffer to the associated path. With no path it is a
// silent no-op. The modified flag is cleared only when the write succeeds.
func (e *Editor) Save() error {
	if e.path == "" {
		return nil
	}
	f, err := os.Create(e.path)
	if err != nil {
		return err
	}
	if _, err := e.text.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	e.modified = false
	return nil
}

func (e *Editor) Text() *buffer.Buffer { return e.text }
func (e *Editor) Anchor() int          { return e.anchor }
func (e *Editor) Head() int            { return e.head }
func (e *Editor) Mode() Mode           { return e.mode }
func (e *Editor) Modified() bool       { return e.modified }
func (e *Editor) Path() string         { return e.path }
func (e *Editor) Scroll() int          { return e.scroll }

// DisplayPath returns the path rendered relative to the working directory
// when that is shorter, or "" for a scratch buffer.
func (e *Editor) DisplayPath() string {
	if e.path == "" {
		return ""
	}
	if e.pwd != "" {
		if rel, err := filepath.Rel(e.pwd, e.path); err == nil && len(rel) < len(e.path) {
			return rel
		}
	}
	return e.path
}

// Message returns the pending status message, if any.
func (e *Editor) Message() (Message, bool) {
	if e.message == nil {
		return Message{}, false
	}
	return *e.message, true
}

// ClearMessage drops the status message. Called at the start of every input
// event, so a message survives exactly until the next key or click.
func (e *Editor) ClearMessage() { e.message = nil }

// ExitCode returns the pending exit signal. ok is false while the editor
// should keep running.
func (e *Editor) ExitCode() (int, bool) {
	if e.exitCode == nil {
		return 0, false
	}
	return *e.exitCode, true
}

// ScrollUp moves the viewport up by distance lines, stopping at the top.
func (e *Editor) ScrollUp(distance int) {
	e.scroll -= distance
	if e.scroll < 0 {
		e.scroll = 0
	}
}

// ScrollDown moves the viewport down by distance lines, stopping at the last
// line.
func (e *Editor) ScrollDown(distance int) {
	max := e.text.LineCount() - 1
	e.scroll += distance
	if e.scroll > max {
		e.scroll = max
	}
}

func (e *Editor) setStatus(text string) { e.message = &Message{Text: text} }
func (e *Editor) setError(text string)  { e.message = &Message{Text: text, Err: true} }

func (e *Editor) exit(code int) { e.exitCode = &code }
