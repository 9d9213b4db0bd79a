package editor

// Mode is the active input mode. Mode-specific state travels with the mode
// value itself, so a CommandLine exists exactly while Command mode is active.
type Mode interface {
	Name() string
	mode()
}

// NormalMode is the initial and default mode.
type NormalMode struct{}

// GotoMode is transient: the next key is interpreted and the editor returns
// to Normal, whether or not the key was recognized.
type GotoMode struct{}

// InsertMode inserts typed text at the head.
type InsertMode struct{}

// CommandMode composes a ":" command in its own line editor.
type CommandMode struct {
	Line *CommandLine
}

func (NormalMode) Name() string  { return "NORMAL" }
func (GotoMode) Name() string    { return "GOTO" }
func (InsertMode) Name() string  { return "INSERT" }
func (CommandMode) Name() string { return "COMMAND" }

func (NormalMode) mode()  {}
func (GotoMode) mode()    {}
func (InsertMode) mode()  {}
func (CommandMode) mode() {}
