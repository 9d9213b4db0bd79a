package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the bindings for every mode. Keys unbound in the active
// mode are ignored without error.
type KeyMap struct {
	// Normal mode.
	Left, Down, Up, Right                         key.Binding
	ExtendLeft, ExtendDown, ExtendUp, ExtendRight key.Binding
	LineStart, LineEnd                            key.Binding
	Reduce, Flip                                  key.Binding
	Delete                                        key.Binding
	Insert, Change                                key.Binding
	Goto, Command                                 key.Binding
	Quit                                          key.Binding

	// Insert and Command modes.
	Cancel, Confirm key.Binding

	// Command mode line editing.
	CmdLeft, CmdRight, CmdStart, CmdEnd   key.Binding
	CmdDeleteBefore, CmdDeleteAfter       key.Binding
	CmdKillToStart, CmdKillToEnd          key.Binding
	InsertDeleteBefore, InsertDeleteAfter key.Binding
	InsertNewline                         key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "move left")),
		Down:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "move down")),
		Up:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "move up")),
		Right: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "move right")),

		ExtendLeft:  key.NewBinding(key.WithKeys("H", "shift+left"), key.WithHelp("H", "extend left")),
		ExtendDown:  key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "extend down")),
		ExtendUp:    key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "extend up")),
		ExtendRight: key.NewBinding(key.WithKeys("L", "shift+right"), key.WithHelp("L", "extend right")),

		LineStart: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		LineEnd:   key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),

		Reduce: key.NewBinding(key.WithKeys(";"), key.WithHelp(";", "reduce selection")),
		Flip:   key.NewBinding(key.WithKeys("alt+;"), key.WithHelp("alt+;", "flip selection")),

		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete selection")),
		Insert: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert")),
		Change: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "change selection")),

		Goto:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "goto")),
		Command: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to normal")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run command")),

		CmdLeft:         key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		CmdRight:        key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),
		CmdStart:        key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "start")),
		CmdEnd:          key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "end")),
		CmdDeleteBefore: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		CmdDeleteAfter:  key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete right")),
		CmdKillToStart:  key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "kill to start")),
		CmdKillToEnd:    key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "kill to end")),

		InsertDeleteBefore: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		InsertDeleteAfter:  key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		InsertNewline:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
	}
}
