package editor

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(text string) Model {
	m := NewModel(newTestEditor(text))
	out, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return out.(Model)
}

func (m Model) press(keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		case "delete":
			msg = tea.KeyMsg{Type: tea.KeyDelete}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		out, _ := m.Update(msg)
		m = out.(Model)
	}
	return m
}

func (m Model) typeString(s string) Model {
	for _, r := range s {
		if r == ' ' {
			m = m.press("space")
			continue
		}
		m = m.press(string(r))
	}
	return m
}

func TestDispatch_NormalMovement(t *testing.T) {
	m := newTestModel("ab\ncde")

	m = m.press("l", "j")
	e := m.Editor()
	if e.Head() != 4 {
		t.Fatalf("head: got %d, want 4", e.Head())
	}
	if e.Anchor() != e.Head() {
		t.Fatalf("movement must collapse the selection")
	}
}

func TestDispatch_NormalExtend(t *testing.T) {
	m := newTestModel("abcd")

	m = m.press("L", "L")
	e := m.Editor()
	if e.Anchor() != 0 || e.Head() != 2 {
		t.Fatalf("selection: got (%d, %d), want (0, 2)", e.Anchor(), e.Head())
	}
}

func TestDispatch_InsertRoundTrip(t *testing.T) {
	m := newTestModel("")

	m = m.press("i").typeString("hi there").press("enter", "x", "esc")
	e := m.Editor()
	if got, want := e.Text().String(), "hi there\nx"; got != want {
		t.Fatalf("content: got %q, want %q", got, want)
	}
	if _, ok := e.Mode().(NormalMode); !ok {
		t.Fatalf("mode after esc: got %T, want NormalMode", e.Mode())
	}
	if !e.Modified() {
		t.Fatalf("typing must mark the buffer modified")
	}
}

func TestDispatch_ChangeDeletesSelectionFirst(t *testing.T) {
	m := newTestModel("abcd")

	m = m.press("L", "L", "c") // select "ab", then change
	e := m.Editor()
	if got, want := e.Text().String(), "cd"; got != want {
		t.Fatalf("content: got %q, want %q", got, want)
	}
	if _, ok := e.Mode().(InsertMode); !ok {
		t.Fatalf("mode: got %T, want InsertMode", e.Mode())
	}
}

func TestDispatch_InsertBackspaceAndDelete(t *testing.T) {
	m := newTestModel("ab")

	m = m.press("i", "backspace") // head at 0: no-op
	if got := m.Editor().Text().String(); got != "ab" {
		t.Fatalf("backspace at start: got %q, want %q", got, "ab")
	}

	m = m.press("delete")
	if got := m.Editor().Text().String(); got != "b" {
		t.Fatalf("after delete: got %q, want %q", got, "b")
	}
}

func TestDispatch_GotoIsOneShot(t *testing.T) {
	m := newTestModel("ab\ncd")
	m = m.press("j") // head on line 1

	m = m.press("g", "g")
	e := m.Editor()
	if _, ok := e.Mode().(NormalMode); !ok {
		t.Fatalf("mode: got %T, want NormalMode", e.Mode())
	}
	if e.Anchor() != 0 || e.Head() != 1 {
		t.Fatalf("goto start: got (%d, %d), want caret on the first grapheme", e.Anchor(), e.Head())
	}
}

func TestDispatch_GotoUnknownKey(t *testing.T) {
	m := newTestModel("ab")

	m = m.press("g", "z")
	e := m.Editor()
	if _, ok := e.Mode().(NormalMode); !ok {
		t.Fatalf("mode: got %T, want NormalMode", e.Mode())
	}
	msg, ok := e.Message()
	if !ok || !msg.Err || msg.Text != "Unknown key" {
		t.Fatalf("message: got (%+v, %v), want error %q", msg, ok, "Unknown key")
	}
}

func TestDispatch_GotoLineEnd(t *testing.T) {
	m := newTestModel("abc\ndef")

	m = m.press("g", "l")
	e := m.Editor()
	if e.Head() != 3 {
		t.Fatalf("head: got %d, want 3 (line end)", e.Head())
	}
}

func TestDispatch_UnboundKeyIgnored(t *testing.T) {
	m := newTestModel("ab")

	m = m.press("q")
	e := m.Editor()
	if _, ok := e.Message(); ok {
		t.Fatalf("unbound keys must be ignored without error")
	}
	if got := e.Text().String(); got != "ab" {
		t.Fatalf("content changed: %q", got)
	}
}

func TestDispatch_MessageClearedOnNextEvent(t *testing.T) {
	m := newTestModel("ab")

	m = m.press("g", "z")
	if _, ok := m.Editor().Message(); !ok {
		t.Fatalf("expected a message after the unknown goto key")
	}
	m = m.press("l")
	if _, ok := m.Editor().Message(); ok {
		t.Fatalf("message must clear at the start of the next event")
	}
}

func TestDispatch_CommandModeComposeAndCancel(t *testing.T) {
	m := newTestModel("ab")

	m = m.press(":").typeString("quit")
	cm, ok := m.Editor().Mode().(CommandMode)
	if !ok {
		t.Fatalf("mode: got %T, want CommandMode", m.Editor().Mode())
	}
	if got := cm.Line.String(); got != "quit" {
		t.Fatalf("command line: got %q, want %q", got, "quit")
	}

	m = m.press("esc")
	if _, ok := m.Editor().Mode().(NormalMode); !ok {
		t.Fatalf("cancel must return to Normal")
	}
	if _, ok := m.Editor().ExitCode(); ok {
		t.Fatalf("a cancelled command must not run")
	}
}

func TestDispatch_CommandLineEditingKeys(t *testing.T) {
	m := newTestModel("")

	m = m.press(":").typeString("echoo")
	out, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = out.(Model)
	out, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = out.(Model)
	m = m.press("h")

	cm, ok := m.Editor().Mode().(CommandMode)
	if !ok {
		t.Fatalf("mode: got %T, want CommandMode", m.Editor().Mode())
	}
	if got, want := cm.Line.String(), "echho"; got != want {
		t.Fatalf("command line: got %q, want %q", got, want)
	}
	if got, want := cm.Line.Cursor(), 4; got != want {
		t.Fatalf("cursor: got %d, want %d", got, want)
	}

	out, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	m = out.(Model)
	cm = m.Editor().Mode().(CommandMode)
	if got, want := cm.Line.String(), "o"; got != want {
		t.Fatalf("after kill to start: got %q, want %q", got, want)
	}
}

func TestScenario_WriteQuitWithCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	e := newTestEditor("saved text")
	e.path = path
	m := NewModel(e)
	out, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = out.(Model)

	m = m.press(":").typeString("wq 3").press("enter")

	if _, ok := m.Editor().Mode().(NormalMode); !ok {
		t.Fatalf("mode after confirm: got %T, want NormalMode", m.Editor().Mode())
	}
	code, ok := m.Editor().ExitCode()
	if !ok || code != 3 {
		t.Fatalf("exit: got (%d, %v), want (3, true)", code, ok)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got, want := string(data), "saved text"; got != want {
		t.Fatalf("persisted: got %q, want %q", got, want)
	}
}

func TestDispatch_CtrlCExitsWithSuccess(t *testing.T) {
	m := newTestModel("ab")

	out, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = out.(Model)
	code, ok := m.Editor().ExitCode()
	if !ok || code != 0 {
		t.Fatalf("exit: got (%d, %v), want (0, true)", code, ok)
	}
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
}

func TestMouse_LeftClickPlacesForwardCaret(t *testing.T) {
	m := newTestModel("abc\ndef")

	out, _ := m.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = out.(Model)
	e := m.Editor()
	if e.Anchor() != 5 || e.Head() != 6 {
		t.Fatalf("selection: got (%d, %d), want (5, 6)", e.Anchor(), e.Head())
	}
	if !e.IsForward() {
		t.Fatalf("click caret must be forward")
	}
}

func TestMouse_RightClickExtendsOnly(t *testing.T) {
	m := newTestModel("abcd")

	out, _ := m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = out.(Model)
	out, _ = m.Update(tea.MouseMsg{X: 2, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	m = out.(Model)

	e := m.Editor()
	if e.Anchor() != 0 || e.Head() != 3 {
		t.Fatalf("selection: got (%d, %d), want (0, 3)", e.Anchor(), e.Head())
	}
}

func TestMouse_DragExtends(t *testing.T) {
	m := newTestModel("abcd")

	out, _ := m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = out.(Model)
	out, _ = m.Update(tea.MouseMsg{X: 2, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m = out.(Model)
	out, _ = m.Update(tea.MouseMsg{X: 2, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = out.(Model)

	e := m.Editor()
	if e.Anchor() != 0 || e.Head() != 3 {
		t.Fatalf("selection: got (%d, %d), want (0, 3)", e.Anchor(), e.Head())
	}

	// After release, motion no longer extends.
	out, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	m = out.(Model)
	if m.Editor().Head() != 3 {
		t.Fatalf("motion after release must not move the head")
	}
}

func TestMouse_ClickBelowLastLineGoesToEnd(t *testing.T) {
	m := newTestModel("ab")

	out, _ := m.Update(tea.MouseMsg{X: 5, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = out.(Model)
	e := m.Editor()
	// MoveTo(end) leaves a forward caret on the last grapheme.
	if e.Anchor() != 1 || e.Head() != 2 {
		t.Fatalf("selection: got (%d, %d), want (1, 2)", e.Anchor(), e.Head())
	}
}

func TestMouse_WheelScrolls(t *testing.T) {
	m := newTestModel("a\nb\nc\nd\ne\nf")

	out, _ := m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	m = out.(Model)
	if got := m.Editor().Scroll(); got != 3 {
		t.Fatalf("scroll: got %d, want 3", got)
	}
	out, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	m = out.(Model)
	if got := m.Editor().Scroll(); got != 0 {
		t.Fatalf("scroll: got %d, want 0", got)
	}
}
