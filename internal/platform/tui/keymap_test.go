package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHeldActions(t *testing.T) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionFire} {
		if !Held(a) {
			t.Errorf("%v should be held", a)
		}
	}
	for _, a := range []core.Action{core.ActionPause, core.ActionConfirm, core.ActionQuit} {
		if Held(a) {
			t.Errorf("%v should be one-shot", a)
		}
	}
}

func TestHeldKeysLatch(t *testing.T) {
	h := newHeldKeys()
	h.Press(core.ActionLeft, 0)

	for now := range holdTicks {
		if !h.Frame(now).Has(core.ActionLeft) {
			t.Fatalf("left released early at tick %d", now)
		}
	}
	if h.Frame(holdTicks).Has(core.ActionLeft) {
		t.Error("left should expire after holdTicks")
	}
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	h := newHeldKeys()
	h.Press(core.ActionFire, 0)
	h.Press(core.ActionFire, 20)

	if !h.Frame(holdTicks + 5).Has(core.ActionFire) {
		t.Error("a repeat press should extend the latch")
	}
}

func TestHeldKeysOneShot(t *testing.T) {
	h := newHeldKeys()
	h.Press(core.ActionPause, 0)

	if !h.Frame(0).Has(core.ActionPause) {
		t.Fatal("pause should be delivered on the next frame")
	}
	if h.Frame(1).Has(core.ActionPause) {
		t.Error("pause should be delivered once")
	}
}

func TestHeldKeysDirectionSwap(t *testing.T) {
	h := newHeldKeys()
	h.Press(core.ActionLeft, 0)
	h.Press(core.ActionRight, 1)

	f := h.Frame(2)
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Errorf("after swap: left=%v right=%v, want only right", f.Has(core.ActionLeft), f.Has(core.ActionRight))
	}
}

func TestHeldKeysRelease(t *testing.T) {
	h := newHeldKeys()
	h.Press(core.ActionLeft, 0)
	h.Press(core.ActionConfirm, 0)
	h.Release()

	f := h.Frame(1)
	if f.Has(core.ActionLeft) || f.Has(core.ActionConfirm) {
		t.Error("release should drop every action")
	}
}
