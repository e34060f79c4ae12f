package tui

import (
	"github.com/vovakirdan/tui-galaga/internal/core"
)

// holdTicks is how long a press keeps a held action active. It spans the
// usual terminal auto-repeat gap so a held key reads as continuous input.
const holdTicks = 30

// heldKeys turns discrete key presses into per-tick input.
// Held actions stay set until their latch expires; one-shot actions are
// delivered on the next tick only.
type heldKeys struct {
	until   map[core.Action]int
	pending core.InputFrame
}

func newHeldKeys() *heldKeys {
	return &heldKeys{
		until:   make(map[core.Action]int),
		pending: core.NewInputFrame(),
	}
}

// Press records an action at tick now.
func (h *heldKeys) Press(a core.Action, now int) {
	if a == core.ActionNone {
		return
	}
	if !Held(a) {
		h.pending.Set(a)
		return
	}
	h.until[a] = now + holdTicks
	// Reversing direction drops the opposite latch immediately.
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
}

// Frame builds the input for tick now and consumes one-shot actions.
func (h *heldKeys) Frame(now int) core.InputFrame {
	frame := h.pending.Clone()
	h.pending.Clear()
	for a, until := range h.until {
		if now >= until {
			delete(h.until, a)
			continue
		}
		frame.Set(a)
	}
	return frame
}

// Release drops every latch and queued action.
func (h *heldKeys) Release() {
	clear(h.until)
	h.pending.Clear()
}
