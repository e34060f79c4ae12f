package galaga

// State is the top-level session state.
type State int

const (
	StateStart State = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateVictory
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended.
func (s State) Terminal() bool {
	return s == StateGameOver || s == StateVictory
}

var transitions = map[State][]State{
	StateStart:    {StatePlaying},
	StatePlaying:  {StatePaused, StateGameOver, StateVictory},
	StatePaused:   {StatePlaying},
	StateGameOver: {StatePlaying},
	StateVictory:  {StatePlaying},
}

// CanTransition reports whether from -> to is a legal move.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// setState moves the machine, ignoring illegal transitions.
func (g *Game) setState(to State) bool {
	from := g.state
	if !CanTransition(from, to) {
		g.logger.Warn("illegal state transition", "from", from, "to", to)
		return false
	}
	g.state = to
	if to.Terminal() && g.score > g.highScore {
		g.highScore = g.score
		g.newHighScore = true
	}
	g.logger.Debug("state transition", "from", from, "to", to, "tick", g.tick)
	return true
}

// SetFocus pauses the session when the host loses focus and resumes it
// when focus returns, unless the player paused manually.
func (g *Game) SetFocus(focused bool) {
	g.focused = focused
	switch {
	case !focused && g.state == StatePlaying:
		if g.setState(StatePaused) {
			g.pausedByFocus = true
		}
	case focused && g.state == StatePaused && g.pausedByFocus:
		g.pausedByFocus = false
		g.setState(StatePlaying)
	}
}

// handleStateInput processes inputs that drive the state machine.
// Reports whether the playing simulation should advance this tick.
func (g *Game) handleStateInput(confirm, pause bool) bool {
	switch g.state {
	case StateStart:
		if confirm && g.assetsReady {
			g.startSession()
		}
		return false
	case StateGameOver, StateVictory:
		if confirm {
			g.startSession()
		}
		return false
	case StatePaused:
		if pause && g.focused {
			g.pausedByFocus = false
			g.setState(StatePlaying)
		}
		return false
	case StatePlaying:
		if pause {
			g.setState(StatePaused)
			return false
		}
		return true
	}
	return false
}
