package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-galaga/internal/audio"
	"github.com/vovakirdan/tui-galaga/internal/core"
	"github.com/vovakirdan/tui-galaga/internal/registry"
	"github.com/vovakirdan/tui-galaga/internal/storage"
)

// assetsReadyMsg reports that audio finished opening (or failed to).
type assetsReadyMsg struct{ err error }

// initAudioCmd opens the speaker off the update loop.
// A nil player is ready immediately.
func initAudioCmd(p *audio.Player) tea.Cmd {
	return func() tea.Msg {
		if p == nil {
			return assetsReadyMsg{}
		}
		return assetsReadyMsg{err: p.Init()}
	}
}

// Model is the Bubble Tea model that hosts one galaga mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	audio      *audio.Player
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	held       *heldKeys
	gameState  core.GameState
	ticks      int // Platform ticks since Init
	runTicks   int // Ticks spent playing in the current run
	recorded   bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for game. store, player and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, player *audio.Player, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		audio:  player,
		logger: logger,
		config: cfg,
		keys:   NewKeyMapper(),
		held:   newHeldKeys(),
	}
}

// Init resets the game and starts the tick loop and audio loading.
func (m Model) Init() tea.Cmd {
	m.game.SetLogger(m.logger)
	m.game.Reset(m.config)
	m.game.SetAssetsReady(false)

	if m.store != nil {
		best, err := m.store.HighScore(m.game.ID())
		if err != nil {
			m.warn("cannot read high score", "err", err)
		} else {
			m.game.SetHighScore(best)
		}
	}

	return tea.Batch(tickCmd(m.config.TickRate), initAudioCmd(m.audio))
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.FocusMsg:
		m.game.SetFocus(true)
		return m, nil

	case tea.BlurMsg:
		m.held.Release()
		m.game.SetFocus(false)
		return m, nil

	case assetsReadyMsg:
		if msg.err != nil {
			m.warn("audio unavailable, playing silently", "err", msg.err)
		}
		m.game.SetAssetsReady(true)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.keys.IsScreenshot(msg):
		m.saveScreenshot()
		return m, nil
	case m.keys.IsMuteToggle(msg):
		if m.audio != nil {
			m.audio.SetMuted(!m.audio.Muted())
		}
		return m, nil
	}

	action := m.keys.MapKeyToMenuAction(msg)
	if action == MenuActionBack && m.gameState.GameOver {
		m.backToMenu = true
		return m, nil
	}

	a, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.recordQuit()
		m.quitting = true
		return m, tea.Quit
	}
	m.held.Press(a, m.ticks)
	return m, nil
}

// handleResize updates the screen buffer. The playfield is scaled at render
// time, so a resize never restarts the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	frame := m.held.Frame(m.ticks)
	m.ticks++
	m.game.SetVisualPhase(float64(m.ticks) / float64(m.config.TickRate))

	prev := m.gameState
	result := m.game.Step(frame)
	m.gameState = result.State

	if m.audio != nil {
		m.audio.Play(result.Cues...)
	}

	// A confirm on the end screen starts a new run inside the same game.
	if prev.GameOver && !m.gameState.GameOver {
		m.recorded = false
		m.runTicks = 0
	}
	if m.gameState.Phase == "playing" {
		m.runTicks++
	}
	if m.gameState.GameOver && !m.recorded {
		m.recordResult()
	}

	return m, tickCmd(m.config.TickRate)
}

// recordResult persists the finished run once.
func (m *Model) recordResult() {
	m.recorded = true
	if m.store == nil {
		return
	}

	outcome := storage.OutcomeGameOver
	if m.gameState.Victory {
		outcome = storage.OutcomeVictory
	}
	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}
	if _, err := m.store.SaveSession(m.session(outcome)); err != nil {
		m.warn("cannot save session", "err", err)
	}
}

// recordQuit stores an abandoned run.
func (m *Model) recordQuit() {
	if m.store == nil || m.recorded {
		return
	}
	if m.gameState.Phase != "playing" && m.gameState.Phase != "paused" {
		return
	}
	m.recorded = true
	//nolint:errcheck // Best-effort save
	m.store.SaveSession(m.session(storage.OutcomeQuit))
}

func (m *Model) session(outcome string) storage.SessionRecord {
	return storage.SessionRecord{
		GameID:  m.game.ID(),
		Score:   m.gameState.Score,
		Level:   m.gameState.Level,
		Wave:    m.gameState.Wave,
		Outcome: outcome,
		Ticks:   m.runTicks,
	}
}

func (m *Model) warn(msg string, keyvals ...any) {
	if m.logger != nil {
		m.logger.Warn(msg, keyvals...)
	}
}

// saveScreenshot writes the current screen to ~/.galaga/screenshots/.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	dir := filepath.Join(home, ".galaga", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}

	m.game.Render(m.screen)

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s - %s\n", m.game.Title(), time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "# Size: %dx%d, Tick: %d\n", m.screen.Width(), m.screen.Height(), m.ticks)
	fmt.Fprintf(&sb, "# Phase: %s, Score: %d, Lives: %d, Level: %d-%d\n",
		m.gameState.Phase, m.gameState.Score, m.gameState.Lives, m.gameState.Level, m.gameState.Wave)
	sb.WriteString(strings.Repeat("-", m.screen.Width()))
	sb.WriteString("\n")
	sb.WriteString(m.screen.String())
	sb.WriteString(strings.Repeat("-", m.screen.Width()))
	sb.WriteString("\n")

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save
	os.WriteFile(filepath.Join(dir, filename), []byte(sb.String()), 0o600)
}

// View renders the current game state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the user asked to leave the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state seen on the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
// Returns true when the user went back to the menu instead of quitting.
func Run(game registry.Game, store *storage.Store, player *audio.Player, logger *log.Logger, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, store, player, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
