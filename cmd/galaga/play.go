package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-galaga/internal/audio"
	"github.com/vovakirdan/tui-galaga/internal/config"
	"github.com/vovakirdan/tui-galaga/internal/core"
	"github.com/vovakirdan/tui-galaga/internal/games/galaga"
	"github.com/vovakirdan/tui-galaga/internal/platform/tui"
	"github.com/vovakirdan/tui-galaga/internal/registry"
	"github.com/vovakirdan/tui-galaga/internal/storage"
)

var (
	flagMode       string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Galaga",
	Long: `Start playing. Without --mode a menu lets you pick one.

Controls:
  Left/Right, A/D  - Move
  Space            - Fire
  Enter            - Start / play again
  P/Esc            - Pause
  M                - Toggle sound
  B/Esc            - Back to menu (after a run)
  Ctrl+S           - Screenshot to ~/.galaga/screenshots
  Q/Ctrl+C         - Quit

Modes:
  campaign  - Levels 1 to 10, boss on level 10
  boss      - Straight to the boss fight

Difficulty options:
  easy   - Slower enemies, fewer dives, more power-ups
  normal - Tunables as configured
  hard   - Faster enemies, more dives, faster enemy fire
  fixed  - No speed progression between levels

Examples:
  galaga play
  galaga play --mode boss
  galaga play --difficulty hard --mute
  galaga play --config ./my-galaga.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Mode: campaign or boss (menu when empty)")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", envCfg.Mute, "Start with sound off")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.8, "Master volume between 0 and 1")
}

// resolveMode maps a --mode value to a registry ID.
func resolveMode(mode string) (string, error) {
	switch mode {
	case "":
		return "", nil
	case "campaign":
		return "galaga", nil
	case "boss", "boss-rush":
		return "galaga_boss", nil
	}
	if registry.Exists(mode) {
		return mode, nil
	}
	return "", fmt.Errorf("unknown mode %q (run 'galaga list')", mode)
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameID, err := resolveMode(flagMode)
	if err != nil {
		return err
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	if flagVolume < 0 || flagVolume > 1 {
		return fmt.Errorf("--volume must be between 0 and 1, got %g", flagVolume)
	}

	galaga.SetConfigPath(flagConfig)
	galaga.SetDifficultyPreset(flagDifficulty)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logOut, closeLog := openLogFile()
	defer closeLog()
	logger := newLogger(logOut, "galaga")

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := audio.NewPlayer(flagVolume, flagMute)
	defer player.Close()

	if gameID == "" {
		return tui.RunSession(store, player, logger, cfg)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	logger.Info("starting", "mode", gameID, "difficulty", flagDifficulty, "seed", flagSeed)
	_, err = tui.Run(game, store, player, logger, cfg)
	return err
}
