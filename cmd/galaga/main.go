// galaga is a Galaga-style vertical shooter for the terminal.
//
// Usage:
//
//	galaga play [--mode campaign|boss]  - Play (menu when no mode is given)
//	galaga list                         - List game modes
//	galaga scores [--mode id] [--plain] - Show high scores and recent runs
//	galaga serve                        - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60, env GALAGA_FPS)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.galaga/scores.db, env GALAGA_DB)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-galaga/internal/config"
	// Import modes to register them
	_ "github.com/vovakirdan/tui-galaga/internal/games/galaga"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Environment defaults for flags
	envCfg, envErr = loadEnv()
)

// loadEnv reads GALAGA_* variables, falling back to defaults when they are
// invalid. The error is reported once a command runs.
func loadEnv() (config.Env, error) {
	e, err := config.ParseEnv()
	if err != nil {
		defaults, _ := config.ParseEnvFrom(nil)
		return defaults, err
	}
	return e, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "galaga",
	Short: "Galaga - a vertical shooter in your terminal",
	Long: `Galaga is a terminal take on the classic formation shooter.
Clear nine levels of alien waves, then defeat the boss on level 10.

Available commands:
  list     - Show game modes
  play     - Play a mode (or pick one from the menu)
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs

Examples:
  galaga play
  galaga play --mode boss --difficulty hard
  galaga serve --ssh :2222
  galaga scores --plain`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if envErr != nil {
			return envErr
		}
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", envCfg.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envCfg.DBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", envCfg.LogLevel, "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds a charm logger writing to w at the configured level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// openLogFile opens ~/.galaga/galaga.log for the duration of a TUI run,
// since the terminal itself is owned by the game. Falls back to discarding.
func openLogFile() (io.Writer, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return io.Discard, func() {}
	}
	dir := filepath.Join(home, ".galaga")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "galaga.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}
