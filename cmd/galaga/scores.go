package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-galaga/internal/platform/tui"
	"github.com/vovakirdan/tui-galaga/internal/registry"
	"github.com/vovakirdan/tui-galaga/internal/storage"
)

var (
	flagScoresMode string
	flagPlain      bool
	flagClear      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent runs",
	Long: `Open the interactive scoreboard, or print it with --plain.

Examples:
  galaga scores
  galaga scores --plain
  galaga scores --plain --mode boss
  galaga scores --mode campaign --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", "campaign", "Mode for --plain and --clear: campaign or boss")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores instead of opening the scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every score and run for --mode")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if !flagPlain && !flagClear {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, width, height)
		return err
	}

	gameID, err := resolveMode(flagScoresMode)
	if err != nil {
		return err
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return nil
	}

	return printScores(store, gameID, game.Title())
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'galaga play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	sessions, err := store.RecentSessions(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	if len(sessions) > 0 {
		fmt.Println()
		fmt.Println("Recent runs")
		fmt.Println()
		fmt.Printf("  %-10s  %-6s  %-9s  %s\n", "Score", "Stage", "Result", "Date")
		fmt.Printf("  %-10s  %-6s  %-9s  %s\n", "-----", "-----", "------", "----")
		for _, s := range sessions {
			stage := fmt.Sprintf("%d-%d", s.Level, s.Wave)
			fmt.Printf("  %-10d  %-6s  %-9s  %s\n", s.Score, stage, s.Outcome, s.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Average: %.0f  Games: %d  Victories: %d\n",
			stats.HighScore, stats.AvgScore, stats.GamesCount, stats.Victories)
	}
	return nil
}
