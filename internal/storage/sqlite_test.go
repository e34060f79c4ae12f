package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("galaga", 1200); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("galaga")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 1200 {
		t.Errorf("Expected 1200 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("galaga", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("galaga_boss", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("galaga", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("score %d = %d, want %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "galaga" {
			t.Errorf("score %d game = %q", i, scores[i].GameID)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("score %d has no timestamp", i)
		}
	}

	boss, err := store.TopScores("galaga_boss", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(boss) != 1 {
		t.Errorf("Expected 1 boss rush score, got %d", len(boss))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("galaga", (i+1)*100) //nolint:errcheck
	}

	scores, err := store.TopScores("galaga", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to the default
	all, err := store.TopScores("galaga", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("galaga")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("galaga", 100) //nolint:errcheck
	store.SaveScore("galaga", 300) //nolint:errcheck
	store.SaveScore("galaga", 200) //nolint:errcheck

	high, err = store.HighScore("galaga")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreSessions(t *testing.T) {
	store := openTestStore(t)

	runs := []SessionRecord{
		{GameID: "galaga", Score: 1500, Level: 2, Wave: 1, Outcome: OutcomeGameOver, Ticks: 3000},
		{GameID: "galaga", Score: 42000, Level: 10, Wave: 1, Outcome: OutcomeVictory, Ticks: 90000},
		{GameID: "galaga", Score: 300, Level: 1, Wave: 2, Outcome: OutcomeQuit, Ticks: 400},
	}
	for _, r := range runs {
		if _, err := store.SaveSession(r); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	recent, err := store.RecentSessions("galaga", 2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(recent))
	}
	if recent[0].Outcome != OutcomeQuit || recent[1].Outcome != OutcomeVictory {
		t.Errorf("sessions not newest first: %+v", recent)
	}
	if recent[1].Level != 10 || recent[1].Ticks != 90000 {
		t.Errorf("session fields lost: %+v", recent[1])
	}
}

func TestStoreSaveSessionRequiresOutcome(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveSession(SessionRecord{GameID: "galaga"}); err == nil {
		t.Error("expected error for missing outcome")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("galaga")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("galaga", 100)                                                                     //nolint:errcheck
	store.SaveScore("galaga", 300)                                                                     //nolint:errcheck
	store.SaveSession(SessionRecord{GameID: "galaga", Level: 4, Outcome: OutcomeGameOver, Ticks: 100}) //nolint:errcheck
	store.SaveSession(SessionRecord{GameID: "galaga", Level: 10, Outcome: OutcomeVictory, Ticks: 200}) //nolint:errcheck

	stats, err = store.GetGameStats("galaga")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("score stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.BestLevel != 10 || stats.Victories != 1 || stats.TotalTicks != 300 {
		t.Errorf("session stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("galaga", 100)                                               //nolint:errcheck
	store.SaveScore("galaga_boss", 200)                                          //nolint:errcheck
	store.SaveSession(SessionRecord{GameID: "galaga", Outcome: OutcomeGameOver}) //nolint:errcheck

	if err := store.ClearScores("galaga"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("galaga", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	sessions, _ := store.RecentSessions("galaga", 10)
	if len(sessions) != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", len(sessions))
	}

	other, _ := store.TopScores("galaga_boss", 10)
	if len(other) != 1 {
		t.Errorf("Expected other mode's scores untouched, got %d", len(other))
	}
}
