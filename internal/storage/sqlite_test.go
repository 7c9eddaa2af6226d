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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("brickstorm", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different mode
	if _, err := store.SaveScore("brickstorm_endless", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("brickstorm", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	endless, err := store.TopScores("brickstorm_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endless))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("brickstorm", (i+1)*100)
	}

	scores, err := store.TopScores("brickstorm", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("brickstorm")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("brickstorm", 100)
	store.SaveScore("brickstorm", 300)
	store.SaveScore("brickstorm", 200)

	high, err = store.HighScore("brickstorm")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("brickstorm", 100)
	store.SaveScore("brickstorm", 200)
	store.SaveScore("brickstorm_endless", 300)

	if err := store.ClearScores("brickstorm"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	campaign, _ := store.TopScores("brickstorm", 10)
	if len(campaign) != 0 {
		t.Errorf("Expected 0 campaign scores after clear, got %d", len(campaign))
	}

	endless, _ := store.TopScores("brickstorm_endless", 10)
	if len(endless) != 1 {
		t.Error("Endless scores should not be affected by clearing campaign")
	}
}

func TestStoreRunRecords(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{GameID: "brickstorm", Score: 420, Level: 2, Won: false, LivesLeft: 0, DurationTicks: 18000, Seed: 7},
		{GameID: "brickstorm", Score: 1800, Level: 6, Won: true, LivesLeft: 1, DurationTicks: 64000, Seed: 9},
		{GameID: "brickstorm_endless", Score: 5000, Level: 11, Won: false, LivesLeft: 0, DurationTicks: 120000, Seed: 3},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns("brickstorm", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 campaign runs, got %d", len(recent))
	}
	// Newest first
	if recent[0].Seed != 9 || !recent[0].Won {
		t.Errorf("Expected the winning run first, got %+v", recent[0])
	}
	if recent[0].Level != 6 || recent[0].DurationTicks != 64000 {
		t.Errorf("Run fields not round-tripped: %+v", recent[0])
	}

	wins, err := store.WinCount("brickstorm")
	if err != nil {
		t.Fatalf("WinCount() failed: %v", err)
	}
	if wins != 1 {
		t.Errorf("Expected 1 win, got %d", wins)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("brickstorm", 100)
	store.SaveScore("brickstorm", 300)

	stats, err := store.GetGameStats("brickstorm")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("Unexpected stats: %+v", stats)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if _, ok := all["brickstorm"]; !ok {
		t.Error("Expected brickstorm in aggregated stats")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
