package storage

import (
	"database/sql"
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

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("marble", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("fighter", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("marble", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}

	fighter, err := store.TopScores("fighter", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(fighter) != 1 {
		t.Errorf("Expected 1 fighter score, got %d", len(fighter))
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{GameID: "marble", Score: 4, Duration: 21.5, EndReason: "fell_out"},
		{GameID: "marble", Score: 9, Duration: 40.25, EndReason: "energy_drained"},
		{GameID: "marble", Score: 1, Duration: -3, EndReason: "fell_out"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%+v) failed: %v", r, err)
		}
	}

	top, err := store.TopScores("marble", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 1 || top[0].Score != 9 || top[0].Duration != 40.25 || top[0].EndReason != "energy_drained" {
		t.Errorf("top run = %+v", top)
	}

	recent, err := store.RecentRuns("marble", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 1 || recent[1].Score != 9 {
		t.Errorf("recent runs = %+v", recent)
	}
	if recent[0].Duration != 0 {
		t.Errorf("negative duration stored as %v", recent[0].Duration)
	}

	if _, err := store.SaveRun(RunRecord{Score: 3}); err == nil {
		t.Error("expected error for empty game id")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := range 5 {
		store.SaveScore("fighter", (i+1)*100)
	}

	scores, err := store.TopScores("fighter", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, _ := store.TopScores("fighter", 0)
	if len(all) != 5 {
		t.Errorf("default limit returned %d scores", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("marble")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("marble", 100)
	store.SaveScore("marble", 300)
	store.SaveScore("marble", 200)

	high, err = store.HighScore("marble")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("marble", 100)
	store.SaveScore("marble", 200)
	store.SaveScore("fighter", 300)

	if err := store.ClearScores("marble"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if marble, _ := store.TopScores("marble", 10); len(marble) != 0 {
		t.Errorf("Expected 0 marble scores after clear, got %d", len(marble))
	}
	if fighter, _ := store.TopScores("fighter", 10); len(fighter) != 1 {
		t.Error("Fighter scores should not be affected by clearing marble")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(RunRecord{GameID: "fighter", Score: 10, Duration: 30, EndReason: "lives_exhausted"})
	store.SaveRun(RunRecord{GameID: "fighter", Score: 20, Duration: 50, EndReason: "lives_exhausted"})
	store.SaveRun(RunRecord{GameID: "marble", Score: 3, Duration: 12, EndReason: "fell_out"})

	stats, err := store.GetGameStats("fighter")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 20 || stats.AvgScore != 15 || stats.TotalScore != 30 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.PlaySeconds != 80 || stats.LongestRun != 50 {
		t.Errorf("time stats = %v / %v", stats.PlaySeconds, stats.LongestRun)
	}
	if stats.EndReasons["lives_exhausted"] != 2 {
		t.Errorf("end reasons = %v", stats.EndReasons)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["marble"].EndReasons["fell_out"] != 1 {
		t.Errorf("all stats = %v", all)
	}
}

func TestStoreMigratesLegacySchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "legacy.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`CREATE TABLE scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	INSERT INTO scores (game_id, score) VALUES ('marble', 42);`)
	db.Close()
	if err != nil {
		t.Fatal(err)
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on legacy db failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(RunRecord{GameID: "marble", Score: 7, Duration: 3, EndReason: "fell_out"}); err != nil {
		t.Fatalf("SaveRun() after migration failed: %v", err)
	}
	scores, err := store.TopScores("marble", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 42 || scores[0].EndReason != "" {
		t.Errorf("scores = %+v", scores)
	}
}
