package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func battle(gameID string, won bool, score, shots, hits int) BattleRecord {
	return BattleRecord{
		GameID: gameID,
		Won:    won,
		Score:  score,
		Shots:  shots,
		Hits:   hits,
	}
}

func TestStoreOpenCreatesFile(t *testing.T) {
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

	for _, rec := range []BattleRecord{
		battle("battleship", true, 295, 40, 17),
		battle("battleship", false, 120, 35, 9),
		battle("battleship", true, 270, 55, 17),
		battle("battleship_compact", true, 220, 25, 12),
	} {
		if _, err := store.SaveBattle(rec); err != nil {
			t.Fatalf("SaveBattle() failed: %v", err)
		}
	}

	best, err := store.BestBattles("battleship", 10)
	if err != nil {
		t.Fatalf("BestBattles() failed: %v", err)
	}

	if len(best) != 3 {
		t.Fatalf("Expected 3 battles, got %d", len(best))
	}
	if best[0].Score != 295 || best[1].Score != 270 || best[2].Score != 120 {
		t.Errorf("Battles not sorted by score: %d, %d, %d",
			best[0].Score, best[1].Score, best[2].Score)
	}
	if !best[0].Won {
		t.Error("Win flag lost on round trip")
	}
	if best[0].Hits != 17 || best[0].Shots != 40 {
		t.Errorf("Shot counters lost on round trip: %d/%d", best[0].Hits, best[0].Shots)
	}

	compact, err := store.BestBattles("battleship_compact", 10)
	if err != nil {
		t.Fatalf("BestBattles() failed: %v", err)
	}
	if len(compact) != 1 {
		t.Errorf("Expected 1 compact battle, got %d", len(compact))
	}
}

func TestStoreBestBattlesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveBattle(battle("battleship", true, (i+1)*100, 30, 17))
	}

	best, err := store.BestBattles("battleship", 3)
	if err != nil {
		t.Fatalf("BestBattles() failed: %v", err)
	}

	if len(best) != 3 {
		t.Fatalf("Expected 3 battles with limit, got %d", len(best))
	}
	if best[0].Score != 500 || best[1].Score != 400 || best[2].Score != 300 {
		t.Errorf("Battles not in expected order: %v", best)
	}
}

func TestStoreRecentBattles(t *testing.T) {
	store := openTestStore(t)

	store.SaveBattle(battle("battleship", true, 100, 30, 17))
	store.SaveBattle(battle("battleship_grand", false, 50, 20, 8))

	recent, err := store.RecentBattles(10)
	if err != nil {
		t.Fatalf("RecentBattles() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 recent battles, got %d", len(recent))
	}
	if recent[0].GameID != "battleship_grand" {
		t.Errorf("Most recent battle = %q, want battleship_grand", recent[0].GameID)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("battleship")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty variant, got %d", high)
	}

	store.SaveBattle(battle("battleship", false, 100, 30, 10))
	store.SaveBattle(battle("battleship", true, 300, 40, 17))
	store.SaveBattle(battle("battleship", true, 200, 50, 17))

	high, err = store.HighScore("battleship")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearBattles(t *testing.T) {
	store := openTestStore(t)

	store.SaveBattle(battle("battleship", true, 100, 30, 17))
	store.SaveBattle(battle("battleship", false, 200, 40, 12))
	store.SaveBattle(battle("battleship_grand", true, 300, 60, 20))

	if err := store.ClearBattles("battleship"); err != nil {
		t.Fatalf("ClearBattles() failed: %v", err)
	}

	classic, _ := store.BestBattles("battleship", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic battles after clear, got %d", len(classic))
	}

	grand, _ := store.BestBattles("battleship_grand", 10)
	if len(grand) != 1 {
		t.Error("Grand battles should not be affected by clearing classic")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveBattle(battle("battleship", true, 295, 40, 17))
	store.SaveBattle(battle("battleship", false, 120, 60, 9))

	stats, err := store.GetGameStats("battleship")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.Battles != 2 {
		t.Errorf("Battles = %d, want 2", stats.Battles)
	}
	if stats.Wins != 1 {
		t.Errorf("Wins = %d, want 1", stats.Wins)
	}
	if stats.HighScore != 295 {
		t.Errorf("HighScore = %d, want 295", stats.HighScore)
	}
	if stats.TotalShots != 100 || stats.TotalHits != 26 {
		t.Errorf("Totals = %d shots / %d hits, want 100/26", stats.TotalShots, stats.TotalHits)
	}
	if acc := stats.Accuracy(); acc != 26 {
		t.Errorf("Accuracy() = %.1f, want 26.0", acc)
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveBattle(battle("battleship", true, 100, 30, 17))
	store.SaveBattle(battle("battleship_strict", false, 80, 45, 11))

	stats, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 variants, got %d", len(stats))
	}
	if stats["battleship"].Wins != 1 || stats["battleship_strict"].Wins != 0 {
		t.Error("Per-variant win counts wrong")
	}
}

func TestBattleRecordAccuracy(t *testing.T) {
	if got := battle("battleship", true, 0, 0, 0).Accuracy(); got != 0 {
		t.Errorf("Accuracy() with no shots = %.1f, want 0", got)
	}
	if got := battle("battleship", true, 0, 40, 17).Accuracy(); got != 42.5 {
		t.Errorf("Accuracy() = %.2f, want 42.5", got)
	}
}
