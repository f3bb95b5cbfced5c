package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-reversi/internal/match"
	"github.com/vovakirdan/tui-reversi/internal/reversi"
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

func completed(id string, black, white int) match.Result {
	r := match.Result{
		MatchID:    id,
		BlackName:  "Ada",
		WhiteName:  "Grace",
		BlackCount: black,
		WhiteCount: white,
		EndReason:  match.ReasonCompleted,
		Moves:      black + white - 4,
		Duration:   90 * time.Second,
	}
	switch {
	case black > white:
		r.Winner = reversi.Black
	case white > black:
		r.Winner = reversi.White
	}
	return r
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	r := completed("m-1", 40, 24)
	r.Passes = 2

	id, err := store.SaveResult(r)
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveResult() id = %d, expected positive", id)
	}

	got, err := store.ResultByMatchID("m-1")
	if err != nil {
		t.Fatalf("ResultByMatchID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("ResultByMatchID() returned nil")
	}

	if got.BlackName != "Ada" || got.WhiteName != "Grace" {
		t.Errorf("names = %q/%q", got.BlackName, got.WhiteName)
	}
	if got.BlackCount != 40 || got.WhiteCount != 24 {
		t.Errorf("counts = %d-%d, expected 40-24", got.BlackCount, got.WhiteCount)
	}
	if got.Winner != "black" || got.WinnerName() != "Ada" {
		t.Errorf("winner = %q (%q), expected black (Ada)", got.Winner, got.WinnerName())
	}
	if got.EndReason != match.ReasonCompleted {
		t.Errorf("EndReason = %q", got.EndReason)
	}
	if got.Moves != 60 || got.Passes != 2 || got.Duration != 90 {
		t.Errorf("moves=%d passes=%d duration=%d", got.Moves, got.Passes, got.Duration)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreResultByMatchIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.ResultByMatchID("nope")
	if err != nil {
		t.Fatalf("ResultByMatchID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("ResultByMatchID() = %+v, expected nil", got)
	}
}

func TestStoreDuplicateMatchID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(completed("dup", 33, 31)); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult(completed("dup", 33, 31)); err == nil {
		t.Error("saving the same match twice should fail")
	}
}

func TestStoreRejectsEmptyMatchID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(match.Result{}); err == nil {
		t.Error("SaveResult() without match ID should fail")
	}
}

func TestStoreRecentResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveResult(completed(fmt.Sprintf("m-%d", i), 40, 24)); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	results, err := store.RecentResults(3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results with limit, got %d", len(results))
	}

	// Same timestamp resolution, so newest id first
	if results[0].MatchID != "m-4" || results[2].MatchID != "m-2" {
		t.Errorf("results not newest first: %s, %s, %s", results[0].MatchID, results[1].MatchID, results[2].MatchID)
	}
}

func TestStorePlayerResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(completed("a", 40, 24))
	other := completed("b", 20, 44)
	other.BlackName = "Linus"
	other.WhiteName = "Ken"
	store.SaveResult(other)

	results, err := store.PlayerResults("Ken", 10)
	if err != nil {
		t.Fatalf("PlayerResults() failed: %v", err)
	}
	if len(results) != 1 || results[0].MatchID != "b" {
		t.Errorf("PlayerResults(Ken) = %+v", results)
	}
	if results[0].WinnerName() != "Ken" {
		t.Errorf("WinnerName() = %q, expected Ken", results[0].WinnerName())
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if empty.Games != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty Stats() = %+v", empty)
	}

	store.SaveResult(completed("b1", 40, 24)) // margin 16
	store.SaveResult(completed("w1", 20, 44)) // margin 24
	store.SaveResult(completed("d1", 32, 32)) // margin 0
	abandoned := match.Result{
		MatchID:    "x1",
		BlackName:  "Ada",
		WhiteName:  "Grace",
		BlackCount: 5,
		WhiteCount: 2,
		EndReason:  match.ReasonAbandoned,
	}
	store.SaveResult(abandoned)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.Games != 4 {
		t.Errorf("Games = %d, expected 4", stats.Games)
	}
	if stats.BlackWins != 1 || stats.WhiteWins != 1 || stats.Draws != 1 || stats.Abandoned != 1 {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.AvgMargin < 13.3 || stats.AvgMargin > 13.4 {
		t.Errorf("AvgMargin = %f, expected 13.33", stats.AvgMargin)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(completed("c1", 40, 24))
	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	results, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results after clear, got %d", len(results))
	}
}

func TestStoreSavesMatch(t *testing.T) {
	store := openTestStore(t)

	m := match.New(match.Options{})
	if err := m.Play(reversi.P(2, 3)); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	m.Quit()

	var saver match.ResultSaver = store
	if err := saver.SaveMatchResult(m.Result()); err != nil {
		t.Fatalf("SaveMatchResult() failed: %v", err)
	}

	got, err := store.ResultByMatchID(m.ID())
	if err != nil || got == nil {
		t.Fatalf("ResultByMatchID() = (%v, %v)", got, err)
	}
	if got.EndReason != match.ReasonAbandoned || got.Winner != "" {
		t.Errorf("stored abandoned game = %+v", got)
	}
	if got.BlackCount != 4 || got.WhiteCount != 1 || got.Moves != 1 {
		t.Errorf("stored counts = %d-%d moves=%d", got.BlackCount, got.WhiteCount, got.Moves)
	}
}
