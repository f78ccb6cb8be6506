package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runs := []RunRecord{
		{Variant: "flux", Size: 4, Outcome: OutcomeTrapped, Turns: 3, CellsVisited: 3},
		{Variant: "flux", Size: 4, Outcome: OutcomeWon, Turns: 12, CellsVisited: 10},
		{Variant: "flux", Size: 4, Outcome: OutcomeWon, Turns: 8, CellsVisited: 7},
		{Variant: "classic", Size: 5, Outcome: OutcomeQuit, Turns: 2, CellsVisited: 2},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	// Retrieve flux runs, newest first
	recent, err := store.RecentRuns("flux", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}

	if len(recent) != 3 {
		t.Fatalf("Expected 3 flux runs, got %d", len(recent))
	}
	if recent[0].Turns != 8 {
		t.Errorf("Expected newest run first (8 turns), got %d", recent[0].Turns)
	}
	if recent[2].Outcome != OutcomeTrapped {
		t.Errorf("Expected oldest run last (trapped), got %q", recent[2].Outcome)
	}

	// Limit applies
	limited, err := store.RecentRuns("flux", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 runs with limit, got %d", len(limited))
	}

	// Empty variant selects everything
	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Expected 4 runs total, got %d", len(all))
	}
}

func TestStoreStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runs := []RunRecord{
		{Variant: "flux", Size: 4, Outcome: OutcomeWon, Turns: 15, CellsVisited: 12},
		{Variant: "flux", Size: 4, Outcome: OutcomeWon, Turns: 9, CellsVisited: 8},
		{Variant: "flux", Size: 4, Outcome: OutcomeTrapped, Turns: 4, CellsVisited: 4},
		{Variant: "flux", Size: 4, Outcome: OutcomeQuit, Turns: 1, CellsVisited: 1},
		{Variant: "classic", Size: 5, Outcome: OutcomeWon, Turns: 20, CellsVisited: 18},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.Stats("flux")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.Plays != 4 {
		t.Errorf("Plays = %d, want 4", stats.Plays)
	}
	if stats.Wins != 2 {
		t.Errorf("Wins = %d, want 2", stats.Wins)
	}
	if stats.Traps != 1 {
		t.Errorf("Traps = %d, want 1", stats.Traps)
	}
	if stats.Quits != 1 {
		t.Errorf("Quits = %d, want 1", stats.Quits)
	}
	if stats.BestTurns != 9 {
		t.Errorf("BestTurns = %d, want 9 (fastest win)", stats.BestTurns)
	}
}

func TestStoreStatsEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	stats, err := store.Stats("flux")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Plays != 0 || stats.BestTurns != 0 {
		t.Errorf("empty stats = %+v, want zeros", stats)
	}
}
