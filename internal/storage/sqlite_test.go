package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveSession(Session{Seed: 1, StartedAt: time.Now(), EndedAt: time.Now()}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("Expected 1 session after reopen, got %d", len(sessions))
	}
}

func TestSaveAndListSessions(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	inputs := []Session{
		{User: "alice", Seed: 1, Ticks: 100, BricksHit: 0, Launched: false, StartedAt: base, EndedAt: base.Add(time.Second)},
		{User: "bob", Seed: 2, Ticks: 5000, BricksHit: 3, Launched: true, StartedAt: base.Add(time.Minute), EndedAt: base.Add(2 * time.Minute)},
		{User: "", Seed: 42, Ticks: 1000, BricksHit: 1, Launched: true, StartedAt: base.Add(time.Hour), EndedAt: base.Add(time.Hour + 10*time.Second)},
	}
	for _, sess := range inputs {
		if _, err := store.SaveSession(sess); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(sessions))
	}

	// Newest first
	if sessions[0].Seed != 42 || sessions[1].Seed != 2 || sessions[2].Seed != 1 {
		t.Errorf("Unexpected order: seeds %d, %d, %d", sessions[0].Seed, sessions[1].Seed, sessions[2].Seed)
	}

	got := sessions[1]
	if got.User != "bob" || got.Ticks != 5000 || got.BricksHit != 3 || !got.Launched {
		t.Errorf("Session fields not preserved: %+v", got)
	}
	if !got.StartedAt.Equal(base.Add(time.Minute)) {
		t.Errorf("StartedAt = %v, expected %v", got.StartedAt, base.Add(time.Minute))
	}
	if got.Duration() != time.Minute {
		t.Errorf("Duration() = %v, expected 1m", got.Duration())
	}
}

func TestRecentSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := range 5 {
		start := base.Add(time.Duration(i) * time.Minute)
		if _, err := store.SaveSession(Session{Seed: int64(i), StartedAt: start, EndedAt: start}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	sessions, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].Seed != 4 {
		t.Errorf("Expected newest seed 4, got %d", sessions[0].Seed)
	}

	// Non-positive limit falls back to the default
	all, err := store.RecentSessions(0)
	if err != nil {
		t.Fatalf("RecentSessions(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 sessions with default limit, got %d", len(all))
	}
}

func TestStatsAndClear(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Sessions != 0 || stats.BestHits != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	now := time.Now()
	store.SaveSession(Session{Seed: 1, Ticks: 10, BricksHit: 2, StartedAt: now, EndedAt: now})
	store.SaveSession(Session{Seed: 2, Ticks: 30, BricksHit: 5, StartedAt: now, EndedAt: now})

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Sessions != 2 || stats.TotalTicks != 40 || stats.TotalHits != 7 || stats.BestHits != 5 {
		t.Errorf("Unexpected stats: %+v", stats)
	}

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}
	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("Expected no sessions after clear, got %d", len(sessions))
	}
}
