package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arkanoid/internal/storage"
)

func testSessions() []storage.Session {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []storage.Session{
		{User: "bob", Seed: 99, Ticks: 1500, BricksHit: 4, Launched: true, StartedAt: start, EndedAt: start.Add(90 * time.Second)},
		{Seed: 1, Ticks: 20, StartedAt: start, EndedAt: start.Add(time.Second)},
	}
}

func TestSessionRows(t *testing.T) {
	rows := SessionRows(testSessions())
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if first[1] != "bob" || first[2] != "99" || first[3] != "1500" || first[4] != "4" || first[5] != "yes" || first[6] != "1m30s" {
		t.Errorf("unexpected row: %v", first)
	}
	if rows[1][1] != "local" || rows[1][5] != "no" {
		t.Errorf("unexpected row: %v", rows[1])
	}
}

func TestRenderHistory(t *testing.T) {
	out := RenderHistory(testSessions())
	for _, want := range []string{"Seed", "bob", "1500"} {
		if !strings.Contains(out, want) {
			t.Errorf("history output missing %q", want)
		}
	}

	if got := RenderHistory(nil); !strings.Contains(got, "No sessions") {
		t.Errorf("empty history = %q", got)
	}
}

func TestHistoryModelQuit(t *testing.T) {
	m := NewHistoryModel(testSessions(), 20)
	if !strings.Contains(m.View(), "Sessions (2)") {
		t.Error("view should show the session count")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the history view")
	}
}
