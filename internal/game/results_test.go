package game

import (
	"guessword/internal/players"
	"testing"
	"time"
)

func finished(id string, score, secs int) players.Player {
	return players.Player{ID: id, Score: score, Finished: true, FinishTime: &secs}
}

func TestWinner_TieBreaks(t *testing.T) {
	cases := []struct {
		name string
		a, b players.Player
		want string // "" means draw
	}{
		{"same score, faster second", finished("a", 5, 60), finished("b", 5, 45), "b"},
		{"identical", finished("a", 5, 60), finished("b", 5, 60), ""},
		{"higher score beats faster", finished("a", 7, 90), finished("b", 9, 30), "b"},
		{"higher score first", finished("a", 9, 90), finished("b", 7, 30), "a"},
	}
	for _, c := range cases {
		w := Winner(c.a, c.b)
		got := ""
		if w != nil {
			got = w.ID
		}
		if got != c.want {
			t.Errorf("%s: Winner = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestWinner_UnfinishedRanksBehindFinishedOnEqualScore(t *testing.T) {
	a := players.Player{ID: "a", Score: 4}
	b := finished("b", 4, 290)

	w := Winner(a, b)
	if w == nil || w.ID != "b" {
		t.Fatalf("Winner = %+v, want b", w)
	}

	c := players.Player{ID: "c", Score: 4}
	if Winner(a, c) != nil {
		t.Error("two unfinished players with equal score should draw")
	}

	d := players.Player{ID: "d", Score: 6}
	if w := Winner(b, d); w == nil || w.ID != "d" {
		t.Errorf("unfinished higher score should still win, got %+v", w)
	}
}

func TestCompare_Symmetric(t *testing.T) {
	a := finished("a", 5, 60)
	b := finished("b", 5, 45)
	if Compare(a, b) <= 0 || Compare(b, a) >= 0 {
		t.Errorf("Compare not antisymmetric: %d / %d", Compare(a, b), Compare(b, a))
	}
	if Compare(a, a) != 0 {
		t.Error("Compare(a, a) should be 0")
	}
}

func TestRank(t *testing.T) {
	list := []players.Player{finished("a", 5, 60), finished("b", 7, 80)}
	ranked := Rank(list)
	if ranked[0].ID != "b" || ranked[1].ID != "a" {
		t.Errorf("Rank order = %s,%s, want b,a", ranked[0].ID, ranked[1].ID)
	}
	if list[0].ID != "a" {
		t.Error("Rank should not reorder its input")
	}
}

func TestNewResults(t *testing.T) {
	res := NewResults([]players.Player{finished("a", 5, 40), finished("b", 7, 80)}, OutcomeCompleted)
	if res.WinnerID != "b" || res.Draw {
		t.Errorf("results = %+v, want winner b", res)
	}
	if res.Reason != OutcomeCompleted {
		t.Errorf("Reason = %q, want %q", res.Reason, OutcomeCompleted)
	}

	draw := NewResults([]players.Player{finished("a", 5, 40), finished("b", 5, 40)}, OutcomeTimeout)
	if !draw.Draw || draw.WinnerID != "" {
		t.Errorf("results = %+v, want draw", draw)
	}

	solo := NewResults([]players.Player{finished("a", 1, 10)}, OutcomeTimeout)
	if solo.WinnerID != "a" {
		t.Errorf("solo WinnerID = %q, want a", solo.WinnerID)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ChallengeCount != 10 {
		t.Errorf("ChallengeCount = %d, want 10", cfg.ChallengeCount)
	}
	if cfg.GameDuration != 300 {
		t.Errorf("GameDuration = %d, want 300", cfg.GameDuration)
	}
	if cfg.Duration() != 5*time.Minute {
		t.Errorf("Duration() = %v, want 5m", cfg.Duration())
	}
}
