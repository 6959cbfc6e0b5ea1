package db

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}
	ctx := context.Background()
	database, err := Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("Connect() error: %v", err)
	}
	if err := database.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() error: %v", err)
	}
	t.Cleanup(func() {
		// Clean up test data
		database.conn.Exec("DELETE FROM match_participants")
		database.conn.Exec("DELETE FROM matches")
		database.conn.Exec("DELETE FROM players")
		database.Close()
	})
	return database
}

func intPtr(v int) *int { return &v }

func TestConnect(t *testing.T) {
	database := getTestDB(t)
	if err := database.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error: %v", err)
	}
}

func TestMigrate(t *testing.T) {
	database := getTestDB(t)
	ctx := context.Background()

	// running again must be a no-op
	if err := database.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate() error: %v", err)
	}

	tables := []string{"players", "matches", "match_participants", "schema_migrations"}
	for _, table := range tables {
		var exists bool
		err := database.conn.QueryRow(`
			SELECT EXISTS (SELECT FROM information_schema.tables WHERE table_name = $1)
		`, table).Scan(&exists)
		if err != nil {
			t.Errorf("checking table %s: %v", table, err)
		}
		if !exists {
			t.Errorf("table %s does not exist", table)
		}
	}
}

func TestUpsertPlayer(t *testing.T) {
	database := getTestDB(t)
	ctx := context.Background()

	id := "550e8400-e29b-41d4-a716-446655440000"
	if err := upsertPlayer(ctx, database.conn, id, "Alice", "#ff0000"); err != nil {
		t.Fatalf("upsertPlayer() error: %v", err)
	}
	if err := upsertPlayer(ctx, database.conn, id, "Alice Updated", "#00ff00"); err != nil {
		t.Fatalf("upsertPlayer() update error: %v", err)
	}

	var name, color string
	err := database.QueryRowContext(ctx, `SELECT name, color FROM players WHERE id = $1`, id).Scan(&name, &color)
	if err != nil {
		t.Fatalf("reading player: %v", err)
	}
	if name != "Alice Updated" || color != "#00ff00" {
		t.Errorf("player = %q/%q, want Alice Updated/#00ff00", name, color)
	}
}

func TestGetMatch_NotFound(t *testing.T) {
	database := getTestDB(t)

	_, err := database.GetMatch(context.Background(), 987654321)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetMatch() error = %v, want sql.ErrNoRows", err)
	}
}

func TestRecordMatch(t *testing.T) {
	database := getTestDB(t)
	ctx := context.Background()

	started := time.Now().Add(-2 * time.Minute)
	m := Match{
		RoomCode:       "ABCDE",
		Reason:         "completed",
		WinnerID:       "conn-a",
		ChallengeCount: 10,
		StartedAt:      &started,
		EndedAt:        time.Now(),
		Participants: []MatchParticipant{
			{PlayerID: "conn-a", Name: "Alice", Color: "#112233", Score: 7, Progress: 10, Finished: true, FinishSeconds: intPtr(90), Rank: 1},
			{PlayerID: "conn-b", Name: "Bob", Color: "#445566", Score: 5, Progress: 8, Rank: 2},
		},
	}

	id, err := database.RecordMatch(ctx, m)
	if err != nil {
		t.Fatalf("RecordMatch() error: %v", err)
	}

	got, err := database.GetMatch(ctx, id)
	if err != nil {
		t.Fatalf("GetMatch() error: %v", err)
	}
	if got.WinnerID != "conn-a" || got.Draw || got.ChallengeCount != 10 || got.Reason != "completed" {
		t.Errorf("match = %+v", got)
	}
	if len(got.Participants) != 2 {
		t.Fatalf("participants = %d, want 2", len(got.Participants))
	}
	if got.Participants[0].FinishSeconds == nil || *got.Participants[0].FinishSeconds != 90 {
		t.Errorf("winner finish = %v, want 90", got.Participants[0].FinishSeconds)
	}
	if got.Participants[1].FinishSeconds != nil {
		t.Errorf("unfinished player should have no finish time")
	}
}

func TestRecordMatch_Draw(t *testing.T) {
	database := getTestDB(t)
	ctx := context.Background()

	id, err := database.RecordMatch(ctx, Match{
		RoomCode: "FGHJK",
		Reason:   "timeout",
		Draw:     true,
		Participants: []MatchParticipant{
			{PlayerID: "conn-c", Name: "Cy", Rank: 1},
			{PlayerID: "conn-d", Name: "Di", Rank: 2},
		},
	})
	if err != nil {
		t.Fatalf("RecordMatch() error: %v", err)
	}
	got, err := database.GetMatch(ctx, id)
	if err != nil {
		t.Fatalf("GetMatch() error: %v", err)
	}
	if !got.Draw || got.WinnerID != "" {
		t.Errorf("draw match = %+v", got)
	}
}
