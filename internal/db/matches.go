package db

import (
	"context"
	"database/sql"
	"fmt"
	"guessword/internal/events"
	"guessword/internal/game"
	"time"
)

// Match is one finished game as stored in the history.
type Match struct {
	ID             int64
	RoomCode       string
	Reason         game.Outcome
	WinnerID       string
	Draw           bool
	ChallengeCount int
	StartedAt      *time.Time
	EndedAt        time.Time
	Participants   []MatchParticipant
}

type MatchParticipant struct {
	PlayerID      string
	Name          string
	Color         string
	Score         int
	Progress      int
	Finished      bool
	FinishSeconds *int
	Rank          int
}

// MatchFromEvent builds the history row for a game-over event.
func MatchFromEvent(ev events.Event) (Match, bool) {
	if ev.Type != events.GameOver || ev.Results == nil {
		return Match{}, false
	}
	m := Match{
		RoomCode:       ev.RoomID,
		Reason:         ev.Results.Reason,
		WinnerID:       ev.Results.WinnerID,
		Draw:           ev.Results.Draw,
		ChallengeCount: len(ev.Challenges),
		StartedAt:      ev.StartedAt,
		EndedAt:        ev.At,
	}
	for i, p := range ev.Results.Participants {
		m.Participants = append(m.Participants, MatchParticipant{
			PlayerID:      p.ID,
			Name:          p.Name,
			Color:         p.Color,
			Score:         p.Score,
			Progress:      p.Progress,
			Finished:      p.Finished,
			FinishSeconds: p.FinishTime,
			Rank:          i + 1,
		})
	}
	return m, true
}

// RecordMatch stores a match and its participants in one transaction and returns the match id.
func (d *DB) RecordMatch(ctx context.Context, m Match) (int64, error) {
	tx, err := d.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, p := range m.Participants {
		if err := upsertPlayer(ctx, tx, p.PlayerID, p.Name, p.Color); err != nil {
			return 0, err
		}
	}

	winner := sql.NullString{String: m.WinnerID, Valid: m.WinnerID != ""}
	ended := m.EndedAt
	if ended.IsZero() {
		ended = time.Now()
	}
	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO matches (room_code, reason, winner_id, draw, challenge_count, started_at, ended_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, m.RoomCode, string(m.Reason), winner, m.Draw, m.ChallengeCount, m.StartedAt, ended).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting match: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO match_participants (match_id, player_id, name, score, progress, finished, finish_seconds, rank)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, p := range m.Participants {
		if _, err := stmt.ExecContext(ctx, id, p.PlayerID, p.Name, p.Score, p.Progress, p.Finished, p.FinishSeconds, p.Rank); err != nil {
			return 0, fmt.Errorf("inserting match participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing match: %w", err)
	}
	return id, nil
}

// GetMatch loads a match with its participants in rank order.
func (d *DB) GetMatch(ctx context.Context, id int64) (*Match, error) {
	m := Match{ID: id}
	var winner sql.NullString
	var reason string
	err := d.conn.QueryRowContext(ctx, `
		SELECT room_code, reason, winner_id, draw, challenge_count, started_at, ended_at
		FROM matches WHERE id = $1
	`, id).Scan(&m.RoomCode, &reason, &winner, &m.Draw, &m.ChallengeCount, &m.StartedAt, &m.EndedAt)
	if err != nil {
		return nil, fmt.Errorf("getting match: %w", err)
	}
	m.Reason = game.Outcome(reason)
	m.WinnerID = winner.String

	rows, err := d.conn.QueryContext(ctx, `
		SELECT mp.player_id, mp.name, p.color, mp.score, mp.progress, mp.finished, mp.finish_seconds, mp.rank
		FROM match_participants mp
		JOIN players p ON p.id = mp.player_id
		WHERE mp.match_id = $1
		ORDER BY mp.rank
	`, id)
	if err != nil {
		return nil, fmt.Errorf("getting match participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p MatchParticipant
		var finish sql.NullInt64
		if err := rows.Scan(&p.PlayerID, &p.Name, &p.Color, &p.Score, &p.Progress, &p.Finished, &finish, &p.Rank); err != nil {
			return nil, err
		}
		if finish.Valid {
			secs := int(finish.Int64)
			p.FinishSeconds = &secs
		}
		m.Participants = append(m.Participants, p)
	}
	return &m, rows.Err()
}
