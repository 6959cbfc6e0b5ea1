package analytics

import (
	"context"
	"errors"
	"fmt"
	"guessword/internal/db"
	"strings"

	"github.com/lib/pq"
)

var ErrUnknownCategory = errors.New("unknown leaderboard category")

// Categories lists the supported leaderboards.
var Categories = []string{"score", "wins", "speed"}

type Queries struct {
	DB *db.DB
}

func NewQueries(database *db.DB) *Queries {
	return &Queries{DB: database}
}

// leaderboardQuery returns the SQL for a category. Players are grouped by
// display name since connection ids do not outlive a session.
func leaderboardQuery(category string) (string, error) {
	switch category {
	case "score":
		return `
			SELECT name, MAX(score) AS value, COUNT(*) AS matches
			FROM match_participants
			WHERE name <> ''
			GROUP BY name
			ORDER BY value DESC, matches ASC
			LIMIT $1`, nil
	case "wins":
		return `
			SELECT mp.name, COUNT(*) FILTER (WHERE m.winner_id = mp.player_id) AS value, COUNT(*) AS matches
			FROM match_participants mp
			JOIN matches m ON m.id = mp.match_id
			WHERE mp.name <> ''
			GROUP BY mp.name
			ORDER BY value DESC, matches ASC
			LIMIT $1`, nil
	case "speed":
		return `
			SELECT name, MIN(finish_seconds) AS value, COUNT(*) AS matches
			FROM match_participants
			WHERE name <> '' AND finish_seconds IS NOT NULL
			GROUP BY name
			ORDER BY value ASC, matches DESC
			LIMIT $1`, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
}

func (q *Queries) GetLeaderboard(ctx context.Context, category string, limit int) ([]LeaderboardEntry, error) {
	query, err := leaderboardQuery(category)
	if err != nil {
		return nil, err
	}

	rows, err := q.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	rank := 1
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.PlayerName, &e.Value, &e.Matches); err != nil {
			return nil, fmt.Errorf("scanning leaderboard row: %w", err)
		}
		e.Rank = rank
		rank++
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetRecentMatches returns the latest matches, newest first.
func (q *Queries) GetRecentMatches(ctx context.Context, limit int) ([]MatchSummary, error) {
	rows, err := q.DB.QueryContext(ctx, `
		SELECT m.id, m.room_code, m.reason, COALESCE(w.name, ''), m.draw, m.started_at, m.ended_at,
			array_agg(mp.name ORDER BY mp.rank), array_agg(mp.score ORDER BY mp.rank)
		FROM matches m
		JOIN match_participants mp ON mp.match_id = m.id
		LEFT JOIN match_participants w ON w.match_id = m.id AND w.player_id = m.winner_id
		GROUP BY m.id, w.name
		ORDER BY m.ended_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent matches: %w", err)
	}
	defer rows.Close()

	var out []MatchSummary
	for rows.Next() {
		var s MatchSummary
		var names pq.StringArray
		var scores pq.Int64Array
		if err := rows.Scan(&s.ID, &s.RoomCode, &s.Reason, &s.Winner, &s.Draw, &s.StartedAt, &s.EndedAt, &names, &scores); err != nil {
			return nil, fmt.Errorf("scanning match row: %w", err)
		}
		s.Players = []string(names)
		for _, v := range scores {
			s.Scores = append(s.Scores, int(v))
		}
		s.Summary = s.Describe()
		out = append(out, s)
	}
	return out, rows.Err()
}

// Describe renders a one-line result for logs and plain-text clients.
func (s MatchSummary) Describe() string {
	parts := make([]string, len(s.Players))
	for i, name := range s.Players {
		score := 0
		if i < len(s.Scores) {
			score = s.Scores[i]
		}
		if name == "" {
			name = "anonymous"
		}
		parts[i] = fmt.Sprintf("%s %d", name, score)
	}
	result := strings.Join(parts, " vs ")
	switch {
	case s.Draw:
		return result + " (draw)"
	case s.Winner != "":
		return result + " (" + s.Winner + " wins)"
	default:
		return result
	}
}
