package analytics

import "time"

type LeaderboardEntry struct {
	PlayerName string `json:"playerName"`
	Value      int    `json:"value"`
	Matches    int    `json:"matches"`
	Rank       int    `json:"rank"`
}

type MatchSummary struct {
	ID        int64      `json:"id"`
	RoomCode  string     `json:"roomCode"`
	Reason    string     `json:"reason"`
	Winner    string     `json:"winner"`
	Draw      bool       `json:"draw"`
	Players   []string   `json:"players"`
	Scores    []int      `json:"scores"`
	StartedAt *time.Time `json:"startedAt,omitempty"`
	EndedAt   time.Time  `json:"endedAt"`
	Summary   string     `json:"summary"`
}
