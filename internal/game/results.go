package game

import (
	"guessword/internal/players"
	"math"
	"slices"
)

type Outcome string

const (
	OutcomeCompleted = Outcome("completed")
	OutcomeTimeout   = Outcome("timeout")
)

// Results is the final standing sent with game-over.
type Results struct {
	Participants []players.Player `json:"participants"`
	WinnerID     string           `json:"winnerId"`
	Draw         bool             `json:"draw"`
	Reason       Outcome          `json:"reason"`
}

// finishKey orders finish times; a player who never finished sorts after any finish time.
func finishKey(p players.Player) int {
	if p.FinishTime == nil {
		return math.MaxInt
	}
	return *p.FinishTime
}

// Compare ranks two participants: higher score first, then the earlier finish.
// It returns a negative number when a ranks ahead, positive when b does and 0 for a draw.
func Compare(a, b players.Player) int {
	if a.Score != b.Score {
		if a.Score > b.Score {
			return -1
		}
		return 1
	}
	at, bt := finishKey(a), finishKey(b)
	switch {
	case at < bt:
		return -1
	case at > bt:
		return 1
	}
	return 0
}

// Winner returns the better of two participants, or nil when they are level.
func Winner(a, b players.Player) *players.Player {
	switch c := Compare(a, b); {
	case c < 0:
		return &a
	case c > 0:
		return &b
	}
	return nil
}

// Rank returns the participants sorted best first. Ties keep join order.
func Rank(list []players.Player) []players.Player {
	ranked := slices.Clone(list)
	slices.SortStableFunc(ranked, Compare)
	return ranked
}

func NewResults(list []players.Player, reason Outcome) Results {
	ranked := Rank(list)
	res := Results{Participants: ranked, Reason: reason}
	switch len(ranked) {
	case 0:
	case 1:
		res.WinnerID = ranked[0].ID
	default:
		if w := Winner(ranked[0], ranked[1]); w != nil {
			res.WinnerID = w.ID
		} else {
			res.Draw = true
		}
	}
	return res
}
