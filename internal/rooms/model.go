package rooms

import (
	"guessword/internal/players"
	"sync"
	"sync/atomic"
	"time"
)

type Phase string

const (
	PhaseWaiting   = Phase("waiting")
	PhaseCountdown = Phase("countdown")
	PhasePlaying   = Phase("playing")
	PhaseFinished  = Phase("finished")
)

// MaxPlayers is the room capacity.
const MaxPlayers = 2

// Room is one two-player session. Every field below mu is guarded by Lock/Unlock.
type Room struct {
	Code      string
	CreatedAt time.Time
	HostID    string

	mu         sync.Mutex
	Players    *players.Store
	Challenges []string
	Phase      Phase
	StartedAt  time.Time
	// Round increases on every reset so callbacks scheduled for an earlier game can tell they are stale.
	Round int
	Timer *time.Timer

	closed     atomic.Bool
	lastActive atomic.Int64
}

func newRoom(code, hostID string) *Room {
	now := time.Now()
	r := &Room{
		Code:      code,
		CreatedAt: now,
		HostID:    hostID,
		Players:   players.NewStore(),
		Phase:     PhaseWaiting,
	}
	r.lastActive.Store(now.UnixNano())
	return r
}

func (r *Room) Lock() {
	r.mu.Lock()
}

func (r *Room) Unlock() {
	r.mu.Unlock()
}

// Closed reports whether the room has been removed from the registry.
// A caller that resolved the room before removal must treat it as gone.
func (r *Room) Closed() bool {
	return r.closed.Load()
}

func (r *Room) Touch() {
	r.lastActive.Store(time.Now().UnixNano())
}

func (r *Room) LastActive() time.Time {
	return time.Unix(0, r.lastActive.Load())
}

// Join adds a participant, or renames it when the connection is already in the room.
// The caller must hold the room lock.
func (r *Room) Join(connID, name string) error {
	if r.Closed() {
		return ErrRoomNotFound
	}
	if r.Players.Has(connID) {
		r.Players.Rename(connID, name)
		return nil
	}
	if r.Phase != PhaseWaiting {
		return ErrRoomNotJoinable
	}
	if r.Players.Count() >= MaxPlayers {
		return ErrRoomFull
	}
	r.Players.Add(connID, name)
	return nil
}

// StopTimer cancels the game clock, if any. The caller must hold the room lock.
func (r *Room) StopTimer() {
	if r.Timer != nil {
		r.Timer.Stop()
		r.Timer = nil
	}
}

// Reset returns the room to Waiting, dropping the challenge set and all readiness
// and progress. The caller must hold the room lock.
func (r *Room) Reset() {
	r.StopTimer()
	r.Phase = PhaseWaiting
	r.Challenges = nil
	r.StartedAt = time.Time{}
	r.Round++
	r.Players.ResetAll()
}

// Elapsed returns whole seconds since the game started.
func (r *Room) Elapsed(now time.Time) int {
	if r.StartedAt.IsZero() {
		return 0
	}
	secs := int(now.Sub(r.StartedAt) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}
