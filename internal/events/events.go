package events

import (
	"context"
	"guessword/internal/game"
	"guessword/internal/players"
	"log"
	"sync/atomic"
	"time"
)

type Type string

const (
	RoomCreated  = Type("room-created")
	PlayerJoined = Type("player-joined")
	PlayerReady  = Type("player-ready")
	Countdown    = Type("countdown")
	Playing      = Type("playing")
	Progress     = Type("progress")
	GameOver     = Type("game-over")
	PlayerLeft   = Type("player-left")
	RoomReset    = Type("room-reset")
	RoomDeleted  = Type("room-deleted")
)

// Event records one room lifecycle change.
type Event struct {
	Type         Type             `json:"type"`
	RoomID       string           `json:"roomId"`
	ConnectionID string           `json:"connectionId,omitempty"`
	At           time.Time        `json:"at"`
	Phase        string           `json:"phase,omitempty"`
	Participants []players.Player `json:"participants,omitempty"`
	Challenges   []string         `json:"challenges,omitempty"`
	Results      *game.Results    `json:"results,omitempty"`
	StartedAt    *time.Time       `json:"startedAt,omitempty"`
}

// Sink consumes events off the bus.
type Sink interface {
	Write(ctx context.Context, ev Event) error
}

type SinkFunc func(ctx context.Context, ev Event) error

func (f SinkFunc) Write(ctx context.Context, ev Event) error {
	return f(ctx, ev)
}

// Bus decouples room handlers from slow consumers. Publishing never blocks.
type Bus struct {
	Events  chan Event
	dropped atomic.Int64
}

func NewBus(size int) *Bus {
	return &Bus{
		Events: make(chan Event, size),
	}
}

// Publish queues ev, dropping it when the buffer is full. A nil bus discards everything.
func (b *Bus) Publish(ev Event) bool {
	if b == nil {
		return false
	}
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	select {
	case b.Events <- ev:
		return true
	default:
		b.dropped.Add(1)
		return false
	}
}

func (b *Bus) Dropped() int64 {
	if b == nil {
		return 0
	}
	return b.dropped.Load()
}

// Run hands every event to each sink in turn until ctx is cancelled.
func (b *Bus) Run(ctx context.Context, sinks ...Sink) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-b.Events:
			for _, s := range sinks {
				if err := s.Write(ctx, ev); err != nil {
					log.Printf("[Events] sink error for %s/%s: %v\n", ev.RoomID, ev.Type, err)
				}
			}
		}
	}
}
