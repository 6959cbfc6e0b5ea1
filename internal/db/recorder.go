package db

import (
	"context"
	"guessword/internal/events"
	"log"
	"time"
)

// MatchWriter persists finished matches.
type MatchWriter interface {
	RecordMatch(ctx context.Context, m Match) (int64, error)
}

// Recorder is an events sink that queues game-over events and writes them in
// the background, so a slow database never holds up the event bus.
type Recorder struct {
	store   MatchWriter
	pending chan Match
}

func NewRecorder(store MatchWriter, size int) *Recorder {
	return &Recorder{
		store:   store,
		pending: make(chan Match, size),
	}
}

// Write queues ev when it ends a match. Other events are ignored.
func (r *Recorder) Write(_ context.Context, ev events.Event) error {
	m, ok := MatchFromEvent(ev)
	if !ok {
		return nil
	}
	select {
	case r.pending <- m:
	default:
		log.Printf("[DB] match buffer full, dropping match for room %s\n", m.RoomCode)
	}
	return nil
}

// Run drains the queue until ctx is cancelled, then flushes what is left.
func (r *Recorder) Run(ctx context.Context) {
	for {
		select {
		case m := <-r.pending:
			r.record(ctx, m)
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			for {
				select {
				case m := <-r.pending:
					r.record(flushCtx, m)
				default:
					cancel()
					return
				}
			}
		}
	}
}

func (r *Recorder) record(ctx context.Context, m Match) {
	id, err := r.store.RecordMatch(ctx, m)
	if err != nil {
		log.Printf("[DB] RecordMatch error: %v\n", err)
		return
	}
	log.Printf("[DB] Recorded match %d for room %s\n", id, m.RoomCode)
}
