package broadcast

import (
	"encoding/json"
	"guessword/internal/players"
	"guessword/internal/wshub"
	"sync"
	"testing"
)

type recorder struct {
	mu   sync.Mutex
	got  map[string][]wshub.ServerMessage
	down map[string]bool
}

func newRecorder() *recorder {
	return &recorder{got: make(map[string][]wshub.ServerMessage), down: make(map[string]bool)}
}

func (r *recorder) Deliver(id string, data []byte) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.down[id] {
		return false
	}
	var msg wshub.ServerMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return false
	}
	r.got[id] = append(r.got[id], msg)
	return true
}

func roster(ids ...string) []players.Player {
	list := make([]players.Player, 0, len(ids))
	for _, id := range ids {
		list = append(list, players.Player{ID: id})
	}
	return list
}

func TestBroadcaster_To(t *testing.T) {
	rec := newRecorder()
	b := NewBroadcaster(rec)

	b.To("a", wshub.ServerMessage{Type: wshub.TypeWelcome, ConnectionID: "a"})

	if len(rec.got["a"]) != 1 || rec.got["a"][0].ConnectionID != "a" {
		t.Fatalf("a received %+v", rec.got["a"])
	}
}

func TestBroadcaster_ToRoom(t *testing.T) {
	rec := newRecorder()
	b := NewBroadcaster(rec)

	b.ToRoom(roster("a", "b"), wshub.ServerMessage{Type: wshub.TypeReadyUpdate, RoomID: "ABCDE"})

	for _, id := range []string{"a", "b"} {
		msgs := rec.got[id]
		if len(msgs) != 1 || msgs[0].Type != wshub.TypeReadyUpdate || msgs[0].RoomID != "ABCDE" {
			t.Errorf("%s received %+v", id, msgs)
		}
	}
}

func TestBroadcaster_ToOthers(t *testing.T) {
	rec := newRecorder()
	b := NewBroadcaster(rec)

	b.ToOthers(roster("a", "b"), "a", wshub.ServerMessage{Type: wshub.TypeOpponentProgress})

	if len(rec.got["a"]) != 0 {
		t.Errorf("sender should not receive its own progress, got %+v", rec.got["a"])
	}
	if len(rec.got["b"]) != 1 {
		t.Errorf("b received %d messages, want 1", len(rec.got["b"]))
	}
}

func TestBroadcaster_SkipsUnreachable(t *testing.T) {
	rec := newRecorder()
	rec.down["a"] = true
	b := NewBroadcaster(rec)

	b.ToRoom(roster("a", "b"), wshub.ServerMessage{Type: wshub.TypePlayerLeft})

	if len(rec.got["b"]) != 1 {
		t.Errorf("b should still receive the message when a is unreachable")
	}
}
