package wshub

import (
	"encoding/json"
	"testing"
	"time"
)

func newTestClient(id string, buf int) *Client {
	return &Client{ID: id, Send: make(chan []byte, buf)}
}

func TestRegisterAndSend(t *testing.T) {
	h := NewHub()

	c1 := newTestClient("p1", 16)
	c2 := newTestClient("p2", 16)
	h.Register(c1)
	h.Register(c2)

	if h.Count() != 2 {
		t.Fatalf("Count = %d, want 2", h.Count())
	}

	if !h.Send("p2", ServerMessage{Type: TypeOpponentProgress, Progress: &ProgressView{ConnectionID: "p1", Score: 3}}) {
		t.Fatal("Send to a registered client should succeed")
	}

	select {
	case data := <-c2.Send:
		var got ServerMessage
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got.Type != TypeOpponentProgress || got.Progress == nil || got.Progress.Score != 3 {
			t.Fatalf("unexpected message: %+v", got)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("c2 did not receive message")
	}

	select {
	case <-c1.Send:
		t.Fatal("c1 should not receive a message addressed to c2")
	default:
		// expected
	}
}

func TestSendUnknown(t *testing.T) {
	h := NewHub()
	if h.Send("nobody", ServerMessage{Type: TypeWelcome}) {
		t.Error("Send to an unknown id should report failure")
	}
}

func TestUnregisterClosesSend(t *testing.T) {
	h := NewHub()
	c1 := newTestClient("p1", 16)
	h.Register(c1)

	h.Unregister("p1")

	// c1's Send channel should be closed
	_, ok := <-c1.Send
	if ok {
		t.Fatal("c1.Send should be closed")
	}
	if h.Count() != 0 {
		t.Errorf("Count = %d, want 0", h.Count())
	}
	// a late delivery must not panic on the closed channel
	h.Send("p1", ServerMessage{Type: TypeWelcome})
}

func TestUnregisterNonexistent(t *testing.T) {
	h := NewHub()
	// Should not panic
	h.Unregister("nonexistent")
}

func TestDeliverDropsWhenFull(t *testing.T) {
	h := NewHub()

	// Channel with capacity 1
	c := newTestClient("p1", 1)
	h.Register(c)

	// Fill the channel
	c.Send <- []byte("filler")

	// This should not block: message dropped
	if h.Deliver("p1", []byte("x")) {
		t.Error("Deliver to a full channel should report a drop")
	}

	data := <-c.Send
	if string(data) != "filler" {
		t.Fatalf("expected filler, got: %s", data)
	}

	select {
	case <-c.Send:
		t.Fatal("should be empty after draining filler")
	default:
		// expected
	}
}

func TestDecode(t *testing.T) {
	msg, err := Decode([]byte(`{"type":"update-progress","roomId":"ABCDE","score":3,"progressIndex":4,"finished":true}`))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if msg.Type != TypeUpdateProgress || msg.RoomID != "ABCDE" || msg.Score != 3 || msg.ProgressIndex != 4 || !msg.Finished {
		t.Errorf("decoded = %+v", msg)
	}

	if _, err := Decode([]byte(`{"roomId":"ABCDE"}`)); err == nil {
		t.Error("frame without type should be rejected")
	}
	if _, err := Decode([]byte(`not json`)); err == nil {
		t.Error("invalid JSON should be rejected")
	}
}

func TestNewClient_UniqueIDs(t *testing.T) {
	a := NewClient(nil)
	b := NewClient(nil)
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("ids %q and %q should be distinct and non-empty", a.ID, b.ID)
	}
	if cap(a.Send) != sendBuffer {
		t.Errorf("Send capacity = %d, want %d", cap(a.Send), sendBuffer)
	}
}
