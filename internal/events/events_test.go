package events

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewBus(t *testing.T) {
	bus := NewBus(10)
	if bus == nil {
		t.Fatal("NewBus() returned nil")
	}
	if bus.Events == nil {
		t.Fatal("Events channel is nil")
	}
}

func TestBus_PublishStampsTime(t *testing.T) {
	bus := NewBus(1)
	bus.Publish(Event{Type: RoomCreated, RoomID: "ABCDE"})

	select {
	case ev := <-bus.Events:
		if ev.At.IsZero() {
			t.Error("Publish should set At")
		}
		if ev.RoomID != "ABCDE" {
			t.Errorf("RoomID = %q, want ABCDE", ev.RoomID)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestBus_DropsWhenFull(t *testing.T) {
	bus := NewBus(2)
	for i := 0; i < 2; i++ {
		if !bus.Publish(Event{Type: Progress}) {
			t.Fatalf("publish %d should fit in the buffer", i)
		}
	}

	done := make(chan bool)
	go func() {
		done <- bus.Publish(Event{Type: Progress})
	}()

	select {
	case ok := <-done:
		if ok {
			t.Error("publish on a full bus should report a drop")
		}
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full bus")
	}
	if bus.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", bus.Dropped())
	}
}

func TestBus_NilIsNoop(t *testing.T) {
	var bus *Bus
	if bus.Publish(Event{Type: RoomCreated}) {
		t.Error("nil bus should not accept events")
	}
}

func TestBus_RunFansOut(t *testing.T) {
	bus := NewBus(4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := make(chan Event, 4)
	b := make(chan Event, 4)
	failing := SinkFunc(func(ctx context.Context, ev Event) error { return errors.New("boom") })
	go bus.Run(ctx,
		SinkFunc(func(ctx context.Context, ev Event) error { a <- ev; return nil }),
		failing,
		SinkFunc(func(ctx context.Context, ev Event) error { b <- ev; return nil }),
	)

	bus.Publish(Event{Type: GameOver, RoomID: "R1"})

	for _, ch := range []chan Event{a, b} {
		select {
		case ev := <-ch:
			if ev.Type != GameOver {
				t.Errorf("Type = %q, want %q", ev.Type, GameOver)
			}
		case <-time.After(time.Second):
			t.Fatal("sink did not receive event")
		}
	}
}
