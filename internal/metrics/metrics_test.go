package metrics

import (
	"context"
	"guessword/internal/events"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSink_CountsByType(t *testing.T) {
	before := testutil.ToFloat64(RoomEvents.WithLabelValues(string(events.GameOver)))

	var s Sink
	s.Write(context.Background(), events.Event{Type: events.GameOver})
	s.Write(context.Background(), events.Event{Type: events.GameOver})

	after := testutil.ToFloat64(RoomEvents.WithLabelValues(string(events.GameOver)))
	if after-before != 2 {
		t.Errorf("game-over count grew by %v, want 2", after-before)
	}
}

func TestRegisterRoomGauge_Once(t *testing.T) {
	RegisterRoomGauge(func() int { return 3 })
	// a second registration must not panic on duplicate collectors
	RegisterRoomGauge(func() int { return 5 })

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if !strings.Contains(rec.Body.String(), "guessword_rooms 3") {
		t.Errorf("metrics output missing room gauge:\n%s", rec.Body.String())
	}
}
