package metrics

import (
	"context"
	"guessword/internal/events"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Connections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "guessword_connections",
		Help: "Open websocket connections.",
	})
	RoomEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guessword_room_events_total",
		Help: "Room lifecycle events by type.",
	}, []string{"type"})
	GuessRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guessword_guess_requests_total",
		Help: "Guess service calls by outcome.",
	}, []string{"outcome"})
	GuessLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "guessword_guess_seconds",
		Help:    "Guess service latency.",
		Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16},
	})
	ErrorReplies = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guessword_error_replies_total",
		Help: "error-msg frames sent to clients by reason.",
	}, []string{"reason"})
)

var roomGaugeOnce sync.Once

// RegisterRoomGauge exposes the live room count. Only the first call registers.
func RegisterRoomGauge(count func() int) {
	roomGaugeOnce.Do(func() {
		promauto.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "guessword_rooms",
			Help: "Live rooms.",
		}, func() float64 { return float64(count()) })
	})
}

// Sink counts bus events.
type Sink struct{}

func (Sink) Write(_ context.Context, ev events.Event) error {
	RoomEvents.WithLabelValues(string(ev.Type)).Inc()
	return nil
}

func Handler() http.Handler {
	return promhttp.Handler()
}
