package server

import (
	"guessword/internal/metrics"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// Handler returns the full HTTP surface wrapped in CORS handling.
func (s *Server) Handler() http.Handler {
	mux := httprouter.New()

	mux.PanicHandler = func(w http.ResponseWriter, r *http.Request, i any) {
		log.Printf("[Server] panic serving %s: %v\n", r.URL.Path, i)
		writeError(w, http.StatusInternalServerError, "internal error")
	}

	mux.GET("/ws", s.handleWS)
	mux.GET("/health", s.handleHealth)
	mux.Handler(http.MethodGet, "/metrics", metrics.Handler())

	mux.GET("/api/random-word", s.handleRandomWord)
	mux.GET("/api/words", s.handleWords)
	mux.GET("/api/challenge-set", s.handleChallengeSet)
	mux.POST("/api/check-cheat", s.handleCheckCheat)
	mux.POST("/api/guess", s.handleGuess)

	mux.GET("/rooms/:code", s.handleRoomInfo)
	mux.GET("/rooms/:code/qr", s.handleRoomQR)

	mux.GET("/analytics/leaderboard", s.handleLeaderboard)
	mux.GET("/analytics/matches", s.handleRecentMatches)
	mux.GET("/analytics/matches/:id", s.handleMatch)

	return cors.Default().Handler(mux)
}
