package server

import (
	"database/sql"
	"errors"
	"guessword/internal/analytics"
	"log"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
)

func limitParam(r *http.Request, def, max int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		return min(v, max)
	}
	return def
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if s.DB == nil {
		writeError(w, http.StatusServiceUnavailable, "analytics requires a database connection")
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		category = "score"
	}

	q := analytics.NewQueries(s.DB)
	entries, err := q.GetLeaderboard(r.Context(), category, limitParam(r, 10, 100))
	if errors.Is(err, analytics.ErrUnknownCategory) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.Printf("[Analytics] leaderboard error: %v\n", err)
		writeError(w, http.StatusInternalServerError, "error loading leaderboard")
		return
	}
	if entries == nil {
		entries = []analytics.LeaderboardEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"category": category, "entries": entries})
}

func (s *Server) handleRecentMatches(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if s.DB == nil {
		writeError(w, http.StatusServiceUnavailable, "analytics requires a database connection")
		return
	}

	q := analytics.NewQueries(s.DB)
	matches, err := q.GetRecentMatches(r.Context(), limitParam(r, 20, 100))
	if err != nil {
		log.Printf("[Analytics] recent matches error: %v\n", err)
		writeError(w, http.StatusInternalServerError, "error loading matches")
		return
	}
	if matches == nil {
		matches = []analytics.MatchSummary{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"matches": matches})
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if s.DB == nil {
		writeError(w, http.StatusServiceUnavailable, "analytics requires a database connection")
		return
	}
	id, err := strconv.ParseInt(ps.ByName("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid match id")
		return
	}

	m, err := s.DB.GetMatch(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "match not found")
		return
	}
	if err != nil {
		log.Printf("[Analytics] match %d error: %v\n", id, err)
		writeError(w, http.StatusInternalServerError, "error loading match")
		return
	}
	writeJSON(w, http.StatusOK, m)
}
