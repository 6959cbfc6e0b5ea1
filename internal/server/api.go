package server

import (
	"context"
	"encoding/json"
	"errors"
	"guessword/internal/cheat"
	"guessword/internal/guess"
	"guessword/internal/metrics"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
)

const maxChallengeSet = 50

var errEmptyDescription = errors.New("description is required")

// GuessResult is the outcome of one description.
type GuessResult struct {
	Guess   string `json:"guess,omitempty"`
	Correct bool   `json:"correct"`
	Cheat   bool   `json:"cheat"`
}

// describe checks description against target, then asks the guess service.
// With no target the cheat check and correctness are skipped.
func (s *Server) describe(ctx context.Context, target, description string, prior []string) (GuessResult, error) {
	if strings.TrimSpace(description) == "" {
		return GuessResult{}, errEmptyDescription
	}
	if target != "" && s.Detector.IsCheat(target, description) {
		metrics.GuessRequests.WithLabelValues("cheat").Inc()
		return GuessResult{Cheat: true}, nil
	}

	start := time.Now()
	word, err := s.Guesser.Guess(ctx, description, prior)
	metrics.GuessLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GuessRequests.WithLabelValues("unavailable").Inc()
		return GuessResult{}, err
	}
	metrics.GuessRequests.WithLabelValues("ok").Inc()

	res := GuessResult{Guess: word}
	if target != "" {
		res.Correct = cheat.Normalize(word) == cheat.Normalize(target)
	}
	return res, nil
}

func reasonFor(err error) string {
	if errors.Is(err, guess.ErrUnavailable) {
		return guess.ErrUnavailable.Error()
	}
	return err.Error()
}

func (s *Server) handleRandomWord(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"word": s.Words.RandomChallenge()})
}

func (s *Server) handleWords(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, s.Words.Words())
}

func (s *Server) handleChallengeSet(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	n := s.Cfg.ChallengeCount
	if raw := r.URL.Query().Get("n"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > maxChallengeSet {
			writeError(w, http.StatusBadRequest, "n must be between 1 and 50")
			return
		}
		n = v
	}
	writeJSON(w, http.StatusOK, map[string][]string{"words": s.Words.RandomChallengeSet(n)})
}

type checkCheatRequest struct {
	OriginalWord string `json:"originalWord"`
	Description  string `json:"description"`
}

func (s *Server) handleCheckCheat(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req checkCheatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.OriginalWord) == "" || strings.TrimSpace(req.Description) == "" {
		writeError(w, http.StatusBadRequest, "originalWord and description are required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"isCheat": s.Detector.IsCheat(req.OriginalWord, req.Description)})
}

type guessRequest struct {
	Description     string   `json:"description"`
	AllDescriptions []string `json:"allDescriptions"`
	TargetWord      string   `json:"targetWord"`
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req guessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := s.describe(r.Context(), req.TargetWord, req.Description, req.AllDescriptions)
	switch {
	case errors.Is(err, errEmptyDescription):
		writeError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		writeError(w, http.StatusServiceUnavailable, reasonFor(err))
	default:
		writeJSON(w, http.StatusOK, res)
	}
}
