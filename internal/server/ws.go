package server

import (
	"context"
	"errors"
	"guessword/internal/metrics"
	"guessword/internal/wshub"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/julienschmidt/httprouter"
)

var errGuessPending = errors.New("guess already pending")

// handleWS serves one realtime connection. Its frames are handled in arrival
// order; describe frames run in the background so a slow guess never holds up
// room traffic. Only one describe per connection may be in flight.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: []string{"*"}})
	if err != nil {
		log.Printf("[WS] accept failed: %v\n", err)
		return
	}
	defer conn.CloseNow()

	client := wshub.NewClient(conn)
	s.Hub.Register(client)
	metrics.Connections.Inc()
	log.Printf("[WS] %s connected\n", client.ID)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go client.WritePump(ctx)

	s.Hub.Send(client.ID, wshub.ServerMessage{Type: wshub.TypeWelcome, ConnectionID: client.ID})

	pending := make(chan struct{}, 1)
	err = client.ReadPump(ctx, func(msg wshub.ClientMessage) {
		s.dispatch(ctx, client.ID, pending, msg)
	})
	if err != nil {
		log.Printf("[WS] %s read error: %v\n", client.ID, err)
	}

	s.Session.Disconnect(client.ID)
	s.Hub.Unregister(client.ID)
	metrics.Connections.Dec()
	log.Printf("[WS] %s disconnected\n", client.ID)
	conn.Close(websocket.StatusNormalClosure, "")
}

func (s *Server) dispatch(ctx context.Context, connID string, pending chan struct{}, msg wshub.ClientMessage) {
	if s.Cfg.Verbose {
		log.Printf("[WS] %s -> %s %s\n", connID, msg.Type, msg.RoomID)
	}
	if msg.Type != wshub.TypeDescribe {
		s.Session.Handle(connID, msg)
		return
	}
	select {
	case pending <- struct{}{}:
		go s.describeFor(ctx, connID, pending, msg)
	default:
		metrics.ErrorReplies.WithLabelValues("guess_pending").Inc()
		s.Hub.Send(connID, wshub.ErrorMessage(errGuessPending.Error()))
	}
}

// describeFor answers a describe frame to its sender only. The pending slot is
// freed before the reply goes out.
func (s *Server) describeFor(ctx context.Context, connID string, pending <-chan struct{}, msg wshub.ClientMessage) {
	res, err := s.describe(ctx, msg.TargetWord, msg.Description, msg.PriorDescriptions)
	<-pending
	switch {
	case err != nil:
		s.Hub.Send(connID, wshub.ErrorMessage(reasonFor(err)))
	case res.Cheat:
		s.Hub.Send(connID, wshub.ServerMessage{Type: wshub.TypeCheatDetected, Reason: "description gives away the word"})
	default:
		s.Hub.Send(connID, wshub.ServerMessage{Type: wshub.TypeGuessResult, Guess: res.Guess, Correct: res.Correct})
	}
}
