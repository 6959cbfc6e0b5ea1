package session

import (
	"guessword/internal/events"
	"guessword/internal/game"
	"guessword/internal/players"
	"guessword/internal/rooms"
	"guessword/internal/utility"
	"guessword/internal/wshub"
	"log"
	"time"
)

// WordSource hands out the challenge set for a room.
type WordSource interface {
	RandomChallengeSet(n int) []string
}

// Notifier delivers server messages to connections. Delivery must not block.
type Notifier interface {
	To(connID string, msg wshub.ServerMessage)
	ToRoom(list []players.Player, msg wshub.ServerMessage)
	ToOthers(list []players.Player, except string, msg wshub.ServerMessage)
}

// Coordinator runs the room lifecycle for two-player games. Every operation
// resolves the room through the registry and holds the room lock for the whole
// check-and-mutate step, including the resulting notifications, so messages for a
// room reach each connection in the order the room changed.
type Coordinator struct {
	Rooms *rooms.Store

	out   Notifier
	words WordSource
	cfg   game.Config
	bus   *events.Bus
	now   func() time.Time
}

func New(store *rooms.Store, out Notifier, words WordSource, cfg game.Config, bus *events.Bus) *Coordinator {
	return &Coordinator{
		Rooms: store,
		out:   out,
		words: words,
		cfg:   cfg,
		bus:   bus,
		now:   time.Now,
	}
}

// CreateRoom opens a Waiting room with connID as its only participant.
func (c *Coordinator) CreateRoom(connID, displayName string) (string, error) {
	c.leaveOthers(connID, "")

	room, err := c.Rooms.Create(connID, utility.CleanDisplayName(displayName))
	if err != nil {
		return "", err
	}

	room.Lock()
	defer room.Unlock()
	list := room.Players.Snapshot()
	c.out.To(connID, wshub.ServerMessage{
		Type:         wshub.TypeRoomCreated,
		RoomID:       room.Code,
		ConnectionID: connID,
		Participants: list,
	})
	c.publish(events.Event{Type: events.RoomCreated, RoomID: room.Code, ConnectionID: connID, Participants: list})
	log.Printf("[Session] %s created room %s\n", connID, room.Code)
	return room.Code, nil
}

// JoinRoom admits connID to the room, or renames it when it is already there.
// Any other room connID was in is left only once the join has succeeded.
func (c *Coordinator) JoinRoom(connID, code, displayName string) error {
	code = rooms.NormalizeCode(code)
	name := utility.CleanDisplayName(displayName)
	err := c.Rooms.With(code, func(room *rooms.Room) error {
		if err := room.Join(connID, name); err != nil {
			return err
		}
		list := room.Players.Snapshot()
		c.out.ToRoom(list, wshub.ServerMessage{
			Type:         wshub.TypePlayerJoined,
			RoomID:       room.Code,
			Participants: list,
		})
		c.publish(events.Event{Type: events.PlayerJoined, RoomID: room.Code, ConnectionID: connID, Participants: list})
		return nil
	})
	if err != nil {
		return err
	}
	c.leaveOthers(connID, code)
	return nil
}

// SetReady marks connID ready. The first call that sees both participants ready
// while the room is Waiting moves it to Countdown and assigns the challenge set.
func (c *Coordinator) SetReady(connID, code string) error {
	return c.Rooms.With(rooms.NormalizeCode(code), func(room *rooms.Room) error {
		if room.Players.SetReady(connID, true) == nil {
			return rooms.ErrParticipantNotFound
		}
		list := room.Players.Snapshot()
		c.out.ToRoom(list, wshub.ServerMessage{
			Type:         wshub.TypeReadyUpdate,
			RoomID:       room.Code,
			Participants: list,
		})
		c.publish(events.Event{Type: events.PlayerReady, RoomID: room.Code, ConnectionID: connID, Participants: list})
		log.Printf("[Session] %s ready in %s (%d/%d)\n", connID, room.Code, room.Players.ReadyCount(), rooms.MaxPlayers)

		if room.Phase != rooms.PhaseWaiting || room.Players.Count() != rooms.MaxPlayers || !room.Players.AllReady() {
			return nil
		}

		room.Phase = rooms.PhaseCountdown
		room.Challenges = c.words.RandomChallengeSet(c.cfg.ChallengeCount)
		c.out.ToRoom(list, wshub.ServerMessage{
			Type:          wshub.TypeStartCountdown,
			RoomID:        room.Code,
			Challenges:    room.Challenges,
			CountdownSecs: c.cfg.CountdownSecs,
		})
		c.publish(events.Event{Type: events.Countdown, RoomID: room.Code, Phase: string(room.Phase), Challenges: room.Challenges})
		log.Printf("[Session] room %s -> countdown (%d challenges)\n", room.Code, len(room.Challenges))
		return nil
	})
}

// BeginPlaying moves a Countdown room to Playing and starts the game clock.
// Signals in any other phase are ignored.
func (c *Coordinator) BeginPlaying(connID, code string) error {
	return c.Rooms.With(rooms.NormalizeCode(code), func(room *rooms.Room) error {
		if !room.Players.Has(connID) {
			return rooms.ErrParticipantNotFound
		}
		if room.Phase != rooms.PhaseCountdown {
			return nil
		}

		room.Phase = rooms.PhasePlaying
		room.StartedAt = c.now()
		roomCode, round := room.Code, room.Round
		room.Timer = time.AfterFunc(c.cfg.Duration(), func() {
			c.expire(roomCode, round)
		})

		startedAt := room.StartedAt
		list := room.Players.Snapshot()
		c.out.ToRoom(list, wshub.ServerMessage{
			Type:         wshub.TypeGameStarted,
			RoomID:       room.Code,
			Challenges:   room.Challenges,
			StartedAt:    &startedAt,
			DurationSecs: c.cfg.GameDuration,
		})
		c.publish(events.Event{Type: events.Playing, RoomID: room.Code, Phase: string(room.Phase), StartedAt: &startedAt})
		log.Printf("[Session] room %s -> playing\n", room.Code)
		return nil
	})
}

// Progress is one participant's self-reported state.
type Progress struct {
	Score    int
	Index    int
	Finished bool
}

// UpdateProgress applies a progress report from connID and relays it to the
// opponent. Reports that would lower the stored score or index are dropped.
func (c *Coordinator) UpdateProgress(connID, code string, upd Progress) error {
	return c.Rooms.With(rooms.NormalizeCode(code), func(room *rooms.Room) error {
		if !room.Players.Has(connID) {
			return rooms.ErrParticipantNotFound
		}
		if room.Phase != rooms.PhasePlaying || upd.Score < 0 || upd.Index < 0 {
			return nil
		}
		upd.Index = min(upd.Index, len(room.Challenges))

		if _, ok := room.Players.ApplyProgress(connID, upd.Score, upd.Index); !ok {
			return nil
		}
		if upd.Finished {
			room.Players.MarkFinished(connID, room.Elapsed(c.now()))
		}

		me := *room.Players.Get(connID)
		list := room.Players.Snapshot()
		c.out.ToOthers(list, connID, wshub.ServerMessage{
			Type:   wshub.TypeOpponentProgress,
			RoomID: room.Code,
			Progress: &wshub.ProgressView{
				ConnectionID:  me.ID,
				Score:         me.Score,
				ProgressIndex: me.Progress,
				Finished:      me.Finished,
			},
		})
		c.publish(events.Event{Type: events.Progress, RoomID: room.Code, ConnectionID: connID, Participants: list})
		if upd.Finished {
			log.Printf("[Session] %s finished room %s at %ds\n", connID, room.Code, me.FinishSeconds())
		}

		if room.Players.Count() == rooms.MaxPlayers && room.Players.AllFinished() {
			c.finish(room, game.OutcomeCompleted)
		}
		return nil
	})
}

// finish ends the game with the participants' current standing. The caller holds the room lock.
func (c *Coordinator) finish(room *rooms.Room, reason game.Outcome) {
	if room.Phase == rooms.PhaseFinished {
		return
	}
	room.Phase = rooms.PhaseFinished
	room.StopTimer()

	list := room.Players.Snapshot()
	results := game.NewResults(list, reason)
	c.out.ToRoom(list, wshub.ServerMessage{
		Type:    wshub.TypeGameOver,
		RoomID:  room.Code,
		Results: &results,
	})
	startedAt := room.StartedAt
	c.publish(events.Event{
		Type:       events.GameOver,
		RoomID:     room.Code,
		Phase:      string(room.Phase),
		Challenges: room.Challenges,
		Results:    &results,
		StartedAt:  &startedAt,
	})
	log.Printf("[Session] room %s -> finished (%s, winner %q)\n", room.Code, reason, results.WinnerID)
}

// expire is the game clock callback. It does nothing when the room has since
// been reset, deleted or finished.
func (c *Coordinator) expire(code string, round int) {
	err := c.Rooms.With(code, func(room *rooms.Room) error {
		if room.Round != round || room.Phase != rooms.PhasePlaying {
			return nil
		}
		room.Timer = nil
		c.finish(room, game.OutcomeTimeout)
		return nil
	})
	if err != nil {
		log.Printf("[Session] timer for %s fired after room was removed\n", code)
	}
}

// Disconnect removes connID from every room that lists it. An emptied room is
// deleted; a room with someone left is reset to Waiting.
func (c *Coordinator) Disconnect(connID string) {
	for _, room := range c.Rooms.FindByParticipant(connID) {
		c.leave(room, connID)
	}
}

// leaveOthers takes connID out of every room other than keep.
func (c *Coordinator) leaveOthers(connID, keep string) {
	for _, room := range c.Rooms.FindByParticipant(connID) {
		if room.Code != keep {
			c.leave(room, connID)
		}
	}
}

func (c *Coordinator) leave(room *rooms.Room, connID string) {
	room.Lock()
	defer room.Unlock()
	if room.Closed() || !room.Players.Remove(connID) {
		return
	}

	if room.Players.Count() == 0 {
		room.StopTimer()
		c.Rooms.Delete(room.Code)
		c.publish(events.Event{Type: events.RoomDeleted, RoomID: room.Code, ConnectionID: connID})
		log.Printf("[Session] room %s deleted, last player left\n", room.Code)
		return
	}

	wasPhase := room.Phase
	room.Reset()
	list := room.Players.Snapshot()
	if room.HostID == connID {
		room.HostID = list[0].ID
	}
	c.out.ToRoom(list, wshub.ServerMessage{
		Type:         wshub.TypePlayerLeft,
		RoomID:       room.Code,
		ConnectionID: connID,
		Participants: list,
	})
	c.publish(events.Event{Type: events.PlayerLeft, RoomID: room.Code, ConnectionID: connID, Participants: list})
	c.publish(events.Event{Type: events.RoomReset, RoomID: room.Code, Phase: string(room.Phase)})
	log.Printf("[Session] %s left room %s during %s, room reset\n", connID, room.Code, wasPhase)
}

func (c *Coordinator) publish(ev events.Event) {
	if c.bus == nil {
		return
	}
	if !c.bus.Publish(ev) {
		log.Printf("[Session] event bus full, dropped %s for %s\n", ev.Type, ev.RoomID)
	}
}
