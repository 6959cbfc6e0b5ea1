package broadcast

import (
	"encoding/json"
	"guessword/internal/players"
	"guessword/internal/wshub"
	"log"
)

// Deliverer queues an encoded frame for one connection without blocking.
type Deliverer interface {
	Deliver(connID string, data []byte) bool
}

// Broadcaster fans server messages out to the participants of a room.
type Broadcaster struct {
	out Deliverer
}

func NewBroadcaster(out Deliverer) *Broadcaster {
	return &Broadcaster{out: out}
}

// To sends msg to a single connection.
func (b *Broadcaster) To(connID string, msg wshub.ServerMessage) {
	data, ok := encode(msg)
	if !ok {
		return
	}
	b.out.Deliver(connID, data)
}

// ToRoom sends msg to every participant in list.
func (b *Broadcaster) ToRoom(list []players.Player, msg wshub.ServerMessage) {
	b.ToOthers(list, "", msg)
}

// ToOthers sends msg to every participant except the one with id except.
func (b *Broadcaster) ToOthers(list []players.Player, except string, msg wshub.ServerMessage) {
	data, ok := encode(msg)
	if !ok {
		return
	}
	for _, p := range list {
		if p.ID == except {
			continue
		}
		if !b.out.Deliver(p.ID, data) {
			log.Printf("[Broadcast] %s not delivered to %s\n", msg.Type, p.ID)
		}
	}
}

func encode(msg wshub.ServerMessage) ([]byte, bool) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[Broadcast] Marshal error: %v\n", err)
		return nil, false
	}
	return data, true
}
