package rooms

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// Store is the registry of live rooms. It is the only owner of Room values;
// callers re-resolve a room by code for every operation.
type Store struct {
	mu    sync.Mutex
	rooms map[string]*Room
	ttl   time.Duration
}

// NewStore creates an empty registry. When ttl is positive, rooms idle for longer
// than ttl are swept in the background.
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		rooms: make(map[string]*Room),
		ttl:   ttl,
	}
	if ttl > 0 {
		go s.sweepStale()
	}
	return s
}

// Create registers a new Waiting room with the requester as its only player.
func (s *Store) Create(hostID, name string) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Try up to 10 times to generate a unique code
	for range 10 {
		code, err := GenerateCode()
		if err != nil {
			return nil, fmt.Errorf("generating room code: %w", err)
		}
		if _, exists := s.rooms[code]; exists {
			continue
		}

		room := newRoom(code, hostID)
		room.Players.Add(hostID, name)
		s.rooms[code] = room
		return room, nil
	}
	return nil, fmt.Errorf("failed to generate unique room code after 10 attempts")
}

func (s *Store) Get(code string) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[code]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// With resolves code and runs fn while holding that room's lock. A room removed
// between lookup and locking yields ErrRoomNotFound.
func (s *Store) With(code string, fn func(*Room) error) error {
	room, err := s.Get(code)
	if err != nil {
		return err
	}
	room.Lock()
	defer room.Unlock()
	if room.Closed() {
		return ErrRoomNotFound
	}
	room.Touch()
	return fn(room)
}

// Delete removes the room and marks it closed. Deleting an unknown code is a no-op.
func (s *Store) Delete(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if room, ok := s.rooms[code]; ok {
		room.closed.Store(true)
		delete(s.rooms, code)
	}
}

func (s *Store) List() []*Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		list = append(list, r)
	}
	return list
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rooms)
}

// FindByParticipant returns every live room that currently lists connID.
func (s *Store) FindByParticipant(connID string) []*Room {
	var found []*Room
	for _, r := range s.List() {
		if r.Players.Has(connID) {
			found = append(found, r)
		}
	}
	return found
}

func (s *Store) sweepStale() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		s.sweep(time.Now())
	}
}

func (s *Store) sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for code, room := range s.rooms {
		if now.Sub(room.LastActive()) > s.ttl {
			room.closed.Store(true)
			delete(s.rooms, code)
			removed++
			log.Printf("[Rooms] Swept idle room %s\n", code)
		}
	}
	return removed
}
