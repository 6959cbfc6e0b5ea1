package players

import (
	"guessword/internal/utility"
	"sync"
)

// Store is the ordered roster of a single room. Join order is preserved.
type Store struct {
	mu      sync.Mutex
	players []*Player
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Add(id string, name string) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	player := &Player{ID: id, Name: name, Color: utility.RandomColorHex()}
	s.players = append(s.players, player)
	return player
}

func (s *Store) find(id string) (int, *Player) {
	for i, p := range s.players {
		if p.ID == id {
			return i, p
		}
	}
	return -1, nil
}

func (s *Store) Get(id string) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, p := s.find(id)
	return p
}

// Snapshot returns value copies safe to hand to encoders after the room lock is released.
func (s *Store) Snapshot() []Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Player, 0, len(s.players))
	for _, p := range s.players {
		c := *p
		if p.FinishTime != nil {
			ft := *p.FinishTime
			c.FinishTime = &ft
		}
		out = append(out, c)
	}
	return out
}

func (s *Store) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, p := s.find(id)
	return p != nil
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.players)
}

func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, _ := s.find(id)
	if i < 0 {
		return false
	}
	s.players = append(s.players[:i], s.players[i+1:]...)
	return true
}

func (s *Store) Rename(id string, name string) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, p := s.find(id); p != nil {
		p.Name = name
		return p
	}
	return nil
}

func (s *Store) SetReady(id string, isReady bool) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, p := s.find(id); p != nil {
		p.Ready = isReady
		return p
	}
	return nil
}

func (s *Store) ReadyCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, p := range s.players {
		if p.Ready {
			n++
		}
	}
	return n
}

func (s *Store) AllReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.players) == 0 {
		return false
	}

	for _, player := range s.players {
		if !player.Ready {
			return false
		}
	}
	return true
}

// ApplyProgress stores a new score and progress index. Updates that would move
// either value backwards are ignored and reported as not applied.
func (s *Store) ApplyProgress(id string, score, progress int) (*Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, p := s.find(id)
	if p == nil {
		return nil, false
	}
	if score < p.Score || progress < p.Progress {
		return p, false
	}
	p.Score = score
	p.Progress = progress
	return p, true
}

// MarkFinished sets the finish time once. Later calls leave the first time in place.
func (s *Store) MarkFinished(id string, seconds int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, p := s.find(id)
	if p == nil || p.Finished {
		return false
	}
	p.Finished = true
	p.FinishTime = &seconds
	return true
}

func (s *Store) AllFinished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.players) == 0 {
		return false
	}
	for _, p := range s.players {
		if !p.Finished {
			return false
		}
	}
	return true
}

// ResetAll clears readiness and per-game progress for everyone still in the room.
func (s *Store) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.players {
		p.Score = 0
		p.Ready = false
		p.Progress = 0
		p.Finished = false
		p.FinishTime = nil
	}
}
