package words

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

//go:embed words.json
var embedded []byte

// List is the word pool grouped by difficulty.
type List struct {
	Common []string `json:"common"`
	Medium []string `json:"medium"`
	Hard   []string `json:"hard"`
}

// Provider draws challenge words from a fixed pool.
type Provider struct {
	mu   sync.Mutex
	rng  *rand.Rand
	list List
	all  []string
}

// Load builds a provider from the word list compiled into the binary.
func Load() (*Provider, error) {
	var list List
	if err := json.Unmarshal(embedded, &list); err != nil {
		return nil, fmt.Errorf("parsing word list: %w", err)
	}
	return NewProvider(list, time.Now().UnixNano()), nil
}

func NewProvider(list List, seed int64) *Provider {
	seen := make(map[string]bool)
	var all []string
	for _, group := range [][]string{list.Common, list.Medium, list.Hard} {
		for _, w := range group {
			if w == "" || seen[w] {
				continue
			}
			seen[w] = true
			all = append(all, w)
		}
	}
	return &Provider{
		rng:  rand.New(rand.NewSource(seed)),
		list: list,
		all:  all,
	}
}

func (p *Provider) Words() List {
	return p.list
}

func (p *Provider) Size() int {
	return len(p.all)
}

// RandomChallenge returns one word for single-player rounds.
func (p *Provider) RandomChallenge() string {
	if len(p.all) == 0 {
		return ""
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.all[p.rng.Intn(len(p.all))]
}

// RandomChallengeSet returns n distinct words in random order. n is capped at the pool size.
func (p *Provider) RandomChallengeSet(n int) []string {
	if n > len(p.all) {
		n = len(p.all)
	}
	if n <= 0 {
		return []string{}
	}
	p.mu.Lock()
	perm := p.rng.Perm(len(p.all))
	p.mu.Unlock()

	set := make([]string, n)
	for i := range set {
		set[i] = p.all[perm[i]]
	}
	return set
}
