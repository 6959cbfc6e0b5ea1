package words

import (
	"sync"
	"testing"
)

func TestLoad(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.Size() < 10 {
		t.Fatalf("embedded pool has %d words, need at least 10", p.Size())
	}
	list := p.Words()
	if len(list.Common) == 0 || len(list.Medium) == 0 || len(list.Hard) == 0 {
		t.Errorf("every difficulty should have words: %d/%d/%d", len(list.Common), len(list.Medium), len(list.Hard))
	}
}

func TestRandomChallengeSet_Distinct(t *testing.T) {
	p, _ := Load()
	for i := 0; i < 50; i++ {
		set := p.RandomChallengeSet(10)
		if len(set) != 10 {
			t.Fatalf("len = %d, want 10", len(set))
		}
		seen := make(map[string]bool)
		for _, w := range set {
			if seen[w] {
				t.Fatalf("duplicate word %q in %v", w, set)
			}
			seen[w] = true
		}
	}
}

func TestRandomChallengeSet_Capped(t *testing.T) {
	p := NewProvider(List{Common: []string{"a", "b", "a"}, Hard: []string{"c"}}, 1)
	if p.Size() != 3 {
		t.Fatalf("Size = %d, want 3 after dedup", p.Size())
	}
	if got := p.RandomChallengeSet(10); len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
	if got := p.RandomChallengeSet(0); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestRandomChallenge(t *testing.T) {
	p := NewProvider(List{Common: []string{"only"}}, 1)
	if got := p.RandomChallenge(); got != "only" {
		t.Errorf("RandomChallenge() = %q, want only", got)
	}
	empty := NewProvider(List{}, 1)
	if got := empty.RandomChallenge(); got != "" {
		t.Errorf("empty RandomChallenge() = %q, want empty", got)
	}
}

func TestProvider_ConcurrentUse(t *testing.T) {
	p, _ := Load()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.RandomChallengeSet(10)
			p.RandomChallenge()
		}()
	}
	wg.Wait()
}
