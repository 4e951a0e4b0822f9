package scene

import (
	"sync"
	"testing"
)

func TestIDsAreDistinct(t *testing.T) {
	g := NewIDGen(42)
	a, b := g.Next(), g.Next()
	if a == b {
		t.Fatalf("consecutive ids collided: %s", a)
	}
}

func TestIDsDistinctUnderConcurrentConstruction(t *testing.T) {
	g := NewIDGen(42)
	const workers = 16
	const perWorker = 50

	var mu sync.Mutex
	seen := make(map[string]bool, workers*perWorker)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				id := g.Next()
				mu.Lock()
				if seen[id] {
					t.Errorf("duplicate id: %s", id)
				}
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d unique ids, got %d", workers*perWorker, len(seen))
	}
}

func TestVariablesGetDefault(t *testing.T) {
	v := Variables{"mass": 2}
	if got := v.Get("mass", 1); got != 2 {
		t.Fatalf("expected stored value 2, got %g", got)
	}
	if got := v.Get("length", 1.5); got != 1.5 {
		t.Fatalf("expected default 1.5 for absent key, got %g", got)
	}
}
