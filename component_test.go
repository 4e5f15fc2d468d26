package uncertain

import (
	"errors"
	"math"
	"sync"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestNewComponent(t *testing.T) {
	c, err := NewComponent(4)
	if err != nil {
		t.Fatalf("NewComponent(4) = %v", err)
	}
	if got := c.Variance(); got != 4 {
		t.Errorf("Variance() = %v, want 4", got)
	}
	if got := c.StandardDeviation(); got != 2 {
		t.Errorf("StandardDeviation() = %v, want 2", got)
	}
}

func TestNewComponentInvalidVariance(t *testing.T) {
	for _, variance := range []float64{-1, -1e-12, math.NaN()} {
		_, err := NewComponent(variance)
		if !errors.Is(err, ErrInvalidUncertainty) {
			t.Errorf("NewComponent(%v) error = %v, want ErrInvalidUncertainty", variance, err)
		}
	}
}

// Components are identities, not values: equal variances never imply a shared
// origin.
func TestComponentIdentity(t *testing.T) {
	a, err := NewComponent(9)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewComponent(9)
	if err != nil {
		t.Fatal(err)
	}
	if a.ID() == b.ID() {
		t.Errorf("two components share ID %v", a.ID())
	}
	if a == b {
		t.Error("two components with equal variance compare equal")
	}
}

// The identity counter is the only shared mutable state in the package;
// concurrent construction must never hand out a duplicate identity.
func TestComponentConcurrentAllocation(t *testing.T) {
	const (
		goroutines = 8
		perRoutine = 1000
	)

	var (
		mu  sync.Mutex
		ids = make(map[ComponentID]struct{}, goroutines*perRoutine)
	)

	var g errgroup.Group
	for i := 0; i < goroutines; i++ {
		g.Go(func() error {
			allocated := make([]ComponentID, 0, perRoutine)
			for j := 0; j < perRoutine; j++ {
				c, err := NewComponent(1)
				if err != nil {
					return err
				}
				allocated = append(allocated, c.ID())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range allocated {
				ids[id] = struct{}{}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	if len(ids) != goroutines*perRoutine {
		t.Errorf("allocated %d unique IDs, want %d", len(ids), goroutines*perRoutine)
	}
}
