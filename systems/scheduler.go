package systems

import (
	"errors"
	"fmt"

	"github.com/mlange-42/ark/ecs"
)

// ErrNotScheduled is returned when removing an entity the scheduler does not hold.
var ErrNotScheduled = errors.New("entity not scheduled")

// Scheduler activates every live entity once per tick in random order.
//
// The live set is snapshotted at the start of a tick, so entities added
// during the tick wait for the next one. Entities removed mid-tick are
// skipped if their turn has not come yet.
type Scheduler struct {
	rng   Rand
	live  []ecs.Entity
	index map[ecs.Entity]int // position in live

	order []ecs.Entity // reused permutation buffer
}

// NewScheduler creates an empty scheduler drawing permutations from rng.
func NewScheduler(rng Rand) *Scheduler {
	return &Scheduler{
		rng:   rng,
		index: make(map[ecs.Entity]int),
	}
}

// Len returns the number of scheduled entities.
func (s *Scheduler) Len() int { return len(s.live) }

// Contains reports whether e is scheduled.
func (s *Scheduler) Contains(e ecs.Entity) bool {
	_, ok := s.index[e]
	return ok
}

// Add schedules e. Adding an already scheduled entity is a no-op.
func (s *Scheduler) Add(e ecs.Entity) {
	if _, ok := s.index[e]; ok {
		return
	}
	s.index[e] = len(s.live)
	s.live = append(s.live, e)
}

// Remove unschedules e.
func (s *Scheduler) Remove(e ecs.Entity) error {
	i, ok := s.index[e]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotScheduled, e)
	}
	// Swap-remove keeps the live slice dense
	last := len(s.live) - 1
	if i != last {
		moved := s.live[last]
		s.live[i] = moved
		s.index[moved] = i
	}
	s.live = s.live[:last]
	delete(s.index, e)
	return nil
}

// Entities returns a copy of the live set.
func (s *Scheduler) Entities() []ecs.Entity {
	out := make([]ecs.Entity, len(s.live))
	copy(out, s.live)
	return out
}

// Tick activates a random permutation of the entities live at tick start.
// It stops at the first activation error and returns it.
func (s *Scheduler) Tick(activate func(ecs.Entity) error) error {
	s.order = append(s.order[:0], s.live...)
	order := s.order
	s.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	for _, e := range order {
		if !s.Contains(e) {
			continue
		}
		if err := activate(e); err != nil {
			return err
		}
	}
	return nil
}
