package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/daisyworld/components"
)

// newEntities creates n distinct entities in a throwaway world.
func newEntities(t *testing.T, n int) []ecs.Entity {
	t.Helper()
	world := ecs.NewWorld()
	posMap := ecs.NewMap1[components.Position](world)
	out := make([]ecs.Entity, n)
	for i := range out {
		out[i] = posMap.NewEntity(&components.Position{X: i})
	}
	return out
}

// identityRand never shuffles and flips a fixed coin.
type identityRand struct {
	*RNG
	heads bool
}

func (r identityRand) Bool() bool { return r.heads }
func (r identityRand) Shuffle(int, func(i, j int)) {}
