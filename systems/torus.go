// Package systems provides the grid, irradiance, scheduling and mutation
// building blocks the world is assembled from.
package systems

import (
	"errors"
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/daisyworld/components"
)

var (
	// ErrOccupiedCell is returned when placing onto a non-empty cell.
	ErrOccupiedCell = errors.New("cell occupied")
	// ErrEmptyCell is returned when removing from an empty cell.
	ErrEmptyCell = errors.New("cell empty")
)

// Torus is a fixed-size occupancy grid that wraps on both axes.
// Cells hold non-owning entity handles; the ECS world owns the daisies.
type Torus struct {
	width, height int
	cells         []ecs.Entity
	occupied      []bool
	count         int
}

// NewTorus creates an empty torus. Dimensions below 1 are raised to 1.
func NewTorus(width, height int) *Torus {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &Torus{
		width:    width,
		height:   height,
		cells:    make([]ecs.Entity, width*height),
		occupied: make([]bool, width*height),
	}
}

// Width returns the number of columns.
func (t *Torus) Width() int { return t.width }

// Height returns the number of rows.
func (t *Torus) Height() int { return t.height }

// Cells returns width*height.
func (t *Torus) Cells() int { return len(t.cells) }

// Len returns the number of occupied cells.
func (t *Torus) Len() int { return t.count }

// Wrap applies toroidal wrapping to pos.
func (t *Torus) Wrap(pos components.Position) components.Position {
	return components.Position{
		X: (pos.X%t.width + t.width) % t.width,
		Y: (pos.Y%t.height + t.height) % t.height,
	}
}

// Index returns the row-major cell index of pos after wrapping.
func (t *Torus) Index(pos components.Position) int {
	p := t.Wrap(pos)
	return p.Y*t.width + p.X
}

// At returns the position of a row-major cell index.
func (t *Torus) At(idx int) components.Position {
	return components.Position{X: idx % t.width, Y: idx / t.width}
}

// IsEmpty reports whether pos holds no daisy.
func (t *Torus) IsEmpty(pos components.Position) bool {
	return !t.occupied[t.Index(pos)]
}

// Occupant returns the entity at pos, if any.
func (t *Torus) Occupant(pos components.Position) (ecs.Entity, bool) {
	idx := t.Index(pos)
	if !t.occupied[idx] {
		return ecs.Entity{}, false
	}
	return t.cells[idx], true
}

// Place puts e at pos.
func (t *Torus) Place(pos components.Position, e ecs.Entity) error {
	idx := t.Index(pos)
	if t.occupied[idx] {
		return fmt.Errorf("%w: %v", ErrOccupiedCell, t.At(idx))
	}
	t.cells[idx] = e
	t.occupied[idx] = true
	t.count++
	return nil
}

// Remove clears pos and returns the entity that was there.
func (t *Torus) Remove(pos components.Position) (ecs.Entity, error) {
	idx := t.Index(pos)
	if !t.occupied[idx] {
		return ecs.Entity{}, fmt.Errorf("%w: %v", ErrEmptyCell, t.At(idx))
	}
	e := t.cells[idx]
	t.cells[idx] = ecs.Entity{}
	t.occupied[idx] = false
	t.count--
	return e, nil
}

// Neighbors returns the Moore neighbourhood of pos within Chebyshev distance
// radius, centre excluded. Coordinates wrap on both axes and each cell appears
// once even when the torus is smaller than the neighbourhood.
// Order is row by row, dy then dx ascending.
func (t *Torus) Neighbors(pos components.Position, radius int) []components.Position {
	return t.AppendNeighbors(nil, pos, radius, false)
}

// AppendNeighbors appends the neighbourhood of pos to dst, optionally
// including the centre cell, and returns the extended slice.
func (t *Torus) AppendNeighbors(dst []components.Position, pos components.Position, radius int, includeCenter bool) []components.Position {
	center := t.Wrap(pos)
	start := len(dst)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			p := t.Wrap(components.Position{X: center.X + dx, Y: center.Y + dy})
			if p == center && !includeCenter {
				continue
			}
			if containsPos(dst[start:], p) {
				continue
			}
			dst = append(dst, p)
		}
	}
	return dst
}

// containsPos is a linear scan; neighbourhoods are small.
func containsPos(ps []components.Position, p components.Position) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}
