// Package clash implements the clash index: the ordered, append-only set of
// boxes already occupied on the map during one render.
//
// Insertion order is drawing order. Every placement scores its candidates
// against everything registered before it and never against anything
// registered afterwards, so boxes are never removed, replaced or reordered.
package clash

import (
	"errors"
	"fmt"

	"github.com/ironsheep/ftmap/internal/geom"
)

// DefaultCapacity is the number of boxes an index holds when no explicit
// capacity is configured.
const DefaultCapacity = 1000

// ErrFull is returned (wrapped) by Add when the index is at capacity.
var ErrFull = errors.New("clash index full")

// Index is a bounded, append-only registry of occupied boxes.
//
// An Index belongs to a single render and is not safe for concurrent use.
type Index struct {
	boxes    []geom.Box
	capacity int
}

// New creates an empty index that accepts at most capacity boxes. A
// capacity of zero or less selects DefaultCapacity.
func New(capacity int) *Index {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Index{
		boxes:    make([]geom.Box, 0, min(capacity, 64)),
		capacity: capacity,
	}
}

// Add appends b to the index. When the index is full the box is rejected,
// the existing entries are left untouched, and the returned error wraps
// ErrFull.
func (x *Index) Add(b geom.Box) error {
	if len(x.boxes) >= x.capacity {
		return fmt.Errorf("%w: cannot register box %v beyond capacity %d", ErrFull, b, x.capacity)
	}
	x.boxes = append(x.boxes, b)
	return nil
}

// Len returns the number of registered boxes.
func (x *Index) Len() int { return len(x.boxes) }

// Cap returns the maximum number of boxes the index accepts.
func (x *Index) Cap() int { return x.capacity }

// At returns the i'th registered box in insertion order.
func (x *Index) At(i int) geom.Box { return x.boxes[i] }

// Boxes returns a copy of the registered boxes in insertion order.
func (x *Index) Boxes() []geom.Box {
	out := make([]geom.Box, len(x.boxes))
	copy(out, x.boxes)
	return out
}

// Score returns the total area by which b overlaps every registered box.
func (x *Index) Score(b geom.Box) int {
	total := 0
	for _, r := range x.boxes {
		total += geom.Overlap(r, b)
	}
	return total
}
