// Package transform provides position maps describing how document
// positions move across edits.
//
// A StepMap records one atomic change as a set of replaced token ranges;
// a Mapping chains step maps into a whole edit; an Edit pairs a mapping
// with the did-the-document-change flag consumers key off. Mapping a
// position through an edit, or through its inverse, is the primitive the
// node-key registry reconciles against.
package transform

import (
	"errors"
	"fmt"
)

// ErrBadRanges indicates step map ranges that are not well formed.
var ErrBadRanges = errors.New("malformed step map ranges")

// StepMap maps positions across one atomic document change.
//
// Ranges are stored as (start, oldSize, newSize) triplets in coordinates of
// the document before the change, ordered by start and non-overlapping.
// Positions outside every range shift by the accumulated size difference;
// positions inside a range collapse to one of its sides.
type StepMap struct {
	ranges   []int
	inverted bool
}

// Result is the outcome of mapping one position.
type Result struct {
	// Pos is the mapped position.
	Pos int

	// Deleted reports that the position sat strictly inside a replaced
	// range, so the content around it is gone in the new document.
	Deleted bool
}

// NewStepMap builds a step map from (start, oldSize, newSize) triplets.
// Ranges must be complete triplets, non-negative, ordered by start, and
// non-overlapping.
func NewStepMap(ranges ...int) (*StepMap, error) {
	if len(ranges)%3 != 0 {
		return nil, fmt.Errorf("got %d values, want a multiple of 3: %w", len(ranges), ErrBadRanges)
	}
	prevEnd := -1
	for i := 0; i < len(ranges); i += 3 {
		start, oldSize, newSize := ranges[i], ranges[i+1], ranges[i+2]
		if start < 0 || oldSize < 0 || newSize < 0 {
			return nil, fmt.Errorf("negative value in range at index %d: %w", i, ErrBadRanges)
		}
		if start < prevEnd {
			return nil, fmt.Errorf("overlapping range at index %d: %w", i, ErrBadRanges)
		}
		prevEnd = start + oldSize
	}
	return &StepMap{ranges: ranges}, nil
}

// InsertMap describes an insertion of n tokens at pos.
func InsertMap(pos, n int) *StepMap {
	return &StepMap{ranges: []int{pos, 0, n}}
}

// DeleteMap describes a deletion of n tokens starting at pos.
func DeleteMap(pos, n int) *StepMap {
	return &StepMap{ranges: []int{pos, n, 0}}
}

// ReplaceMap describes replacing oldN tokens starting at pos with newN tokens.
func ReplaceMap(pos, oldN, newN int) *StepMap {
	return &StepMap{ranges: []int{pos, oldN, newN}}
}

// Map maps a position through the step. The assoc argument decides which
// side a position on a range boundary sticks to: negative associates with
// the content before it, anything else with the content after it.
func (m *StepMap) Map(pos, assoc int) int {
	r := m.MapResult(pos, assoc)
	return r.Pos
}

// MapResult maps a position and additionally reports whether it was deleted.
func (m *StepMap) MapResult(pos, assoc int) Result {
	diff := 0
	oldIdx, newIdx := 1, 2
	if m.inverted {
		oldIdx, newIdx = 2, 1
	}
	for i := 0; i < len(m.ranges); i += 3 {
		start := m.ranges[i]
		if m.inverted {
			start -= diff
		}
		if start > pos {
			break
		}
		oldSize, newSize := m.ranges[i+oldIdx], m.ranges[i+newIdx]
		end := start + oldSize
		if pos <= end {
			var side int
			switch {
			case oldSize == 0:
				side = assoc
			case pos == start:
				side = -1
			case pos == end:
				side = 1
			default:
				side = assoc
			}
			mapped := start + diff
			if side >= 0 {
				mapped += newSize
			}
			return Result{Pos: mapped, Deleted: pos != start && pos != end}
		}
		diff += newSize - oldSize
	}
	return Result{Pos: pos + diff}
}

// Invert returns a step map that maps positions of the new document back to
// the old one.
func (m *StepMap) Invert() *StepMap {
	return &StepMap{ranges: m.ranges, inverted: !m.inverted}
}

// Mapping is an ordered sequence of step maps, applied first to last.
// The zero value is an empty mapping that maps every position to itself.
type Mapping struct {
	maps []*StepMap
}

// NewMapping builds a mapping from the given step maps.
func NewMapping(maps ...*StepMap) *Mapping {
	return &Mapping{maps: maps}
}

// AppendMap adds a step map to the end of the mapping.
func (m *Mapping) AppendMap(sm *StepMap) {
	m.maps = append(m.maps, sm)
}

// Len returns the number of step maps in the mapping.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.maps)
}

// Map maps a position through every step in order.
func (m *Mapping) Map(pos, assoc int) int {
	if m == nil {
		return pos
	}
	for _, sm := range m.maps {
		pos = sm.Map(pos, assoc)
	}
	return pos
}

// MapResult maps a position through every step, reporting deletion if any
// step deleted the position along the way.
func (m *Mapping) MapResult(pos, assoc int) Result {
	deleted := false
	if m != nil {
		for _, sm := range m.maps {
			r := sm.MapResult(pos, assoc)
			pos = r.Pos
			deleted = deleted || r.Deleted
		}
	}
	return Result{Pos: pos, Deleted: deleted}
}

// Invert returns a mapping that runs the inverted steps in reverse order,
// mapping new-document positions back to old-document positions.
func (m *Mapping) Invert() *Mapping {
	if m == nil {
		return &Mapping{}
	}
	inv := &Mapping{maps: make([]*StepMap, 0, len(m.maps))}
	for i := len(m.maps) - 1; i >= 0; i-- {
		inv.maps = append(inv.maps, m.maps[i].Invert())
	}
	return inv
}
