package phaseset

import (
	"github.com/biogo/store/llrb"
)

// Breakpoint is the run index Segment assigned to one member of a phase
// set.  Rank is the member's position-order rank within the full read-based
// phase set, which may contain variants that never joined.
type Breakpoint struct {
	Rank  int
	Index int
}

// Compare orders breakpoints by rank for use in llrb.
func (b Breakpoint) Compare(c llrb.Comparable) int {
	return b.Rank - c.(Breakpoint).Rank
}

// breakpointSeq is the complete breakpoint sequence of one phase set,
// including the leading anchor when the first real breakpoint is not at
// rank 0.
type breakpointSeq struct {
	tree llrb.Tree
	last int // rank of the last real breakpoint
}

func newBreakpointSeq(bps []Breakpoint) *breakpointSeq {
	s := &breakpointSeq{}
	for _, bp := range bps {
		s.tree.Insert(bp)
	}
	s.last = s.tree.Max().(Breakpoint).Rank
	if s.tree.Min().(Breakpoint).Rank != 0 {
		s.tree.Insert(Breakpoint{Rank: 0, Index: 0})
	}
	return s
}

// at returns the breakpoint at rank, if any.
func (s *breakpointSeq) at(rank int) (Breakpoint, bool) {
	c := s.tree.Get(Breakpoint{Rank: rank})
	if c == nil {
		return Breakpoint{}, false
	}
	return c.(Breakpoint), true
}

// next returns the first breakpoint at or after rank.  rank must not exceed
// s.last.
func (s *breakpointSeq) next(rank int) Breakpoint {
	return s.tree.Ceil(Breakpoint{Rank: rank}).(Breakpoint)
}

// PropagateIndices extends the sparse run indices in bps to every variant of
// a phase set.  positions holds the positions of all the set's variants in
// rank order.  It returns, for each rank, the interpolated run index and the
// corrected phase-set id, which is the position of the first variant of the
// variant's run.  Both are nil if bps is empty.
//
// A variant without a breakpoint takes the index of its left neighbour (the
// previous rank, which is always assigned by then) unless the next
// breakpoint is strictly closer and carries a different index.  Variants
// after the last breakpoint stay in the last run.
func PropagateIndices(positions []int, bps []Breakpoint) (indices, ids []int) {
	if len(bps) == 0 || len(positions) == 0 {
		return nil, nil
	}
	seq := newBreakpointSeq(bps)
	indices = make([]int, len(positions))
	ids = make([]int, len(positions))
	cur := positions[0]
	for i, pos := range positions {
		if i > seq.last {
			indices[i] = indices[i-1]
			ids[i] = cur
			continue
		}
		if bp, ok := seq.at(i); ok {
			if i > 0 && bp.Index > indices[i-1] {
				cur = pos
			}
			indices[i] = bp.Index
			ids[i] = cur
			continue
		}
		// Rank 0 always holds a breakpoint, so i > 0 here.
		left := indices[i-1]
		right := seq.next(i)
		switch {
		case left == right.Index:
			indices[i] = left
		case pos-positions[i-1] <= positions[right.Rank]-pos:
			indices[i] = left
		default:
			indices[i] = right.Index
			cur = pos
		}
		ids[i] = cur
	}
	return indices, ids
}

// Propagate is PropagateIndices without the run indices.
func Propagate(positions []int, bps []Breakpoint) []int {
	_, ids := PropagateIndices(positions, bps)
	return ids
}
