package phaseset

import "sort"

// sortByPosition orders members by position, keeping input order among
// equal positions.
func sortByPosition(members []Orientation) {
	sort.SliceStable(members, func(i, j int) bool { return members[i].Key.Pos < members[j].Key.Pos })
}

// Segment splits members, which must be sorted by position, into maximal runs
// of constant orientation.  It returns the run index of each member; runs are
// numbered from 0 and the index grows by one at every orientation change.
func Segment(members []Orientation) []int {
	if len(members) == 0 {
		return nil
	}
	indices := make([]int, len(members))
	state := members[0].Swapped
	cur := 0
	for i, m := range members {
		if m.Swapped != state {
			state = !state
			cur++
		}
		indices[i] = cur
	}
	return indices
}
