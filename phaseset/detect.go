package phaseset

// DetectInconsistent returns the phase sets whose joined variants disagree on
// orientation, i.e. hold exactly two distinct Swapped values.  Sets are
// returned in order of first appearance in orients.
func DetectInconsistent(orients []Orientation) []SetID {
	// seen[set] is a bitmask: 1 if some member is not swapped, 2 if some
	// member is swapped.
	seen := map[SetID]uint8{}
	var order []SetID
	for _, o := range orients {
		mask, ok := seen[o.Set]
		if !ok {
			order = append(order, o.Set)
		}
		if o.Swapped {
			mask |= 2
		} else {
			mask |= 1
		}
		seen[o.Set] = mask
	}
	var inconsistent []SetID
	for _, set := range order {
		if seen[set] == 3 {
			inconsistent = append(inconsistent, set)
		}
	}
	return inconsistent
}
