package phaseset

import (
	"sort"

	"github.com/grailbio/base/log"
	"github.com/grailbio/bio-phaseset/encoding/vcf"
)

// Result is the outcome of Correct.
type Result struct {
	// Records is the read-based table with corrected phase sets, in input
	// order.
	Records []vcf.Record
	// Inconsistent lists the phase sets that were split, in order of first
	// appearance.  It is empty when every phase set agreed with the
	// reference-based calls; Records is then a copy of the input.
	Inconsistent []SetReport
	Stats        Stats
}

// groupBySet returns the read-based row indices of each phase set, and the
// sets in order of first appearance.  Rows without a phase set are skipped.
func groupBySet(read []vcf.Record) (map[SetID][]int, []SetID) {
	groups := map[SetID][]int{}
	var order []SetID
	for row := range read {
		set, ok := phaseSetOf(&read[row])
		if !ok {
			continue
		}
		if _, ok := groups[set]; !ok {
			order = append(order, set)
		}
		groups[set] = append(groups[set], row)
	}
	return groups, order
}

// Correct splits every read-based phase set whose variants disagree on
// orientation with the reference-based calls into maximal runs of constant
// orientation, and rewrites the PS component of all the set's variants.  Each
// new phase set is named by the position of its first variant.  Variants of
// consistent phase sets are left untouched.
func Correct(ref, read []vcf.Record, opts *Opts) Result {
	var res Result
	stats := &res.Stats
	stats.RefRecords = len(ref)
	stats.ReadRecords = len(read)

	orients := Join(ref, read, opts, stats)
	groups, order := groupBySet(read)
	stats.PhaseSets = len(order)
	inconsistent := DetectInconsistent(orients)
	stats.InconsistentSets = len(inconsistent)
	if len(inconsistent) == 0 {
		log.Printf("no inconsistent phase sets found among %d", stats.PhaseSets)
		res.Records = Rewrite(read, nil)
		return res
	}
	log.Printf("%d out of %d phase sets are inconsistent", len(inconsistent), stats.PhaseSets)

	members := make(map[SetID][]Orientation, len(inconsistent))
	for _, set := range inconsistent {
		members[set] = nil
	}
	for _, o := range orients {
		if m, ok := members[o.Set]; ok {
			members[o.Set] = append(m, o)
		}
	}

	ids := make([]int, len(read))
	for i := range ids {
		ids[i] = unchanged
	}
	for _, set := range inconsistent {
		m := members[set]
		sortByPosition(m)
		runs := Segment(m)
		runOfRow := make(map[int]int, len(m))
		for i, o := range m {
			runOfRow[o.Row] = runs[i]
		}

		rows := groups[set]
		sort.SliceStable(rows, func(i, j int) bool { return read[rows[i]].Pos < read[rows[j]].Pos })
		positions := make([]int, len(rows))
		var bps []Breakpoint
		for rank, row := range rows {
			positions[rank] = read[row].Pos
			if run, ok := runOfRow[row]; ok {
				bps = append(bps, Breakpoint{Rank: rank, Index: run})
			}
		}
		setIDs := Propagate(positions, bps)
		distinct := map[int]struct{}{}
		for rank, row := range rows {
			ids[row] = setIDs[rank]
			distinct[setIDs[rank]] = struct{}{}
		}
		stats.RewrittenRecords += len(rows)
		stats.NewPhaseSets += len(distinct)
		res.Inconsistent = append(res.Inconsistent, SetReport{Set: set, Variants: len(rows), Runs: len(distinct)})
		log.Debug.Printf("%s:%s: %d variant(s), %d joined, split into %d phase set(s)",
			set.Chrom, set.PS, len(rows), len(m), len(distinct))
	}
	res.Records = Rewrite(read, ids)
	return res
}
