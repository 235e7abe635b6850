package phaseset

import (
	"strconv"

	"github.com/grailbio/bio-phaseset/encoding/vcf"
)

// unchanged marks a row whose phase set is kept as is.
const unchanged = -1

// Rewrite returns a copy of read in which row i's trailing PS component is
// replaced by ids[i], unless ids[i] is unchanged.  A nil ids copies read
// verbatim.  Row order is preserved.
func Rewrite(read []vcf.Record, ids []int) []vcf.Record {
	out := make([]vcf.Record, len(read))
	copy(out, read)
	for row, id := range ids {
		if id == unchanged {
			continue
		}
		out[row].Sample = vcf.ReplacePhaseSet(out[row].Sample, strconv.Itoa(id))
	}
	return out
}
