package phaseset

import (
	"strings"

	"github.com/grailbio/bio-phaseset/interval"
)

// Opts controls phase-set correction.
type Opts struct {
	// RefChromPrefix is stripped, case-insensitively, from reference-based
	// chromosome names before joining, e.g. "chr" turns "chr1" into "1".
	// Names without the prefix are used as is.
	RefChromPrefix string
	// ReadChromPrefix is the same for the read-based input.
	ReadChromPrefix string

	// BedPath and Region restrict which reference-based calls take part in
	// the orientation comparison.  At most one may be set.  Run resolves them
	// into Mask.
	BedPath string
	Region  string
	// Mask, if non-nil, holds the resolved BedPath/Region.  It is queried with
	// the reference-based chromosome name as it appears in the file.
	Mask *interval.Mask

	// StatsPath, if nonempty, receives a two-column TSV of run statistics.
	StatsPath string
	// InconsistentPath, if nonempty, receives one row per inconsistent phase
	// set.
	InconsistentPath string
}

// DefaultOpts is the default configuration of the bio-phaseset tool.
var DefaultOpts = Opts{
	RefChromPrefix: "chr",
}

// normalizeChrom strips prefix from name if name starts with it, ignoring
// case.
func normalizeChrom(name, prefix string) string {
	if len(prefix) > 0 && len(name) >= len(prefix) && strings.EqualFold(name[:len(prefix)], prefix) {
		return name[len(prefix):]
	}
	return name
}
