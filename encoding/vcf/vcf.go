// Package vcf reads and writes the single-sample, tab-separated variant
// tables consumed and produced by bio-phaseset.
//
// Only the ten fixed VCF columns are interpreted, and only CHROM and POS are
// parsed; the remaining columns are carried through verbatim. Meta-information
// and header lines (anything starting with '#') are skipped on input.
package vcf

import (
	"fmt"
	"strings"
)

// NumColumns is the number of columns in a single-sample VCF data row.
const NumColumns = 10

// Columns names the output table's columns, in order.
var Columns = [NumColumns]string{
	"Chromosome", "POS", "ID", "REF", "ALT", "Score", "FILTER", "INFO", "FORMAT", "Sample",
}

// Record is one data row of a single-sample VCF.  Fields are positional, so
// the declaration order must match the file's column order.
type Record struct {
	Chrom  string
	Pos    int
	ID     string
	Ref    string
	Alt    string
	Qual   string
	Filter string
	Info   string
	Format string
	Sample string
}

// MalformedInputError is returned when a data row cannot be interpreted as a
// single-sample VCF record.
type MalformedInputError struct {
	// Path is the name of the input.
	Path string
	// Row is the 1-based index of the offending data row, not counting
	// comment lines.
	Row    int
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%s: malformed data row %d: %s", e.Path, e.Row, e.Reason)
}

// Genotype returns the genotype (first colon-delimited component) of a
// sample field.
func Genotype(sample string) string {
	if i := strings.IndexByte(sample, ':'); i >= 0 {
		return sample[:i]
	}
	return sample
}

// PhaseSet returns the last colon-delimited component of a sample field,
// where read-based phasers store the PS tag.
func PhaseSet(sample string) string {
	return sample[strings.LastIndexByte(sample, ':')+1:]
}

// ReplacePhaseSet returns sample with its last colon-delimited component
// replaced by ps.
func ReplacePhaseSet(sample, ps string) string {
	return sample[:strings.LastIndexByte(sample, ':')+1] + ps
}
