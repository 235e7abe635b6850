package phaseset

import (
	"path/filepath"
	"testing"

	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bio-phaseset/encoding/vcf"
	"github.com/grailbio/bio-phaseset/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readTestVCFs(t *testing.T) (ref, read []vcf.Record) {
	ctx := vcontext.Background()
	ref, err := vcf.ReadFile(ctx, filepath.Join("testdata", "ref.vcf"))
	require.NoError(t, err)
	read, err = vcf.ReadFile(ctx, filepath.Join("testdata", "read.vcf"))
	require.NoError(t, err)
	return ref, read
}

func samples(records []vcf.Record) []string {
	s := make([]string, len(records))
	for i := range records {
		s[i] = records[i].Sample
	}
	return s
}

func TestCorrect(t *testing.T) {
	ref, read := readTestVCFs(t)
	opts := DefaultOpts
	res := Correct(ref, read, &opts)

	assert.Equal(t, []string{
		"0|1:10", "1|0:20", "0|1:20", "1|0:20", "0|1:40", // chr1 PS 5, split at 20 and 40
		"0|1:100", "1|0:100", "1|0:100", // consistent
		"0/1",                                  // unphased
		"1|0:30:10", "0|1:30:10", "1|0:30:30", // chr2 PS 5, tie at 20 goes left
	}, samples(res.Records))
	assert.Equal(t, []SetReport{
		{Set: SetID{"1", "5"}, Variants: 5, Runs: 3},
		{Set: SetID{"2", "5"}, Variants: 3, Runs: 2},
	}, res.Inconsistent)
	assert.Equal(t, Stats{
		RefRecords:       9,
		ReadRecords:      12,
		JoinedRecords:    8,
		PhaseSets:        3,
		InconsistentSets: 2,
		RewrittenRecords: 8,
		NewPhaseSets:     5,
	}, res.Stats)

	// Only the sample column changes, and row order is kept.
	require.Len(t, res.Records, len(read))
	for i := range read {
		want := read[i]
		want.Sample = res.Records[i].Sample
		assert.Equal(t, want, res.Records[i])
	}
	// The input is not modified.
	assert.Equal(t, "1|0:5", read[1].Sample)
}

// After correction, no phase set holds variants of both orientations.
func TestCorrectLeavesNoInconsistentSets(t *testing.T) {
	ref, read := readTestVCFs(t)
	opts := DefaultOpts
	res := Correct(ref, read, &opts)
	var stats Stats
	assert.Empty(t, DetectInconsistent(Join(ref, res.Records, &opts, &stats)))

	// Correcting again is a no-op.
	again := Correct(ref, res.Records, &opts)
	assert.Empty(t, again.Inconsistent)
	assert.Equal(t, res.Records, again.Records)
}

func TestCorrectSingleSet(t *testing.T) {
	var ref, read []vcf.Record
	for i, gt := range []string{"0|1", "1|0", "1|0", "0|1"} {
		pos := 10 * (i + 1)
		ref = append(ref, vcf.Record{Chrom: "chr1", Pos: pos, Ref: "A", Alt: "G", Sample: "0|1"})
		read = append(read, vcf.Record{Chrom: "1", Pos: pos, Ref: "A", Alt: "G", Format: "GT:PS", Sample: gt + ":5"})
	}
	opts := DefaultOpts
	res := Correct(ref, read, &opts)
	assert.Equal(t, []string{"0|1:10", "1|0:20", "1|0:20", "0|1:40"}, samples(res.Records))
	assert.Equal(t, 3, res.Stats.NewPhaseSets)
}

func TestCorrectConsistentInputIsUnchanged(t *testing.T) {
	ref, read := readTestVCFs(t)
	// Drop the variants that disagree with the reference-based calls.
	var consistent []vcf.Record
	for _, r := range read {
		if !(r.Chrom == "1" && (r.Pos == 20 || r.Pos == 30)) && !(r.Chrom == "2" && r.Pos == 10) {
			consistent = append(consistent, r)
		}
	}
	opts := DefaultOpts
	res := Correct(ref, consistent, &opts)
	assert.Empty(t, res.Inconsistent)
	assert.Equal(t, consistent, res.Records)
	assert.Equal(t, 0, res.Stats.RewrittenRecords)
}

func TestCorrectWithMask(t *testing.T) {
	ref, read := readTestVCFs(t)
	mask, err := interval.NewMaskFromRegion("chr1:1-35")
	require.NoError(t, err)
	opts := DefaultOpts
	opts.Mask = &mask
	res := Correct(ref, read, &opts)

	// Only chr1:10-30 vote, so chr2 is left alone and chr1 PS 5 is split once.
	assert.Equal(t, []string{
		"0|1:10", "1|0:20", "0|1:20", "1|0:20", "0|1:20",
		"0|1:100", "1|0:100", "1|0:100",
		"0/1",
		"1|0:30:5", "0|1:30:5", "1|0:30:5",
	}, samples(res.Records))
	assert.Equal(t, 6, res.Stats.MaskedRefRecords)
	assert.Equal(t, 3, res.Stats.JoinedRecords)
	assert.Equal(t, 1, res.Stats.InconsistentSets)
}
