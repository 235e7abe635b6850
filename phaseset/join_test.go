package phaseset

import (
	"testing"

	"github.com/grailbio/bio-phaseset/encoding/vcf"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeChrom(t *testing.T) {
	tests := []struct {
		name, prefix, want string
	}{
		{"chr1", "chr", "1"},
		{"CHR1", "chr", "1"},
		{"Chrx", "chr", "x"},
		{"1", "chr", "1"},
		{"ch", "chr", "ch"},
		{"chr1", "", "chr1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeChrom(tt.name, tt.prefix))
	}
}

func TestJoin(t *testing.T) {
	ref := []vcf.Record{
		{Chrom: "chr1", Pos: 10, Ref: "A", Alt: "G", Sample: "0|1"},
		{Chrom: "CHR1", Pos: 20, Ref: "C", Alt: "T", Sample: "0|1:33"},
		{Chrom: "Chr1", Pos: 30, Ref: "G", Alt: "A", Sample: "1|0"},
		{Chrom: "chr1", Pos: 30, Ref: "G", Alt: "A", Sample: "0|1"}, // duplicate, ignored
		{Chrom: "chr1", Pos: 40, Ref: "T", Alt: "C", Sample: "0|1"},
		{Chrom: "chr1", Pos: 50, Ref: "T", Alt: "C", Sample: "0|1"}, // only in ref
	}
	read := []vcf.Record{
		{Chrom: "1", Pos: 40, Ref: "T", Alt: "G", Sample: "0|1:40"}, // allele mismatch
		{Chrom: "1", Pos: 30, Ref: "G", Alt: "A", Sample: "1|0:10"},
		{Chrom: "1", Pos: 20, Ref: "C", Alt: "T", Sample: "1|0:7:10"},
		{Chrom: "1", Pos: 10, Ref: "A", Alt: "G", Sample: "0|1"}, // no PS
		{Chrom: "2", Pos: 10, Ref: "A", Alt: "G", Sample: "0|1:10"},
	}
	var stats Stats
	opts := DefaultOpts
	got := Join(ref, read, &opts, &stats)
	assert.Equal(t, []Orientation{
		{Row: 1, Key: VariantKey{"1", 30, "G", "A"}, Set: SetID{"1", "10"}, Swapped: false},
		{Row: 2, Key: VariantKey{"1", 20, "C", "T"}, Set: SetID{"1", "10"}, Swapped: true},
	}, got)
	assert.Equal(t, 1, stats.DuplicateRefRecords)
	assert.Equal(t, 2, stats.JoinedRecords)
}

func TestJoinReadPrefix(t *testing.T) {
	ref := []vcf.Record{{Chrom: "chr7", Pos: 10, Ref: "A", Alt: "G", Sample: "0|1"}}
	read := []vcf.Record{{Chrom: "Chr7", Pos: 10, Ref: "A", Alt: "G", Sample: "1|0:10"}}
	var stats Stats

	opts := DefaultOpts
	assert.Empty(t, Join(ref, read, &opts, &stats))

	opts.ReadChromPrefix = "chr"
	got := Join(ref, read, &opts, &stats)
	assert.Equal(t, []Orientation{
		{Row: 0, Key: VariantKey{"7", 10, "A", "G"}, Set: SetID{"Chr7", "10"}, Swapped: true},
	}, got)
}

func TestGenotypeIndex(t *testing.T) {
	idx := newGenotypeIndex(0)
	k := VariantKey{"1", 10, "A", "G"}
	assert.True(t, idx.add(k, "0|1"))
	assert.False(t, idx.add(k, "1|0"))
	gt, ok := idx.get(k)
	assert.True(t, ok)
	assert.Equal(t, "0|1", gt)
	// Fields are delimited before hashing, so shifting text between them
	// yields a different key.
	_, ok = idx.get(VariantKey{"1", 10, "AG", ""})
	assert.False(t, ok)
	_, ok = idx.get(VariantKey{"11", 0, "A", "G"})
	assert.False(t, ok)
}
