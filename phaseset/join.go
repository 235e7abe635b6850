package phaseset

import (
	"strconv"
	"strings"

	farm "github.com/dgryski/go-farm"
	"github.com/grailbio/base/log"
	"github.com/grailbio/bio-phaseset/encoding/vcf"
)

// VariantKey identifies a variant across the two inputs.  Chrom is the
// normalized chromosome name.
type VariantKey struct {
	Chrom string
	Pos   int
	Ref   string
	Alt   string
}

// SetID identifies a read-based phase set.  Phase-set ids are only unique
// within a chromosome, so the read-based chromosome name is part of the key.
type SetID struct {
	Chrom string
	PS    string
}

// Orientation is the comparison of one variant called by both phasers.
type Orientation struct {
	// Row is the variant's row index in the read-based input.
	Row int
	Key VariantKey
	Set SetID
	// Swapped is true iff the two phasers' genotypes differ.
	Swapped bool
}

// phaseSetOf returns the phase set of a read-based record.  ok is false for
// samples without a PS component (a bare genotype).
func phaseSetOf(r *vcf.Record) (id SetID, ok bool) {
	if strings.IndexByte(r.Sample, ':') < 0 {
		return SetID{}, false
	}
	return SetID{Chrom: r.Chrom, PS: vcf.PhaseSet(r.Sample)}, true
}

func hashKey(k VariantKey) uint64 {
	buf := make([]byte, 0, len(k.Chrom)+len(k.Ref)+len(k.Alt)+16)
	buf = append(buf, k.Chrom...)
	buf = append(buf, 0)
	buf = strconv.AppendInt(buf, int64(k.Pos), 10)
	buf = append(buf, 0)
	buf = append(buf, k.Ref...)
	buf = append(buf, 0)
	buf = append(buf, k.Alt...)
	return farm.Fingerprint64(buf)
}

// genotypeIndex maps variant keys to reference-based genotypes.  It is
// bucketed by the farmhash of the key; entries within a bucket are compared
// in full.
type genotypeIndex struct {
	buckets map[uint64][]genotypeEntry
}

type genotypeEntry struct {
	key VariantKey
	gt  string
}

func newGenotypeIndex(n int) *genotypeIndex {
	return &genotypeIndex{buckets: make(map[uint64][]genotypeEntry, n)}
}

// add records gt for k.  It returns false if k is already present, in which
// case the first genotype is kept.
func (idx *genotypeIndex) add(k VariantKey, gt string) bool {
	h := hashKey(k)
	for _, e := range idx.buckets[h] {
		if e.key == k {
			return false
		}
	}
	idx.buckets[h] = append(idx.buckets[h], genotypeEntry{key: k, gt: gt})
	return true
}

func (idx *genotypeIndex) get(k VariantKey) (string, bool) {
	for _, e := range idx.buckets[hashKey(k)] {
		if e.key == k {
			return e.gt, true
		}
	}
	return "", false
}

// Join pairs reference-based and read-based records describing the same
// variant and compares their genotypes.  Variants called by only one phaser
// are dropped, as are read-based records without a phase set.  The result is
// in read-based row order.
func Join(ref, read []vcf.Record, opts *Opts, stats *Stats) []Orientation {
	idx := newGenotypeIndex(len(ref))
	for i := range ref {
		r := &ref[i]
		if opts.Mask != nil && !opts.Mask.Contains(r.Chrom, r.Pos) {
			stats.MaskedRefRecords++
			continue
		}
		k := VariantKey{
			Chrom: normalizeChrom(r.Chrom, opts.RefChromPrefix),
			Pos:   r.Pos,
			Ref:   r.Ref,
			Alt:   r.Alt,
		}
		if !idx.add(k, vcf.Genotype(r.Sample)) {
			stats.DuplicateRefRecords++
		}
	}
	if stats.DuplicateRefRecords > 0 {
		log.Printf("%d duplicate reference-based record(s) ignored", stats.DuplicateRefRecords)
	}

	var orients []Orientation
	for row := range read {
		r := &read[row]
		set, ok := phaseSetOf(r)
		if !ok {
			continue
		}
		k := VariantKey{
			Chrom: normalizeChrom(r.Chrom, opts.ReadChromPrefix),
			Pos:   r.Pos,
			Ref:   r.Ref,
			Alt:   r.Alt,
		}
		refGT, ok := idx.get(k)
		if !ok {
			continue
		}
		orients = append(orients, Orientation{
			Row:     row,
			Key:     k,
			Set:     set,
			Swapped: refGT != vcf.Genotype(r.Sample),
		})
	}
	stats.JoinedRecords = len(orients)
	return orients
}
