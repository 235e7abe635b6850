package interval

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	"github.com/klauspost/compress/gzip"
)

// PosType is the coordinate type used by Mask.
type PosType int32

// PosTypeMax is the maximum value that can be represented by a PosType.
const PosTypeMax = math.MaxInt32

// Entry represents a single interval, with 0-based half-open coordinates.
type Entry struct {
	ChrName string
	Start0  PosType
	End     PosType
}

// Mask is a per-chromosome union of intervals.  For each chromosome, the
// 0-based start of the k-th merged interval is in element [2k] of its slice
// and the end is in element [2k+1], in increasing order.  A position is
// covered iff the number of endpoints <= it is odd.
type Mask struct {
	nameMap map[string][]PosType
}

// NewMask builds a Mask from entries in any order.  Empty intervals are
// dropped.
func NewMask(entries []Entry) (Mask, error) {
	byChr := map[string][]Entry{}
	for _, e := range entries {
		if e.Start0 < 0 || e.End < e.Start0 || e.End >= PosTypeMax {
			return Mask{}, fmt.Errorf("interval.NewMask: invalid interval %s:[%d, %d)", e.ChrName, e.Start0, e.End)
		}
		if e.End == e.Start0 {
			continue
		}
		byChr[e.ChrName] = append(byChr[e.ChrName], e)
	}
	m := Mask{nameMap: make(map[string][]PosType, len(byChr))}
	for chr, chrEntries := range byChr {
		sort.Slice(chrEntries, func(i, j int) bool { return chrEntries[i].Start0 < chrEntries[j].Start0 })
		endpoints := make([]PosType, 0, 2*len(chrEntries))
		prevStart, prevEnd := chrEntries[0].Start0, chrEntries[0].End
		for _, e := range chrEntries[1:] {
			if e.Start0 > prevEnd {
				endpoints = append(endpoints, prevStart, prevEnd)
				prevStart, prevEnd = e.Start0, e.End
				continue
			}
			if e.End > prevEnd {
				prevEnd = e.End
			}
		}
		m.nameMap[chr] = append(endpoints, prevStart, prevEnd)
	}
	return m, nil
}

// Contains reports whether the 1-based position pos1 on chromosome chrName
// lies in the mask.
func (m Mask) Contains(chrName string, pos1 int) bool {
	endpoints := m.nameMap[chrName]
	if len(endpoints) == 0 || pos1 <= 0 || pos1 >= PosTypeMax {
		return false
	}
	// The 0-based interval [pos1-1, pos1) is covered iff pos1-1 falls in an
	// odd-indexed gap of the endpoint sequence.
	idx := sort.Search(len(endpoints), func(i int) bool { return endpoints[i] > PosType(pos1-1) })
	return idx&1 == 1
}

// NumBases returns the number of positions covered by the mask.
func (m Mask) NumBases() int {
	n := 0
	for _, endpoints := range m.nameMap {
		for i := 0; i < len(endpoints); i += 2 {
			n += int(endpoints[i+1] - endpoints[i])
		}
	}
	return n
}

// ReadBED parses BED intervals (first three whitespace-delimited columns) from
// r.  Blank lines and "track", "browser" and '#' lines are skipped.
func ReadBED(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	var entries []Entry
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "track") || strings.HasPrefix(line, "browser") {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		if len(tokens) < 3 {
			return nil, fmt.Errorf("interval.ReadBED: line %d has fewer tokens than expected", lineIdx)
		}
		start, err := strconv.Atoi(tokens[1])
		if err != nil {
			return nil, fmt.Errorf("interval.ReadBED: line %d: %v", lineIdx, err)
		}
		end, err := strconv.Atoi(tokens[2])
		if err != nil {
			return nil, fmt.Errorf("interval.ReadBED: line %d: %v", lineIdx, err)
		}
		if start < 0 || end < start || end >= PosTypeMax {
			return nil, fmt.Errorf("interval.ReadBED: invalid coordinate pair on line %d", lineIdx)
		}
		entries = append(entries, Entry{ChrName: tokens[0], Start0: PosType(start), End: PosType(end)})
	}
	return entries, scanner.Err()
}

// NewMaskFromPath loads a (possibly gzipped) BED file into a Mask.
func NewMaskFromPath(ctx context.Context, path string) (mask Mask, err error) {
	var infile file.File
	if infile, err = file.Open(ctx, path); err != nil {
		return
	}
	defer func() {
		if cerr := infile.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	reader := io.Reader(infile.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if reader, err = gzip.NewReader(reader); err != nil {
			return
		}
	}
	var entries []Entry
	if entries, err = ReadBED(reader); err != nil {
		return
	}
	if mask, err = NewMask(entries); err != nil {
		return
	}
	log.Printf("%s: BED loaded, %d base(s) covered", path, mask.NumBases())
	return
}

// NewMaskFromRegion builds a single-interval Mask from a region string; see
// ParseRegionString.
func NewMaskFromRegion(region string) (Mask, error) {
	entry, err := ParseRegionString(region)
	if err != nil {
		return Mask{}, err
	}
	return NewMask([]Entry{entry})
}

// ParseRegionString parses a region string of one of the forms
//   [contig ID]:[1-based first pos]-[last pos]
//   [contig ID]:[1-based pos]
//   [contig ID]
// returning a contig ID and 0-based interval boundaries.  The interval
// [0, PosTypeMax - 1) is returned if there is no positional restriction.
func ParseRegionString(region string) (result Entry, err error) {
	if len(region) == 0 {
		err = fmt.Errorf("interval.ParseRegionString: empty region string")
		return
	}
	colonPos := strings.LastIndexByte(region, ':')
	if colonPos == -1 {
		result.ChrName = region
		result.End = PosTypeMax - 1
		return
	}
	if colonPos == 0 {
		err = fmt.Errorf("interval.ParseRegionString: empty contig ID")
		return
	}
	result.ChrName = region[:colonPos]
	rangeStr := strings.Replace(region[colonPos+1:], ",", "", -1)
	dashPos := strings.IndexByte(rangeStr, '-')
	if dashPos == -1 {
		var pos1 int
		if pos1, err = strconv.Atoi(rangeStr); err != nil {
			return
		}
		if pos1 <= 0 || pos1 >= PosTypeMax {
			err = fmt.Errorf("interval.ParseRegionString: position %v in region string out of range", rangeStr)
			return
		}
		result.Start0 = PosType(pos1 - 1)
		result.End = PosType(pos1)
		return
	}
	var start1, end int
	if start1, err = strconv.Atoi(rangeStr[:dashPos]); err != nil {
		return
	}
	if end, err = strconv.Atoi(rangeStr[dashPos+1:]); err != nil {
		return
	}
	if start1 <= 0 || end < start1 || end >= PosTypeMax {
		err = fmt.Errorf("interval.ParseRegionString: invalid range string %v", rangeStr)
		return
	}
	result.Start0 = PosType(start1 - 1)
	result.End = PosType(end)
	return
}
