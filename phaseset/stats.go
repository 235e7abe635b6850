package phaseset

import (
	"context"
	"strconv"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
)

// Stats summarizes one correction run.
type Stats struct {
	RefRecords          int // reference-based rows read
	ReadRecords         int // read-based rows read
	MaskedRefRecords    int // reference-based rows outside the mask
	DuplicateRefRecords int // reference-based rows repeating an earlier variant
	JoinedRecords       int // variants called by both phasers
	PhaseSets           int // distinct read-based phase sets
	InconsistentSets    int // phase sets with an orientation flip
	RewrittenRecords    int // rows whose PS was rewritten
	NewPhaseSets        int // phase sets the inconsistent ones were split into
}

func (s Stats) rows() [][2]string {
	itoa := strconv.Itoa
	return [][2]string{
		{"ref_records", itoa(s.RefRecords)},
		{"read_records", itoa(s.ReadRecords)},
		{"masked_ref_records", itoa(s.MaskedRefRecords)},
		{"duplicate_ref_records", itoa(s.DuplicateRefRecords)},
		{"joined_records", itoa(s.JoinedRecords)},
		{"phase_sets", itoa(s.PhaseSets)},
		{"inconsistent_phase_sets", itoa(s.InconsistentSets)},
		{"rewritten_records", itoa(s.RewrittenRecords)},
		{"new_phase_sets", itoa(s.NewPhaseSets)},
	}
}

// SetReport describes one inconsistent phase set.
type SetReport struct {
	Set      SetID
	Variants int // read-based variants in the set
	Runs     int // constant-orientation runs it was split into
}

// writeTSV creates path and fills it via fn.  The file is discarded if fn
// fails.
func writeTSV(ctx context.Context, path string, fn func(w *tsv.Writer) error) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.E(err, "create", path)
	}
	w := tsv.NewWriter(out.Writer(ctx))
	if err = fn(w); err == nil {
		err = w.Flush()
	}
	if err != nil {
		out.Discard(ctx)
		return errors.E(err, "write", path)
	}
	if err = out.Close(ctx); err != nil {
		return errors.E(err, "close", path)
	}
	return nil
}

// WriteStats writes s to path as a two-column METRIC/VALUE TSV.
func WriteStats(ctx context.Context, path string, s Stats) error {
	return writeTSV(ctx, path, func(w *tsv.Writer) error {
		w.WriteString("METRIC")
		w.WriteString("VALUE")
		if err := w.EndLine(); err != nil {
			return err
		}
		for _, row := range s.rows() {
			w.WriteString(row[0])
			w.WriteString(row[1])
			if err := w.EndLine(); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteSetReports writes one CHROM/PS/N_VARIANTS/N_RUNS row per report.
func WriteSetReports(ctx context.Context, path string, reports []SetReport) error {
	return writeTSV(ctx, path, func(w *tsv.Writer) error {
		w.WriteString("#CHROM\tPS\tN_VARIANTS\tN_RUNS")
		if err := w.EndLine(); err != nil {
			return err
		}
		for _, r := range reports {
			w.WriteString(r.Set.Chrom)
			w.WriteString(r.Set.PS)
			w.WriteInt64(int64(r.Variants))
			w.WriteInt64(int64(r.Runs))
			if err := w.EndLine(); err != nil {
				return err
			}
		}
		return nil
	})
}
