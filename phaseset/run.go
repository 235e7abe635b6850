package phaseset

import (
	"context"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/bio-phaseset/encoding/vcf"
	"github.com/grailbio/bio-phaseset/interval"
	"github.com/pkg/errors"
)

// loadMask resolves opts.BedPath or opts.Region into opts.Mask.
func loadMask(ctx context.Context, opts *Opts) error {
	if opts.BedPath != "" && opts.Region != "" {
		return errors.New("at most one of BedPath and Region may be set")
	}
	var (
		mask interval.Mask
		err  error
	)
	switch {
	case opts.BedPath != "":
		mask, err = interval.NewMaskFromPath(ctx, opts.BedPath)
	case opts.Region != "":
		mask, err = interval.NewMaskFromRegion(opts.Region)
	default:
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "loading orientation mask")
	}
	opts.Mask = &mask
	return nil
}

// Run reads the reference-based VCF at refPath and the read-based VCF at
// readPath, corrects the read-based phase sets, and writes the result to
// outPath, along with any requested reports.  Either every output is written
// or none is left behind.  Malformed input yields an error whose cause is a
// *vcf.MalformedInputError.
func Run(ctx context.Context, refPath, readPath, outPath string, opts Opts) (Stats, error) {
	if err := loadMask(ctx, &opts); err != nil {
		return Stats{}, err
	}
	ref, err := vcf.ReadFile(ctx, refPath)
	if err != nil {
		return Stats{}, errors.Wrap(err, "reading reference-based VCF")
	}
	read, err := vcf.ReadFile(ctx, readPath)
	if err != nil {
		return Stats{}, errors.Wrap(err, "reading read-based VCF")
	}
	log.Printf("read %d reference-based and %d read-based records", len(ref), len(read))

	res := Correct(ref, read, &opts)
	// Reports go first so that a failure leaves no corrected table behind.
	var reports []string
	if opts.StatsPath != "" {
		if err := WriteStats(ctx, opts.StatsPath, res.Stats); err != nil {
			return res.Stats, err
		}
		reports = append(reports, opts.StatsPath)
	}
	if opts.InconsistentPath != "" {
		if err := WriteSetReports(ctx, opts.InconsistentPath, res.Inconsistent); err != nil {
			removeAll(ctx, reports)
			return res.Stats, err
		}
		reports = append(reports, opts.InconsistentPath)
	}
	if err := vcf.WriteFile(ctx, outPath, res.Records); err != nil {
		removeAll(ctx, reports)
		return res.Stats, err
	}
	log.Printf("output saved to %s", outPath)
	log.Printf("stats: %+v", res.Stats)
	return res.Stats, nil
}

func removeAll(ctx context.Context, paths []string) {
	for _, path := range paths {
		if err := file.Remove(ctx, path); err != nil {
			log.Error.Printf("%s: remove: %v", path, err)
		}
	}
}
