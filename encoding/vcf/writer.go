package vcf

import (
	"context"
	"io"
	"runtime"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/hts/bgzf"
)

// Write writes a header row naming Columns followed by records, tab-separated
// and without any quoting.
func Write(w io.Writer, records []Record) error {
	tw := tsv.NewWriter(w)
	for _, col := range Columns {
		tw.WriteString(col)
	}
	if err := tw.EndLine(); err != nil {
		return err
	}
	for i := range records {
		r := &records[i]
		tw.WriteString(r.Chrom)
		tw.WriteInt64(int64(r.Pos))
		tw.WriteString(r.ID)
		tw.WriteString(r.Ref)
		tw.WriteString(r.Alt)
		tw.WriteString(r.Qual)
		tw.WriteString(r.Filter)
		tw.WriteString(r.Info)
		tw.WriteString(r.Format)
		tw.WriteString(r.Sample)
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteFile writes records to path as by Write.  Paths ending in ".gz" are
// bgzip-compressed.  The file only becomes visible once it has been written
// and closed successfully.
func WriteFile(ctx context.Context, path string, records []Record) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.E(err, "create", path)
	}
	once := errors.Once{}
	defer func() {
		if err != nil {
			once.Set(err)
			// Abandon the partially written output.
			out.Discard(ctx)
			log.Printf("%s: discarded after error: %v", path, err)
		} else {
			once.Set(out.Close(ctx))
		}
		err = once.Err()
	}()

	var w io.Writer = out.Writer(ctx)
	if strings.HasSuffix(path, ".gz") {
		bw := bgzf.NewWriter(w, runtime.NumCPU())
		if err = Write(bw, records); err != nil {
			return errors.E(err, "write", path)
		}
		if err = bw.Close(); err != nil {
			return errors.E(err, "bgzf close", path)
		}
		return nil
	}
	if err = Write(w, records); err != nil {
		return errors.E(err, "write", path)
	}
	return nil
}
