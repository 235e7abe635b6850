package vcf

import (
	"bufio"
	"context"
	"io"
	"strconv"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
)

// Read parses every data row of r.  name is only used in error messages.  A
// row with fewer than NumColumns fields, or whose POS is not an integer,
// fails the whole read with a *MalformedInputError.  Columns past the
// sample column are ignored.
func Read(r io.Reader, name string) ([]Record, error) {
	tr := tsv.NewReader(bufio.NewReaderSize(r, 64<<10))
	tr.Comment = '#'
	tr.LazyQuotes = true
	// Row width is checked below so that short rows are reported as malformed
	// input rather than as a generic CSV error.
	tr.FieldsPerRecord = -1

	var records []Record
	for row := 1; ; row++ {
		fields, err := tr.Reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &MalformedInputError{Path: name, Row: row, Reason: err.Error()}
		}
		if len(fields) < NumColumns {
			return nil, &MalformedInputError{
				Path:   name,
				Row:    row,
				Reason: "expected " + strconv.Itoa(NumColumns) + " fields, found " + strconv.Itoa(len(fields)),
			}
		}
		pos, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, &MalformedInputError{Path: name, Row: row, Reason: "bad POS " + strconv.Quote(fields[1])}
		}
		records = append(records, Record{
			Chrom:  fields[0],
			Pos:    pos,
			ID:     fields[2],
			Ref:    fields[3],
			Alt:    fields[4],
			Qual:   fields[5],
			Filter: fields[6],
			Info:   fields[7],
			Format: fields[8],
			Sample: fields[9],
		})
	}
	return records, nil
}

// ReadFile reads the VCF at path, which may be any path understood by
// grailbio/base/file.  Paths ending in ".gz" or ".bz2" are decompressed
// transparently.
func ReadFile(ctx context.Context, path string) (records []Record, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "open", path)
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = errors.E(cerr, "close", path)
		}
	}()
	var inr io.Reader = in.Reader(ctx)
	if u := compress.NewReaderPath(inr, in.Name()); u != nil {
		// Some corruption is only detected when the decompressor is closed.
		defer func() {
			if cerr := u.Close(); cerr != nil && err == nil {
				records, err = nil, errors.E(cerr, "decompress", path)
			}
		}()
		inr = u
	}
	if records, err = Read(inr, path); err != nil {
		return nil, err
	}
	log.Debug.Printf("%s: read %d records", path, len(records))
	return records, nil
}
