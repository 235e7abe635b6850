// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bio-phaseset/encoding/vcf"
	"github.com/grailbio/bio-phaseset/phaseset"
	"github.com/pkg/errors"
)

var (
	refChromPrefix   = flag.String("ref-chrom-prefix", phaseset.DefaultOpts.RefChromPrefix, "Prefix stripped (case-insensitively) from reference-based chromosome names before matching")
	readChromPrefix  = flag.String("read-chrom-prefix", phaseset.DefaultOpts.ReadChromPrefix, "Prefix stripped (case-insensitively) from read-based chromosome names before matching")
	bedPath          = flag.String("bed", phaseset.DefaultOpts.BedPath, "Only compare reference-based calls inside this BED; incompatible with -region")
	region           = flag.String("region", phaseset.DefaultOpts.Region, "Only compare reference-based calls inside this region. Format as <contig ID>:<1-based first pos>-<last pos>, <contig ID>:<1-based pos>, or just <contig ID>; incompatible with -bed")
	statsPath        = flag.String("stats", phaseset.DefaultOpts.StatsPath, "If set, write run statistics to this TSV")
	inconsistentPath = flag.String("inconsistent", phaseset.DefaultOpts.InconsistentPath, "If set, write the list of corrected phase sets to this TSV")
)

func bioPhasesetUsage() {
	fmt.Printf("Usage: %s [OPTIONS] reference_based_vcf read_based_vcf output_path\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

// runPhaseset corrects the phase sets of args[1] against args[0] and writes
// args[2].
func runPhaseset(ctx context.Context, args []string, opts phaseset.Opts) error {
	if len(args) != 3 {
		return fmt.Errorf("expected 3 positional arguments (reference_based_vcf read_based_vcf output_path), got %d: '%s'",
			len(args), strings.Join(args, " "))
	}
	if opts.BedPath != "" && opts.Region != "" {
		return fmt.Errorf("-bed and -region are mutually exclusive")
	}
	_, err := phaseset.Run(ctx, args[0], args[1], args[2], opts)
	return err
}

func main() {
	flag.Usage = bioPhasesetUsage
	shutdown := grail.Init()
	defer shutdown()

	ctx := vcontext.Background()
	opts := phaseset.Opts{
		RefChromPrefix:   *refChromPrefix,
		ReadChromPrefix:  *readChromPrefix,
		BedPath:          *bedPath,
		Region:           *region,
		StatsPath:        *statsPath,
		InconsistentPath: *inconsistentPath,
	}
	if err := runPhaseset(ctx, flag.Args(), opts); err != nil {
		if merr, ok := errors.Cause(err).(*vcf.MalformedInputError); ok {
			log.Fatalf("malformed input: %v", merr)
		}
		log.Fatalf("%v", err)
	}
	log.Debug.Printf("exiting")
}
