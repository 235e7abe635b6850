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
	"path/filepath"
	"testing"

	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bio-phaseset/phaseset"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestBioPhaseset(t *testing.T) {
	ctx := vcontext.Background()
	tmpdir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpdir)

	shapeit := filepath.Join("testdata", "shapeit.vcf")
	for _, tt := range []struct {
		whatshap, expected string
	}{
		{"whatshap.vcf", "whatshap.corrected.tsv"},
		// Nothing to correct: the input comes back with a header row.
		{"whatshap_consistent.vcf", "whatshap_consistent.expected.tsv"},
	} {
		outPath := filepath.Join(tmpdir, tt.expected)
		err := runPhaseset(ctx, []string{shapeit, filepath.Join("testdata", tt.whatshap), outPath}, phaseset.DefaultOpts)
		assert.NoError(t, err)
		testutil.CompareFiles(t, outPath, filepath.Join("testdata", tt.expected), nil)
	}
}

func TestBioPhasesetUsageErrors(t *testing.T) {
	ctx := vcontext.Background()
	expect.NotNil(t, runPhaseset(ctx, []string{"a.vcf", "b.vcf"}, phaseset.DefaultOpts))

	opts := phaseset.DefaultOpts
	opts.BedPath = "x.bed"
	opts.Region = "chr1"
	expect.NotNil(t, runPhaseset(ctx, []string{"a.vcf", "b.vcf", "out.tsv"}, opts))

	expect.NotNil(t, runPhaseset(ctx, []string{"testdata/missing.vcf", "testdata/whatshap.vcf", "out.tsv"}, phaseset.DefaultOpts))
}
