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

/*
Given the output of a reference-panel phaser (e.g. SHAPEIT) and of a read-based
phaser (e.g. WhatsHap) for the same sample, bio-phaseset splits every
read-based phase set that contains an orientation flip, as judged against the
reference-panel calls, into consistent phase sets.

The output is the read-based VCF body as a TSV with a
"Chromosome POS ID REF ALT Score FILTER INFO FORMAT Sample" header row.  The
last component of the Sample column, the PS tag, is rewritten for every
variant of a corrected phase set; the new PS is the position of the first
variant of the run.  Everything else is copied verbatim.

Reference-based chromosome names are compared after stripping
-ref-chrom-prefix ("chr" by default, case-insensitive).  -bed or -region limit
which reference-based calls are compared.

Sample usage:
bio-phaseset \
    -stats sample.phaseset-stats.tsv \
    shapeit.vcf.gz \
    whatshap.vcf.gz \
    sample.corrected.tsv
*/
package main
