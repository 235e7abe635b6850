/*Package phaseset reconciles the phase sets of a read-based phaser
  (WhatsHap-style) with the haplotype orientation reported by a
  reference-panel phaser (SHAPEIT-style) on the same single-sample variants.

  For every variant called by both tools, the two genotypes are compared; the
  variant is "swapped" if they differ.  A read-based phase set whose joined
  variants are not all swapped or all unswapped contains an orientation flip
  that the read-based phaser failed to break.  Such a set is cut into maximal
  runs of constant orientation (Segment), and the run boundaries are then
  extended to the set's variants that the reference-based phaser did not call
  (PropagateIndices).  Each resulting phase set is named by the position of its
  first variant, and the read-based table is written back with the PS
  component of the sample column rewritten.
*/
package phaseset
