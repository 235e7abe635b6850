/*Package interval implements position masks built from BED files or region
  strings.  Overlapping and touching intervals are merged, so a Mask only
  answers membership queries; it does not track the original intervals.
  Coordinates are stored zero-based half-open, as in BED.
*/
package interval
