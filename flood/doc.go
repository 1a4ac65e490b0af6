// Package flood scores cells of an integer grid by climbing reachability.
//
// From a start cell holding the base value, the search may step to any
// 4-neighbour whose value is exactly one higher. Score counts what the climb
// reaches at the peak value:
//
//   - Reachable mode counts distinct peak cells (visited cells are not re-entered).
//   - Paths mode counts distinct paths ending at a peak (no deduplication).
//
// Defaults are base 0 and peak 9, the layout of a hiking-trail height map.
// Base and peak must both be representable in the grid's element type.
//
// Complexity:
//
//   - Reachable: O(W×H) time and memory per start.
//   - Paths: O(P) time for P paths, bounded by 4^(peak-base).
package flood
