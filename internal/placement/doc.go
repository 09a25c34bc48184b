// Package placement chooses screen positions for map annotations so that
// they avoid everything already drawn.
//
// Three placers are provided, one per annotation kind:
//
//   - Label: a radial search around a point feature. Leader lengths grow
//     outward from the feature radius and, for each length, every whole degree
//     is tried. The first candidate that clashes with nothing is taken at
//     once; otherwise the least-clashing candidate seen wins.
//   - Title: an exhaustive scan over a grid of anchors covering the canvas.
//     The scan always completes and returns the global minimum on the grid.
//   - Legend: a fixed position near the top-right corner, computed without
//     search.
//
// # Ordering
//
// Every placer scores candidates against a clash.Index. The caller is
// responsible for registering each result before the next placement so that
// later annotations see earlier ones. Results depend only on the index
// contents and the inputs, so identical runs produce identical maps.
package placement
