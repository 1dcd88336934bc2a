// Package layout arranges repeated sub-assemblies on the scene grid.
//
// Three placement families are provided:
//
//   - uniform grids: baseplate grids and the "groups grid" that assigns
//     numbered group assemblies to baseplate cells in row-major order,
//     with a named special case centering the final group on its row
//   - non-overlapping frames: rectangular borders tiled from 1xN plates
//     using fixed per-span segment decompositions, never search
//   - sub-placements: rectangular sub-grids with a named exclusion set,
//     and rings placing items evenly around a circle
//
// Collision avoidance is by construction: segment partitions sum exactly
// to their spans and sub-grid spacings are chosen so assemblies cannot
// overlap. Any violation is a configuration error and fails fast.
//
// Grid rows are inverted before conversion to physical coordinates
// (row 0 is visually the top) to match the glyph renderer's convention;
// see the package comment of pkg/scene/glyph.
package layout
