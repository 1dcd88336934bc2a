// Package catalog holds the part catalog lookup tables.
//
// The tables map nominal sizes (width x length in studs) to LDraw part
// references for the brick, plate and tile families used by the
// composition layouts. They are statically initialized constant data with
// no runtime mutation path; components receive them as pure lookups.
package catalog

import "strings"

// Well-known part references used directly by the composition core.
const (
	// Baseplate32x32 is the 32x32 stud baseplate, one plate thick.
	Baseplate32x32 = "3811.dat"

	// Plate1x1 is the unit primitive used for glyph pixels.
	Plate1x1 = "3024.dat"
)

// Size is the nominal footprint of a part in studs.
type Size struct {
	Width  int
	Length int
}

// bricks maps width -> length -> part reference for standard bricks.
var bricks = map[int]map[int]string{
	1: {
		1: "3005.dat", // Brick 1x1
		2: "3004.dat", // Brick 1x2
		3: "3622.dat", // Brick 1x3
		4: "3010.dat", // Brick 1x4
		6: "3009.dat", // Brick 1x6
		8: "3008.dat", // Brick 1x8
	},
	2: {
		2: "3003.dat", // Brick 2x2
		3: "3002.dat", // Brick 2x3
		4: "3001.dat", // Brick 2x4
		6: "2456.dat", // Brick 2x6
		8: "3007.dat", // Brick 2x8
	},
}

// plates maps width -> length -> part reference for standard plates.
var plates = map[int]map[int]string{
	1: {
		1:  "3024.dat",  // Plate 1x1
		2:  "3023.dat",  // Plate 1x2
		3:  "3623.dat",  // Plate 1x3
		4:  "3710.dat",  // Plate 1x4
		6:  "3666.dat",  // Plate 1x6
		8:  "3460.dat",  // Plate 1x8
		10: "4477.dat",  // Plate 1x10
		12: "60479.dat", // Plate 1x12
	},
	2: {
		2:  "3022.dat", // Plate 2x2
		3:  "3021.dat", // Plate 2x3
		4:  "3020.dat", // Plate 2x4
		6:  "3795.dat", // Plate 2x6
		8:  "3034.dat", // Plate 2x8
		10: "3832.dat", // Plate 2x10
		12: "2445.dat", // Plate 2x12
	},
}

// tiles maps width -> length -> part reference for standard tiles.
var tiles = map[int]map[int]string{
	1: {
		1: "3070b.dat", // Tile 1x1
		2: "3069b.dat", // Tile 1x2
		3: "63864.dat", // Tile 1x3
		4: "2431b.dat", // Tile 1x4
		6: "6636.dat",  // Tile 1x6
		8: "4162.dat",  // Tile 1x8
	},
	2: {
		2: "3068b.dat", // Tile 2x2
		3: "26603.dat", // Tile 2x3
		4: "87079.dat", // Tile 2x4
		6: "69729.dat", // Tile 2x6
	},
}

// TrimRef strips the ".dat" suffix from a part reference.
func TrimRef(ref string) string {
	return strings.TrimSuffix(ref, ".dat")
}

// BrickSize returns the nominal size of a brick part reference.
func BrickSize(ref string) (Size, bool) {
	return sizeIn(bricks, ref)
}

// PlateSize returns the nominal size of a plate part reference.
func PlateSize(ref string) (Size, bool) {
	return sizeIn(plates, ref)
}

// TileSize returns the nominal size of a tile part reference.
func TileSize(ref string) (Size, bool) {
	return sizeIn(tiles, ref)
}

// SizeOf returns the nominal size of any cataloged brick, plate or tile.
func SizeOf(ref string) (Size, bool) {
	if s, ok := BrickSize(ref); ok {
		return s, true
	}
	if s, ok := PlateSize(ref); ok {
		return s, true
	}
	return TileSize(ref)
}

// PlateRef returns the part reference for a plate of the given footprint.
func PlateRef(width, length int) (string, bool) {
	ref, ok := plates[width][length]
	return ref, ok
}

// IsBrick reports whether ref is a cataloged brick.
func IsBrick(ref string) bool {
	_, ok := BrickSize(ref)
	return ok
}

// IsPlate reports whether ref is a cataloged plate.
func IsPlate(ref string) bool {
	_, ok := PlateSize(ref)
	return ok
}

// IsTile reports whether ref is a cataloged tile.
func IsTile(ref string) bool {
	_, ok := TileSize(ref)
	return ok
}

func sizeIn(family map[int]map[int]string, ref string) (Size, bool) {
	part := TrimRef(ref)
	for width, byLength := range family {
		for length, candidate := range byLength {
			if part == TrimRef(candidate) {
				return Size{Width: width, Length: length}, true
			}
		}
	}
	return Size{}, false
}
