// Package scene defines the coordinate system and placement records for
// composed brick models.
//
// All layout math happens in logical "stud" space; a Context converts stud
// coordinates to physical LDraw units (LDU) with a fixed integer scale.
// The composed output is a flat ordered sequence of Placement records,
// encoded one per line in the LDraw type-1 format (see encode.go).
//
// # Vertical convention
//
// The reference Y plane is Context.GroundY. Baseplates are placed by their
// center at GroundY + half the baseplate thickness; plates and tiles resting
// on top of the baseplate sit at GroundY - half the thickness. These values
// were tuned against Studio exports and reproduce a known-good visual
// result; changing them requires re-validating the rendered output.
package scene

// LDraw units (LDU).
const (
	// StudSize is the number of LDraw units per stud.
	StudSize = 20

	// PlateHeight is the height of a standard plate in LDraw units.
	PlateHeight = 8

	// BaseplateThickness is the thickness of the 32x32 baseplate (3811.dat),
	// one plate tall.
	BaseplateThickness = 8
)

// Context holds global scene parameters and performs unit conversions.
// The zero value uses ground plane Y=0, which matches the reference output.
type Context struct {
	// GroundY is the reference Y plane used throughout the scene.
	GroundY float64
}

// Studs converts stud coordinates to LDraw units.
func (c Context) Studs(v float64) float64 {
	return v * StudSize
}

// BaseplateOriginY returns the Y coordinate used to place the origin
// (center) of a baseplate.
func (c Context) BaseplateOriginY() float64 {
	return c.GroundY + BaseplateThickness/2
}

// BaseplateTopY returns the Y coordinate used to place plates and tiles
// sitting on top of the baseplate.
func (c Context) BaseplateTopY() float64 {
	return c.GroundY - BaseplateThickness/2
}

// GridCenter returns the geometric center of a baseplate grid, in stud
// coordinates.
//
// The baseplate builder places each baseplate by its center at
// origin + index*studsPerPlate, so the center of the overall grid is
// origin + ((count-1)*studsPerPlate)/2. Example (cols=3): centers at
// 0, 32, 64, grid center at 32.
func GridCenter(cols, rows int, studsPerPlate, originX, originZ float64) (cx, cz float64) {
	cx = originX + float64(cols-1)*studsPerPlate/2
	cz = originZ + float64(rows-1)*studsPerPlate/2
	return cx, cz
}
