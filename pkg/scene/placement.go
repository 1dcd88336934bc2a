package scene

// Vec3 is a position in physical LDraw units.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of v and o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Matrix3 is a 3x3 orientation matrix in row-major order.
type Matrix3 [9]float64

// Identity is the no-rotation orientation.
var Identity = Matrix3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// Mul returns the matrix product m * o.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var r Matrix3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m[row*3+k] * o[k*3+col]
			}
			r[row*3+col] = sum
		}
	}
	return r
}

// Apply returns the matrix-vector product m * v.
func (m Matrix3) Apply(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Placement is a single positioned, oriented instance of a catalog part.
// Placements are immutable once constructed; every placement operation
// produces new values and the serializer is their only consumer.
type Placement struct {
	Color    int     // LDraw color code
	Position Vec3    // physical position in LDU
	Orient   Matrix3 // orientation matrix
	Part     string  // catalog part reference, e.g. "3024.dat"
}
