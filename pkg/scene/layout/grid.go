package layout

// GridSpec describes the baseplate grid that group assemblies are
// arranged on.
type GridSpec struct {
	// Columns and Rows give the baseplate grid shape.
	Columns, Rows int

	// RowOffset shifts the whole arrangement down by that many baseplate
	// rows, leaving the top rows free (the reference scene keeps its top
	// row for name text).
	RowOffset int
}

// GroupCenter returns the center of the baseplate cell assigned to the
// 1-based group index k out of count groups, in stud coordinates.
//
// Groups fill the grid in row-major order. The final group, when count is
// not a multiple of Columns, is forced to the horizontally centered
// column of its row instead of the leftmost column. The row index is
// inverted before conversion because the authored vertical convention
// grows upward while row indices grow downward.
func (g GridSpec) GroupCenter(k, count int) (studX, studZ float64) {
	row := (k - 1) / g.Columns
	col := (k - 1) % g.Columns

	if k == count && count%g.Columns != 0 {
		col = g.Columns / 2
	}

	studX = float64(col) * StudsPerPlate
	studZ = float64(g.Rows-1-row-g.RowOffset) * StudsPerPlate
	return studX, studZ
}
