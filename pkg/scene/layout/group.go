package layout

import (
	"math"
	"strconv"

	"github.com/lpauloin/BrickTablePlanner/pkg/errors"
	"github.com/lpauloin/BrickTablePlanner/pkg/scene"
	"github.com/lpauloin/BrickTablePlanner/pkg/scene/glyph"
	"github.com/lpauloin/BrickTablePlanner/pkg/scene/template"
	"github.com/lpauloin/BrickTablePlanner/pkg/scene/transform"
)

// MinifigFeetOffset is the distance in LDraw units from the minifig
// template's origin down to its feet. The minifig assembly rests on the
// baseplate center plane; other assembly types define their own offsets.
const MinifigFeetOffset = 30

// Cell is a sub-grid coordinate (row 0 at the top, column 0 at the left).
type Cell struct {
	Row, Col int
}

// Offset is a horizontal displacement from an assembly center, in studs.
type Offset struct {
	DX, DZ float64
}

// CenterCells returns the named exclusion set for group sub-grids: the
// centermost cells of the middle row (two cells for an even column count,
// one for an odd count). The group's digit label occupies that space.
func CenterCells(cols, rows int) map[Cell]bool {
	midRow := rows / 2
	cells := make(map[Cell]bool, 2)
	if cols%2 == 0 {
		cells[Cell{Row: midRow, Col: cols/2 - 1}] = true
		cells[Cell{Row: midRow, Col: cols / 2}] = true
	} else {
		cells[Cell{Row: midRow, Col: cols / 2}] = true
	}
	return cells
}

// SubGridOffsets returns center-relative offsets for a cols x rows
// sub-grid with the given stud spacing, skipping excluded cells. Offsets
// are emitted in row-major order and are symmetric around the center.
func SubGridOffsets(cols, rows int, spacing float64, exclude map[Cell]bool) []Offset {
	var out []Offset
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if exclude[Cell{Row: row, Col: col}] {
				continue
			}
			out = append(out, Offset{
				DX: (float64(col) - float64(cols-1)/2) * spacing,
				DZ: (float64(row) - float64(rows-1)/2) * spacing,
			})
		}
	}
	return out
}

// RingOffsets returns count center-relative offsets spaced evenly around
// a circle of the given stud radius, item i at angle 2*pi*i/count.
func RingOffsets(count int, radius float64) []Offset {
	out := make([]Offset, count)
	for i := range out {
		angle := 2 * math.Pi * float64(i) / float64(count)
		out[i] = Offset{
			DX: radius * math.Cos(angle),
			DZ: radius * math.Sin(angle),
		}
	}
	return out
}

// GroupSpec describes one framed group assembly: a digit label at the
// center, minifig instances on the surrounding sub-grid, and a
// rectangular frame.
type GroupSpec struct {
	Label string // digit text placed at the group center

	// Minifig sub-grid shape and stud spacing.
	Cols, Rows int
	Spacing    float64

	// Frame dimensions in studs.
	FrameWidth, FrameHeight int

	Color int
}

// Group composes one group assembly centered at (centerStudX,
// centerStudZ). The template must already be normalized; minifig
// instances share it by reference.
func Group(ctx scene.Context, tpl *template.Template, spec GroupSpec, centerStudX, centerStudZ float64) ([]scene.Placement, error) {
	bm, err := glyph.RenderText(spec.Label, glyph.DefaultGap)
	if err != nil {
		return nil, err
	}
	out := glyph.PlaceCentered(ctx, bm, centerStudX, centerStudZ, spec.Color)

	anchor := transform.Anchor{
		SurfaceY:   ctx.BaseplateOriginY(),
		BaseOffset: MinifigFeetOffset,
	}
	for _, off := range SubGridOffsets(spec.Cols, spec.Rows, spec.Spacing, CenterCells(spec.Cols, spec.Rows)) {
		figure, err := transform.PlaceRotated(
			tpl.Parts,
			ctx.Studs(centerStudX+off.DX),
			ctx.Studs(centerStudZ+off.DZ),
			anchor,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, figure...)
	}

	frame, err := Frame(ctx, centerStudX, centerStudZ, spec.FrameWidth, spec.FrameHeight, spec.Color)
	if err != nil {
		return nil, err
	}
	return append(out, frame...), nil
}

// GroupsGrid composes count groups labeled "1".."count" onto their
// assigned baseplate cells.
func GroupsGrid(ctx scene.Context, tpl *template.Template, grid GridSpec, spec GroupSpec, count int) ([]scene.Placement, error) {
	if count < 1 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "group count must be positive, got %d", count)
	}

	var out []scene.Placement
	for k := 1; k <= count; k++ {
		spec := spec
		spec.Label = strconv.Itoa(k)
		x, z := grid.GroupCenter(k, count)
		group, err := Group(ctx, tpl, spec, x, z)
		if err != nil {
			return nil, err
		}
		out = append(out, group...)
	}
	return out, nil
}
