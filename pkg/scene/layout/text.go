package layout

import (
	"github.com/lpauloin/BrickTablePlanner/pkg/scene"
	"github.com/lpauloin/BrickTablePlanner/pkg/scene/glyph"
)

// TextSpec describes a text placed inside one baseplate cell of the grid.
type TextSpec struct {
	Text string

	// PlateRow and PlateCol select the baseplate cell. Row 0 is the top
	// row, column 0 the leftmost baseplate.
	PlateRow, PlateCol int

	// GridRows is the total baseplate row count, needed to convert the
	// top-origin row index to the bottom-origin physical grid.
	GridRows int

	Color int

	// Center centers the text inside the baseplate; otherwise the text is
	// anchored at Margin studs from the cell corner.
	Center bool
	Margin float64

	// Gap is the column gap between glyphs (DefaultGap when zero).
	Gap int

	// DeltaX and DeltaZ nudge the final position, in studs.
	DeltaX, DeltaZ float64
}

// TextOnBaseplate renders a text inside a specific baseplate cell.
func TextOnBaseplate(ctx scene.Context, spec TextSpec) ([]scene.Placement, error) {
	gap := spec.Gap
	if gap == 0 {
		gap = glyph.DefaultGap
	}

	bm, err := glyph.RenderText(spec.Text, gap)
	if err != nil {
		return nil, err
	}

	// Convert the top-origin row index to a bottom-origin index so the
	// computed Z matches the physical grid placement.
	rowFromBottom := spec.GridRows - 1 - spec.PlateRow
	baseX := float64(spec.PlateCol) * StudsPerPlate
	baseZ := float64(rowFromBottom) * StudsPerPlate

	var startX, startZ float64
	if spec.Center {
		startX = baseX + (StudsPerPlate-float64(bm.Width()))/2
		startZ = baseZ + (StudsPerPlate-float64(bm.Height()))/2
	} else {
		startX = baseX + spec.Margin
		startZ = baseZ + spec.Margin
	}
	startX += spec.DeltaX
	startZ += spec.DeltaZ

	return glyph.PlaceAt(ctx, bm, startX, startZ, spec.Color), nil
}
