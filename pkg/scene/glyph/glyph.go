// Package glyph renders character strings as stud-grid bitmaps built
// from 1x1 plates.
//
// Each supported character maps to a fixed 5x7 occupancy pattern;
// RenderText concatenates patterns left to right with a configurable gap
// and the placement functions map filled cells to unit plate placements
// resting on the baseplate surface.
//
// # Vertical convention
//
// Bitmap row 0 is rendered visually at the top: the placement functions
// invert the row axis (row r maps to Z offset height-1-r) because Z grows
// "downward" in the authored viewing convention. The layout composer uses
// the same convention for its grid rows; keep the two in sync, the
// rendered output has to be re-validated visually whenever either
// changes.
package glyph

import (
	"unicode"

	"github.com/lpauloin/BrickTablePlanner/pkg/catalog"
	"github.com/lpauloin/BrickTablePlanner/pkg/errors"
	"github.com/lpauloin/BrickTablePlanner/pkg/scene"
)

// DefaultGap is the number of empty columns between adjacent glyphs.
const DefaultGap = 1

// Bitmap is a fixed-height 2D occupancy grid. Row 0 is the visual top.
type Bitmap [][]bool

// Width returns the number of columns.
func (b Bitmap) Width() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Height returns the number of rows.
func (b Bitmap) Height() int {
	return len(b)
}

// RenderText converts text into a single bitmap, concatenating the glyph
// patterns left to right with gap empty columns between adjacent glyphs
// (none after the last). Lowercase letters map to their uppercase glyphs.
//
// Returns an EMPTY_TEXT error for an empty string and an
// UNSUPPORTED_CHARACTER error naming the first character outside the
// glyph table.
func RenderText(text string, gap int) (Bitmap, error) {
	if text == "" {
		return nil, errors.New(errors.ErrCodeEmptyText, "cannot render empty text")
	}

	runes := []rune(text)
	patterns := make([][Height]string, len(runes))
	for i, r := range runes {
		pattern, ok := font[unicode.ToUpper(r)]
		if !ok {
			return nil, errors.New(errors.ErrCodeUnsupportedCharacter, "unsupported character %q", r)
		}
		patterns[i] = pattern
	}

	totalWidth := len(runes)*Width + (len(runes)-1)*gap
	bm := make(Bitmap, Height)
	for r := range bm {
		bm[r] = make([]bool, 0, totalWidth)
		for i, pattern := range patterns {
			for _, cell := range pattern[r] {
				bm[r] = append(bm[r], cell == '#')
			}
			if i < len(patterns)-1 {
				bm[r] = append(bm[r], make([]bool, gap)...)
			}
		}
	}
	return bm, nil
}

// TextWidth returns the column count of text rendered with the given gap,
// without building the bitmap. It validates characters the same way
// RenderText does.
func TextWidth(text string, gap int) (int, error) {
	if text == "" {
		return 0, errors.New(errors.ErrCodeEmptyText, "cannot measure empty text")
	}
	runes := []rune(text)
	for _, r := range runes {
		if _, ok := font[unicode.ToUpper(r)]; !ok {
			return 0, errors.New(errors.ErrCodeUnsupportedCharacter, "unsupported character %q", r)
		}
	}
	return len(runes)*Width + (len(runes)-1)*gap, nil
}

// PlaceCentered places the bitmap centered on (centerStudX, centerStudZ)
// in stud coordinates. Centering is done on the pixel grid, using
// (dimension-1)/2, so odd-sized bitmaps land exactly on studs with no
// half-unit offset.
//
// Every filled cell becomes one 1x1 plate in the given color, resting on
// the baseplate surface.
func PlaceCentered(ctx scene.Context, bm Bitmap, centerStudX, centerStudZ float64, color int) []scene.Placement {
	originX := centerStudX - float64(bm.Width()-1)/2
	originZ := centerStudZ - float64(bm.Height()-1)/2
	return PlaceAt(ctx, bm, originX, originZ, color)
}

// PlaceAt places the bitmap with its low-X/low-Z corner at
// (originStudX, originStudZ) in stud coordinates. Column c maps to
// origin+c on the X axis; row r maps to origin + (height-1-r) on the Z
// axis so row 0 renders visually at the top.
func PlaceAt(ctx scene.Context, bm Bitmap, originStudX, originStudZ float64, color int) []scene.Placement {
	y := ctx.BaseplateTopY()

	var out []scene.Placement
	for r, row := range bm {
		for c, filled := range row {
			if !filled {
				continue
			}
			studX := originStudX + float64(c)
			studZ := originStudZ + float64(bm.Height()-1-r)
			out = append(out, scene.Placement{
				Color:    color,
				Position: scene.Vec3{X: ctx.Studs(studX), Y: y, Z: ctx.Studs(studZ)},
				Orient:   scene.Identity,
				Part:     catalog.Plate1x1,
			})
		}
	}
	return out
}
