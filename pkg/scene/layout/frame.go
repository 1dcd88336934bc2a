package layout

import (
	"github.com/lpauloin/BrickTablePlanner/pkg/catalog"
	"github.com/lpauloin/BrickTablePlanner/pkg/errors"
	"github.com/lpauloin/BrickTablePlanner/pkg/scene"
)

// plateTurned is the +90 degree rotation around the vertical axis used
// for the vertical frame runs, so 1xN plates lie along the Z axis.
var plateTurned = scene.Matrix3{
	0, 0, 1,
	0, 1, 0,
	-1, 0, 0,
}

// spanSegments is the fixed decomposition table: for each supported span
// (in studs), the ordered 1xN plate lengths that tile it exactly. This is
// constant data, not a bin-packing search; an unsupported span is a
// configuration error.
var spanSegments = map[int][]int{
	8:  {8},
	10: {10},
	12: {12},
	14: {12, 2},
	16: {12, 4},
	18: {12, 6},
	20: {12, 8},
	22: {12, 10},
	24: {12, 12},
	26: {12, 12, 2},
	28: {12, 12, 4},
	30: {12, 12, 6},
	32: {12, 12, 8},
}

// SpanSegments returns the segment decomposition for a span.
// Returns an UNSUPPORTED_SPAN error if the table has no entry.
func SpanSegments(span int) ([]int, error) {
	segments, ok := spanSegments[span]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupportedSpan, "no segment decomposition registered for span %d", span)
	}
	return segments, nil
}

// Frame builds a one-stud-thick rectangular frame of 1xN plates around
// (centerStudX, centerStudZ), width x height studs.
//
// The horizontal (top and bottom) runs include the corner cells and tile
// the full width; the vertical (left and right) runs start one stud inset
// so the corners are never double-placed, and tile height-2. Each segment
// is placed by its own center, start + (length-1)/2, and the start cursor
// advances by the segment length, so segments never gap or overlap.
func Frame(ctx scene.Context, centerStudX, centerStudZ float64, width, height, color int) ([]scene.Placement, error) {
	horizontal, err := SpanSegments(width)
	if err != nil {
		return nil, err
	}
	vertical, err := SpanSegments(height - 2)
	if err != nil {
		return nil, err
	}

	left := centerStudX - float64(width-1)/2
	right := left + float64(width-1)
	bottom := centerStudZ - float64(height-1)/2
	top := bottom + float64(height-1)

	var out []scene.Placement

	for _, zEdge := range []float64{bottom, top} {
		run, err := tileRun(ctx, horizontal, left, width, func(center float64) (scene.Vec3, scene.Matrix3) {
			return scene.Vec3{X: ctx.Studs(center), Y: ctx.BaseplateTopY(), Z: ctx.Studs(zEdge)}, scene.Identity
		}, color)
		if err != nil {
			return nil, err
		}
		out = append(out, run...)
	}

	for _, xEdge := range []float64{left, right} {
		run, err := tileRun(ctx, vertical, bottom+1, height-2, func(center float64) (scene.Vec3, scene.Matrix3) {
			return scene.Vec3{X: ctx.Studs(xEdge), Y: ctx.BaseplateTopY(), Z: ctx.Studs(center)}, plateTurned
		}, color)
		if err != nil {
			return nil, err
		}
		out = append(out, run...)
	}

	return out, nil
}

// tileRun places one run of 1xN plate segments along an axis. The at
// callback converts a segment center (in studs along the run axis) to a
// full position and orientation.
func tileRun(ctx scene.Context, segments []int, start float64, span int, at func(center float64) (scene.Vec3, scene.Matrix3), color int) ([]scene.Placement, error) {
	out := make([]scene.Placement, 0, len(segments))

	cursor := start
	for _, length := range segments {
		ref, ok := catalog.PlateRef(1, length)
		if !ok {
			return nil, errors.New(errors.ErrCodeUnsupportedSpan, "segment length %d has no 1xN plate in the catalog", length)
		}
		center := cursor + float64(length-1)/2
		pos, orient := at(center)
		out = append(out, scene.Placement{
			Color:    color,
			Position: pos,
			Orient:   orient,
			Part:     ref,
		})
		cursor += float64(length)
	}

	if covered := cursor - start; covered != float64(span) {
		return nil, errors.New(errors.ErrCodeInternal, "segment lengths cover %v studs, span is %d", covered, span)
	}
	return out, nil
}
