// Package transform places normalized assemblies at target scene positions.
//
// Two placement modes exist, matching the two ways templates are authored:
// Place keeps the authored facing and only translates; PlaceRotated applies
// a fixed quarter-turn around the vertical axis before translating, for
// templates whose authored facing is sideways relative to the scene.
package transform

import (
	"github.com/lpauloin/BrickTablePlanner/pkg/errors"
	"github.com/lpauloin/BrickTablePlanner/pkg/scene"
)

// RotateY is the validated -90 degree rotation around the vertical axis.
// It is an exact 90-degree-class matrix and is reused as-is rather than
// re-derived trigonometrically, so repeated placements accumulate no
// floating drift.
var RotateY = scene.Matrix3{
	0, 0, -1,
	0, 1, 0,
	1, 0, 0,
}

// Anchor is the vertical placement policy for one assembly type: the
// surface plane it rests on and the distance from its own natural origin
// down to that surface. Different assemblies rest on different surfaces,
// so the offset is configured per assembly type, never hard-coded.
type Anchor struct {
	// SurfaceY is the physical Y of the surface the assembly rests on.
	SurfaceY float64

	// BaseOffset is the distance from the assembly origin to its base
	// (e.g. 30 LDU from a minifig's origin down to its feet).
	BaseOffset float64
}

// Y returns the vertical translation applied to the assembly origin.
func (a Anchor) Y() float64 {
	return a.SurfaceY - a.BaseOffset
}

// Place translates a centroid-recentered assembly to the target position.
// Orientations are copied unchanged. dx and dz are physical units.
//
// Returns an EMPTY_ASSEMBLY error when parts is empty; otherwise a fresh
// placement sequence is returned and the input is never mutated.
func Place(parts []scene.Placement, dx, dz float64, anchor Anchor) ([]scene.Placement, error) {
	if len(parts) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyAssembly, "cannot place an empty assembly")
	}

	offset := scene.Vec3{X: dx, Y: anchor.Y(), Z: dz}
	out := make([]scene.Placement, len(parts))
	for i, p := range parts {
		p.Position = p.Position.Add(offset)
		out[i] = p
	}
	return out, nil
}

// PlaceRotated applies the fixed RotateY quarter-turn to every
// centroid-relative position and orientation matrix (product R*M), then
// translates to the target position. dx and dz are physical units.
//
// Returns an EMPTY_ASSEMBLY error when parts is empty.
func PlaceRotated(parts []scene.Placement, dx, dz float64, anchor Anchor) ([]scene.Placement, error) {
	if len(parts) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyAssembly, "cannot place an empty assembly")
	}

	offset := scene.Vec3{X: dx, Y: anchor.Y(), Z: dz}
	out := make([]scene.Placement, len(parts))
	for i, p := range parts {
		p.Position = RotateY.Apply(p.Position).Add(offset)
		p.Orient = RotateY.Mul(p.Orient)
		out[i] = p
	}
	return out, nil
}
