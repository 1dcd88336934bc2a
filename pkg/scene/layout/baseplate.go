package layout

import (
	"github.com/lpauloin/BrickTablePlanner/pkg/catalog"
	"github.com/lpauloin/BrickTablePlanner/pkg/scene"
)

// StudsPerPlate is the side length of one 32x32 baseplate in studs.
const StudsPerPlate = 32

// BaseplateGrid places a cols x rows grid of 32x32 baseplates. Each
// baseplate is placed by its center at origin + index*StudsPerPlate in
// stud coordinates, on the baseplate center plane.
func BaseplateGrid(ctx scene.Context, cols, rows, color int, originStudX, originStudZ float64) []scene.Placement {
	out := make([]scene.Placement, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, scene.Placement{
				Color: color,
				Position: scene.Vec3{
					X: ctx.Studs(originStudX + float64(c)*StudsPerPlate),
					Y: ctx.BaseplateOriginY(),
					Z: ctx.Studs(originStudZ + float64(r)*StudsPerPlate),
				},
				Orient: scene.Identity,
				Part:   catalog.Baseplate32x32,
			})
		}
	}
	return out
}
