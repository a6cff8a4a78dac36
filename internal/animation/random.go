package animation

import (
	"math/rand"

	"github.com/ivlev/viewanimator/internal/config"
	"github.com/ivlev/viewanimator/internal/direction"
)

// Random picks one of rotate, slide-from or zoom-from with equal chance.
// Rotation angle is drawn from [-MaxRotationAngle, MaxRotationAngle], zoom
// scale from [0, MaxZoomScale], slide direction at random and slide offset is
// cfg.Offset as is. To, ZoomTo and Zoom are never returned.
//
// r is not safe for concurrent use; a nil r uses the global source.
func Random(r *rand.Rand, cfg config.Config) Animation {
	switch intn(r, 3) {
	case 1:
		return From(direction.Random(r), cfg.Offset)
	case 2:
		return ZoomFrom(uniform(r, 0, cfg.MaxZoomScale))
	default:
		return Rotate(uniform(r, -cfg.MaxRotationAngle, cfg.MaxRotationAngle))
	}
}

func intn(r *rand.Rand, n int) int {
	if r == nil {
		return rand.Intn(n)
	}
	return r.Intn(n)
}

func uniform(r *rand.Rand, min, max float64) float64 {
	var f float64
	if r == nil {
		f = rand.Float64()
	} else {
		f = r.Float64()
	}
	return min + f*(max-min)
}
