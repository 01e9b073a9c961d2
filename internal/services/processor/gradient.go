package processor

import (
	"image/color"
	"math"

	"github.com/phambaophuc/logo-gilding/internal/models"
)

// RowColor samples the vertical gradient at normalized position ny.
// The band is the pair of consecutive stops enclosing ny; positions past the
// second-to-last stop fall in the last band. Channels are linearly
// interpolated and truncated to 8 bits. stops must hold at least two entries.
func RowColor(ny float64, stops models.StopTable) color.NRGBA {
	k := 0
	for k < len(stops)-2 && ny >= stops[k+1].Position {
		k++
	}
	lo, hi := stops[k], stops[k+1]

	t := (ny - lo.Position) / (hi.Position - lo.Position)
	t = math.Max(0, math.Min(1, t))

	return color.NRGBA{
		R: lerp(lo.Color.R, hi.Color.R, t),
		G: lerp(lo.Color.G, hi.Color.G, t),
		B: lerp(lo.Color.B, hi.Color.B, t),
		A: 255,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	v := float64(a) + t*(float64(b)-float64(a))
	return uint8(math.Max(0, math.Min(255, v)))
}
