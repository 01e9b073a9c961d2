package processor

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/phambaophuc/logo-gilding/internal/models"
)

// Recolor paints the logo pixels of img with the row gradient and clears
// everything else to transparent black. The result has the dimensions of img
// and its origin at (0, 0). opts is expected to be valid.
func (p *ImageProcessor) Recolor(img image.Image, opts models.RecolorOptions) (*image.NRGBA, models.RecolorResult) {
	dst := imaging.Clone(img)
	w, h := dst.Rect.Dx(), dst.Rect.Dy()
	res := models.RecolorResult{Width: w, Height: h}

	mask := ForegroundMask(dst, opts.Threshold)

	for y := 0; y < h; y++ {
		c := RowColor(float64(y)/float64(h), opts.Stops)
		row := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]

		for x := 0; x < w; x++ {
			px := row[x*4 : x*4+4 : x*4+4]
			if !mask[y][x] {
				px[0], px[1], px[2], px[3] = 0, 0, 0, 0
				continue
			}
			px[0], px[1], px[2], px[3] = c.R, c.G, c.B, 255
			res.Foreground++
		}
	}

	return dst, res
}
