package processor

import (
	"image"
	"image/color"
)

// IsForeground reports whether c belongs to the logo: every colour channel
// strictly below threshold and not fully transparent.
func IsForeground(c color.NRGBA, threshold int) bool {
	t := uint32(max(threshold, 0))
	return uint32(c.R) < t && uint32(c.G) < t && uint32(c.B) < t && c.A > 0
}

// ForegroundMask classifies every pixel of img. The mask is indexed
// [y][x] relative to img.Rect.Min and has the dimensions of img.
func ForegroundMask(img *image.NRGBA, threshold int) [][]bool {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	mask := make([][]bool, h)
	for y := 0; y < h; y++ {
		mask[y] = make([]bool, w)
		off := y * img.Stride
		for x := 0; x < w; x++ {
			i := off + x*4
			mask[y][x] = IsForeground(color.NRGBA{
				R: img.Pix[i],
				G: img.Pix[i+1],
				B: img.Pix[i+2],
				A: img.Pix[i+3],
			}, threshold)
		}
	}
	return mask
}
