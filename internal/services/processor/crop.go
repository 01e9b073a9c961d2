package processor

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/phambaophuc/logo-gilding/internal/models"
)

// ContentBounds returns the smallest rectangle, in img coordinates, holding
// every pixel with non-zero alpha. ok is false when img is fully transparent.
func ContentBounds(img image.Image) (box image.Rectangle, ok bool) {
	src, isNRGBA := img.(*image.NRGBA)
	if !isNRGBA {
		src = imaging.Clone(img)
	}

	w, h := src.Rect.Dx(), src.Rect.Dy()
	if w == 0 || h == 0 {
		return image.Rectangle{}, false
	}
	minX, minY, maxX, maxY := w, h, -1, -1

	for y := 0; y < h; y++ {
		alpha := src.Pix[y*src.Stride+3 : y*src.Stride+w*4]
		for x := 0; x < w; x++ {
			if alpha[x*4] == 0 {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}

	if maxX < 0 {
		return image.Rectangle{}, false
	}

	origin := img.Bounds().Min
	return image.Rect(minX, minY, maxX+1, maxY+1).Add(origin), true
}

// Crop trims img to its content bounds. A fully transparent image yields a
// nil image and an Empty result.
func (p *ImageProcessor) Crop(img image.Image) (*image.NRGBA, models.CropResult) {
	box, ok := ContentBounds(img)
	if !ok {
		return nil, models.CropResult{Empty: true}
	}
	return imaging.Crop(img, box), models.CropResult{Bounds: box}
}
