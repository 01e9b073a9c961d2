package models

import "image"

// CropResult describes the content bounding box of an image. Empty is set
// when the image has no pixel with alpha > 0, in which case Bounds is zero.
type CropResult struct {
	Bounds image.Rectangle `json:"bounds"`
	Empty  bool            `json:"empty"`
}

func (r CropResult) Width() int  { return r.Bounds.Dx() }
func (r CropResult) Height() int { return r.Bounds.Dy() }
