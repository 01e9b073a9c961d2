package models

import "image"

// CachedResult is what the result cache keeps per processed upload.
type CachedResult struct {
	Image  []byte          `json:"image,omitempty"`
	Format string          `json:"format"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Bounds image.Rectangle `json:"bounds"`
	URL    string          `json:"url,omitempty"`
	Empty  bool            `json:"empty,omitempty"`
}
