package models

import "time"

type ProcessedImage struct {
	ID          string    `json:"id"`
	Operation   string    `json:"operation"`
	ProcessedAt time.Time `json:"processed_at"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Format      string    `json:"format"`
	URL         string    `json:"url,omitempty"`
	FileSize    int64     `json:"file_size"`
}

const (
	OperationRecolor = "recolor"
	OperationCrop    = "crop"
)
