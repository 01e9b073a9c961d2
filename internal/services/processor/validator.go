package processor

import (
	"bytes"
	"fmt"
	"image"
)

// ValidateImage checks the payload size and that its header decodes as a
// registered image format.
func (p *ImageProcessor) ValidateImage(data []byte, maxSize int64) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty payload", ErrDecode)
	}

	if size := int64(len(data)); maxSize > 0 && size > maxSize {
		return fmt.Errorf("file size %d exceeds maximum allowed size %d", size, maxSize)
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: invalid image format: %w", ErrDecode, err)
	}

	return nil
}
