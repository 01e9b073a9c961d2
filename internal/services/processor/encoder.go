package processor

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	// imaging registers png, jpeg, gif, bmp and tiff; webp comes from x/image.
	_ "golang.org/x/image/webp"
)

const DefaultQuality = 90

// Decode reads any registered image format from r.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return img, nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format imaging.Format, quality int) error {
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	if err := imaging.Encode(w, img, format, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// ParseFormat maps a format name or extension ("png", ".jpg") to an encoder.
// An empty name selects PNG, the only built-in encoder keeping transparency.
func ParseFormat(name string) (imaging.Format, error) {
	if name == "" {
		return imaging.PNG, nil
	}
	f, err := imaging.FormatFromExtension(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %w %q", ErrWrite, ErrUnsupportedFormat, name)
	}
	return f, nil
}

// FormatForPath picks the encoder from the extension of path.
func FormatForPath(path string) (imaging.Format, error) {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w %q", ErrWrite, ErrUnsupportedFormat, filepath.Ext(path))
	}
	return f, nil
}

func ContentType(format imaging.Format) string {
	return "image/" + strings.ToLower(format.String())
}
