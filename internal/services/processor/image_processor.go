package processor

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/phambaophuc/logo-gilding/internal/models"
	"go.uber.org/zap"
)

type ImageProcessor struct {
	logger *zap.Logger
}

func NewImageProcessor(logger *zap.Logger) *ImageProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImageProcessor{logger: logger}
}

// Open decodes the file at path into a fresh NRGBA buffer. The whole file is
// read and closed before returning.
func (p *ImageProcessor) Open(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDecode, path, err)
	}

	nrgba := imaging.Clone(img)
	p.logger.Debug("Image loaded",
		zap.String("path", path),
		zap.Int("width", nrgba.Rect.Dx()),
		zap.Int("height", nrgba.Rect.Dy()),
	)
	return nrgba, nil
}

// Save encodes img according to the extension of path, replacing any
// existing file.
func (p *ImageProcessor) Save(img image.Image, path string) error {
	if _, err := FormatForPath(path); err != nil {
		return err
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}

	p.logger.Debug("Image saved", zap.String("path", path))
	return nil
}

// RecolorFile gilds the logo at src and writes the result to dst.
func (p *ImageProcessor) RecolorFile(src, dst string, opts models.RecolorOptions) (*models.RecolorResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recolor options: %w", err)
	}
	// Fail on the destination format before doing any pixel work.
	if _, err := FormatForPath(dst); err != nil {
		return nil, err
	}

	img, err := p.Open(src)
	if err != nil {
		return nil, err
	}

	out, res := p.Recolor(img, opts)
	if err := p.Save(out, dst); err != nil {
		return nil, err
	}

	p.logger.Info("Logo recolored",
		zap.String("source", src),
		zap.String("output", dst),
		zap.Int("width", res.Width),
		zap.Int("height", res.Height),
		zap.Int("foreground_pixels", res.Foreground),
	)
	return &res, nil
}

// CropFile trims the image at src to its content and writes it to dst, which
// may equal src. Nothing is written for a fully transparent image; the
// returned result is Empty and the error nil.
func (p *ImageProcessor) CropFile(src, dst string) (*models.CropResult, error) {
	if _, err := FormatForPath(dst); err != nil {
		return nil, err
	}

	img, err := p.Open(src)
	if err != nil {
		return nil, err
	}

	out, res := p.Crop(img)
	if res.Empty {
		p.logger.Info("Image is fully transparent, nothing to crop", zap.String("source", src))
		return &res, nil
	}

	if err := p.Save(out, dst); err != nil {
		return nil, err
	}

	p.logger.Info("Image cropped",
		zap.String("source", src),
		zap.String("output", dst),
		zap.Stringer("bounds", res.Bounds),
	)
	return &res, nil
}
