package processor

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/phambaophuc/logo-gilding/internal/models"
)

func TestRecolorFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "logo.png")
	dst := filepath.Join(dir, "logo-gold.png")

	img := filledImage(3, 4, color.NRGBA{255, 255, 255, 255})
	img.SetNRGBA(1, 2, color.NRGBA{0, 0, 0, 255})
	writePNG(t, src, img)

	// An existing destination is replaced.
	if err := os.WriteFile(dst, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := NewImageProcessor(nil).RecolorFile(src, dst, models.DefaultRecolorOptions())
	if err != nil {
		t.Fatalf("RecolorFile: %v", err)
	}
	if res.Width != 3 || res.Height != 4 || res.Foreground != 1 {
		t.Errorf("result = %+v", res)
	}

	out := readPNG(t, dst)
	if !out.Bounds().Eq(img.Bounds()) {
		t.Fatalf("output bounds = %v, want %v", out.Bounds(), img.Bounds())
	}
	// Row 2 of 4 is stop 2.
	if got := nrgbaAt(out, 1, 2); got != (color.NRGBA{180, 130, 25, 255}) {
		t.Errorf("logo pixel = %v, want darker gold", got)
	}
	if got := nrgbaAt(out, 0, 0); got.A != 0 {
		t.Errorf("background pixel = %v, want transparent", got)
	}
}

func TestRecolorFileErrors(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "logo.png")
	writePNG(t, valid, filledImage(2, 2, color.NRGBA{0, 0, 0, 255}))

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		src     string
		dst     string
		opts    models.RecolorOptions
		wantErr error
	}{
		{"missing source", filepath.Join(dir, "nope.png"), filepath.Join(dir, "out.png"), models.DefaultRecolorOptions(), ErrDecode},
		{"undecodable source", garbage, filepath.Join(dir, "out.png"), models.DefaultRecolorOptions(), ErrDecode},
		{"missing output directory", valid, filepath.Join(dir, "missing", "out.png"), models.DefaultRecolorOptions(), ErrWrite},
		{"unsupported extension", valid, filepath.Join(dir, "out.xyz"), models.DefaultRecolorOptions(), ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewImageProcessor(nil).RecolorFile(tt.src, tt.dst, tt.opts)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecolorFileRejectsInvalidOptions(t *testing.T) {
	dir := t.TempDir()
	opts := models.DefaultRecolorOptions()
	opts.Stops = opts.Stops[:1]

	_, err := NewImageProcessor(nil).RecolorFile(filepath.Join(dir, "a.png"), filepath.Join(dir, "b.png"), opts)
	if err == nil {
		t.Fatal("expected error for a single-stop gradient")
	}
	if errors.Is(err, ErrDecode) {
		t.Fatalf("options must be checked before reading the source: %v", err)
	}
}

func TestUnsupportedExtensionIsAWriteError(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "logo.png")
	writePNG(t, src, filledImage(1, 1, color.NRGBA{0, 0, 0, 255}))

	_, err := NewImageProcessor(nil).CropFile(src, filepath.Join(dir, "logo.svg"))
	if !errors.Is(err, ErrWrite) || !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want write error for unsupported format", err)
	}
}

func TestCropFileInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brand-logo-gold.png")

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	want := color.NRGBA{245, 230, 160, 255}
	img.SetNRGBA(2, 1, want)
	writePNG(t, path, img)

	res, err := NewImageProcessor(nil).CropFile(path, path)
	if err != nil {
		t.Fatalf("CropFile: %v", err)
	}
	if res.Empty || res.Bounds != image.Rect(2, 1, 3, 2) {
		t.Fatalf("result = %+v", res)
	}

	out := readPNG(t, path)
	if out.Bounds().Dx() != 1 || out.Bounds().Dy() != 1 {
		t.Fatalf("output size = %v, want 1x1", out.Bounds())
	}
	if got := nrgbaAt(out, 0, 0); got != want {
		t.Fatalf("output pixel = %v, want %v", got, want)
	}
}

func TestCropFileFullyTransparentWritesNothing(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "blank.png")
	dst := filepath.Join(dir, "cropped.png")
	writePNG(t, src, image.NewNRGBA(image.Rect(0, 0, 5, 5)))

	res, err := NewImageProcessor(nil).CropFile(src, dst)
	if err != nil {
		t.Fatalf("CropFile: %v", err)
	}
	if !res.Empty {
		t.Fatalf("result = %+v, want empty", res)
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Fatalf("output file exists or stat failed unexpectedly: %v", err)
	}
}

func TestCropFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := NewImageProcessor(nil).CropFile(filepath.Join(dir, "nope.png"), filepath.Join(dir, "out.png"))
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("err = %v, want ErrDecode", err)
	}
}

func TestGildThenCrop(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "logo.png")
	gold := filepath.Join(dir, "gold.png")

	img := filledImage(10, 10, color.NRGBA{255, 255, 255, 255})
	for y := 3; y < 6; y++ {
		for x := 4; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{10, 10, 10, 255})
		}
	}
	writePNG(t, src, img)

	p := NewImageProcessor(nil)
	if _, err := p.RecolorFile(src, gold, models.DefaultRecolorOptions()); err != nil {
		t.Fatalf("RecolorFile: %v", err)
	}
	res, err := p.CropFile(gold, gold)
	if err != nil {
		t.Fatalf("CropFile: %v", err)
	}
	if want := image.Rect(4, 3, 8, 6); res.Bounds != want {
		t.Fatalf("bounds = %v, want %v", res.Bounds, want)
	}
	if out := readPNG(t, gold); out.Bounds().Dx() != 4 || out.Bounds().Dy() != 3 {
		t.Fatalf("cropped size = %v, want 4x3", out.Bounds())
	}
}

// jpegWithOrientation encodes img as JPEG and inserts an Exif APP1 segment
// carrying the given Orientation tag right after SOI.
func jpegWithOrientation(t *testing.T, img image.Image, orientation byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	data := buf.Bytes()

	exif := []byte("Exif\x00\x00")
	exif = append(exif, 'M', 'M', 0x00, 0x2a, 0x00, 0x00, 0x00, 0x08) // big-endian TIFF, IFD0 at 8
	exif = append(exif, 0x00, 0x01)                                     // one entry
	exif = append(exif, 0x01, 0x12, 0x00, 0x03, 0x00, 0x00, 0x00, 0x01) // Orientation, SHORT, count 1
	exif = append(exif, 0x00, orientation, 0x00, 0x00)
	exif = append(exif, 0x00, 0x00, 0x00, 0x00) // no next IFD

	size := len(exif) + 2
	segment := append([]byte{0xff, 0xe1, byte(size >> 8), byte(size)}, exif...)

	out := append([]byte{}, data[:2]...)
	out = append(out, segment...)
	return append(out, data[2:]...)
}

func TestFileOperationsIgnoreExifOrientation(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "rotated.jpg")

	img := filledImage(40, 20, color.NRGBA{0, 0, 0, 255})
	if err := os.WriteFile(src, jpegWithOrientation(t, img, 6), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewImageProcessor(nil)

	gold := filepath.Join(dir, "gold.png")
	res, err := p.RecolorFile(src, gold, models.DefaultRecolorOptions())
	if err != nil {
		t.Fatalf("RecolorFile: %v", err)
	}
	if res.Width != 40 || res.Height != 20 {
		t.Errorf("result size = %dx%d, want 40x20", res.Width, res.Height)
	}
	if b := readPNG(t, gold).Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Errorf("output size = %dx%d, want 40x20", b.Dx(), b.Dy())
	}

	crop, err := p.CropFile(src, filepath.Join(dir, "cropped.png"))
	if err != nil {
		t.Fatalf("CropFile: %v", err)
	}
	if want := image.Rect(0, 0, 40, 20); crop.Bounds != want {
		t.Errorf("crop bounds = %v, want %v", crop.Bounds, want)
	}

	f, err := os.Open(src)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Errorf("decoded size = %dx%d, want 40x20", b.Dx(), b.Dy())
	}
}
