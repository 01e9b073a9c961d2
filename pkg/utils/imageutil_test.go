package utils

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
)

func TestIsValidImageType(t *testing.T) {
	tests := map[string]bool{
		"image/png":                 true,
		"image/jpeg":                true,
		"IMAGE/WEBP":                true,
		"text/plain; charset=utf-8": false,
		"application/octet-stream":  false,
	}
	for ct, want := range tests {
		if got := IsValidImageType(ct); got != want {
			t.Errorf("IsValidImageType(%q) = %v, want %v", ct, got, want)
		}
	}
}

func TestGenerateFilename(t *testing.T) {
	tests := []struct {
		original, op, ext, want string
	}{
		{"logo.png", "recolor", "png", "logo_recolor.png"},
		{"dir/brand.jpeg", "crop", ".jpg", "brand_crop.jpg"},
		{"", "crop", "png", "logo_crop.png"},
	}
	for _, tt := range tests {
		if got := GenerateFilename(tt.original, tt.op, tt.ext); got != tt.want {
			t.Errorf("GenerateFilename(%q, %q, %q) = %q, want %q", tt.original, tt.op, tt.ext, got, tt.want)
		}
	}
}

func TestGenerateStorageKey(t *testing.T) {
	key := GenerateStorageKey("logo_recolor.png")
	if !regexp.MustCompile(`^processed/logo_recolor_\d+_[0-9a-f-]{8}\.png$`).MatchString(key) {
		t.Fatalf("unexpected key %q", key)
	}
	if GenerateStorageKey("a.png") == GenerateStorageKey("a.png") {
		t.Fatal("keys should be unique")
	}
}

func TestDownloadImage(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}
	pngData := buf.Bytes()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/logo.png":
			w.Write(pngData)
		case "/text":
			w.Write([]byte("hello"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ctx := context.Background()

	data, ct, err := DownloadImage(ctx, srv.URL+"/logo.png", 1<<20)
	if err != nil {
		t.Fatalf("DownloadImage: %v", err)
	}
	if ct != "image/png" || !bytes.Equal(data, pngData) {
		t.Errorf("got %q, %d bytes", ct, len(data))
	}

	if _, _, err := DownloadImage(ctx, srv.URL+"/logo.png", 10); err == nil {
		t.Error("oversized download accepted")
	}
	if _, _, err := DownloadImage(ctx, srv.URL+"/text", 1<<20); err == nil {
		t.Error("non-image download accepted")
	}
	if _, _, err := DownloadImage(ctx, srv.URL+"/missing", 1<<20); err == nil {
		t.Error("404 accepted")
	}
}
