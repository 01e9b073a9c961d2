// Command croplogo trims an image to the bounding box of its non-transparent
// pixels. By default it crops the gildlogo output in place.
//
// It takes no arguments; CROP_SOURCE_PATH and CROP_OUTPUT_PATH are read from
// the environment (or .env).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/phambaophuc/logo-gilding/internal/config"
	"github.com/phambaophuc/logo-gilding/internal/logger"
	"github.com/phambaophuc/logo-gilding/internal/services/processor"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Crop failed: %v\n", err)
		os.Exit(1)
	}
}

func run(stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// stdout carries the status line; zap stays at warn unless LOG_LEVEL is set.
	if os.Getenv("LOG_LEVEL") == "" {
		cfg.Log.Level = "warn"
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	p := processor.NewImageProcessor(log)
	res, err := p.CropFile(cfg.Crop.SourcePath, cfg.Crop.OutputPath)
	if err != nil {
		return err
	}

	if res.Empty {
		fmt.Fprintln(stdout, "Image is entirely transparent!")
		return nil
	}

	b := res.Bounds
	fmt.Fprintf(stdout, "Cropped successfully to (%d, %d, %d, %d)\n", b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
	return nil
}
