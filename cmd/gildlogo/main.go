// Command gildlogo paints the dark pixels of a logo with a vertical gold
// gradient and makes everything else transparent.
//
// It takes no arguments; paths, threshold and gradient come from the
// environment (or .env): LOGO_SOURCE_PATH, LOGO_OUTPUT_PATH,
// LOGO_DARK_THRESHOLD and LOGO_GRADIENT_STOPS.
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
		fmt.Fprintf(os.Stderr, "Logo processing failed: %v\n", err)
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
	if _, err := p.RecolorFile(cfg.Logo.SourcePath, cfg.Logo.OutputPath, cfg.Logo.RecolorOptions()); err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Logo processed successfully")
	return nil
}
