package models

import (
	"errors"
	"fmt"
	"image/color"
)

// GradientStop anchors a colour at a normalized vertical position in [0, 1].
type GradientStop struct {
	Position float64     `json:"position"`
	Color    color.NRGBA `json:"color"`
}

// StopTable is an ordered list of gradient stops, top to bottom.
type StopTable []GradientStop

// DefaultGoldStops returns the shiny gold gradient used for the brand logo.
func DefaultGoldStops() StopTable {
	return StopTable{
		{Position: 0.00, Color: color.NRGBA{R: 245, G: 230, B: 160, A: 255}}, // top highlight
		{Position: 0.25, Color: color.NRGBA{R: 212, G: 175, B: 55, A: 255}},  // base gold
		{Position: 0.50, Color: color.NRGBA{R: 180, G: 130, B: 25, A: 255}},  // darker gold
		{Position: 0.75, Color: color.NRGBA{R: 255, G: 240, B: 180, A: 255}}, // reflection
		{Position: 1.00, Color: color.NRGBA{R: 160, G: 110, B: 20, A: 255}},  // shadow
	}
}

func (t StopTable) Validate() error {
	if len(t) < 2 {
		return errors.New("gradient needs at least 2 stops")
	}
	if t[0].Position != 0 {
		return fmt.Errorf("first gradient stop must be at 0, got %g", t[0].Position)
	}
	if last := t[len(t)-1].Position; last != 1 {
		return fmt.Errorf("last gradient stop must be at 1, got %g", last)
	}
	for i := 1; i < len(t); i++ {
		if t[i].Position <= t[i-1].Position {
			return fmt.Errorf("gradient stop %d at %g is not after stop %d at %g",
				i, t[i].Position, i-1, t[i-1].Position)
		}
	}
	return nil
}

func (s GradientStop) String() string {
	return fmt.Sprintf("#%02x%02x%02x@%g", s.Color.R, s.Color.G, s.Color.B, s.Position)
}
