package models

import "fmt"

const DefaultDarkThreshold = 128

// RecolorOptions controls which pixels count as logo and how they are painted.
// A pixel is logo when each of R, G and B is strictly below Threshold and it
// is not fully transparent.
type RecolorOptions struct {
	Threshold int       `json:"threshold"`
	Stops     StopTable `json:"stops"`
}

func DefaultRecolorOptions() RecolorOptions {
	return RecolorOptions{
		Threshold: DefaultDarkThreshold,
		Stops:     DefaultGoldStops(),
	}
}

func (o RecolorOptions) Validate() error {
	if o.Threshold < 0 || o.Threshold > 256 {
		return fmt.Errorf("threshold %d out of range [0, 256]", o.Threshold)
	}
	return o.Stops.Validate()
}

type RecolorResult struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	Foreground int `json:"foreground"`
}
