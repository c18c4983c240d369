package frame

import (
	"fmt"
	"strings"

	"board-cropper/pkg/colorutil"
)

// Band is a configured frame color.
type Band int

const (
	BandBlue Band = iota // Player 1
	BandRed              // Player 2
)

func (b Band) String() string {
	switch b {
	case BandBlue:
		return "blue"
	case BandRed:
		return "red"
	default:
		return "unknown"
	}
}

// ParseBand parses "blue" or "red".
func ParseBand(s string) (Band, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blue", "1p":
		return BandBlue, nil
	case "red", "2p":
		return BandRed, nil
	}
	return 0, fmt.Errorf("unknown band %q", s)
}

// HueRange is an inclusive hue interval (0-180).
type HueRange struct {
	Min, Max int
}

// BandRange defines the HSV membership test for a band.
type BandRange struct {
	Hues   []HueRange // Any interval matches; red straddles 0 so it has two
	SatMin int
	ValMin int
}

var bandRanges = map[Band]BandRange{
	BandRed: {
		Hues:   []HueRange{{0, 10}, {160, 180}},
		SatMin: 50,
		ValMin: 120,
	},
	BandBlue: {
		Hues:   []HueRange{{85, 110}},
		SatMin: 50,
		ValMin: 100,
	},
}

// Range returns the band's static HSV range.
func (b Band) Range() BandRange {
	return bandRanges[b]
}

// Match reports whether an HSV triple lies inside the range.
func (r BandRange) Match(c colorutil.HSV) bool {
	if c.S < r.SatMin || c.V < r.ValMin {
		return false
	}
	for _, h := range r.Hues {
		if c.H >= h.Min && c.H <= h.Max {
			return true
		}
	}
	return false
}

// InBand reports whether an HSV triple belongs to the band.
func InBand(c colorutil.HSV, band Band) bool {
	return band.Range().Match(c)
}

// Contains classifies an RGB pixel against the band.
func (b Band) Contains(r, g, bl uint8) bool {
	return InBand(colorutil.RGBToHSV(r, g, bl), b)
}
