// Package frame detects and strips the colored frame around each player's
// play field in a two-player board screenshot.
package frame

import (
	"errors"
	"fmt"
	"image"
)

// Region identifies one of the crops produced by CropBothPlayers.
type Region string

const (
	RegionPlayer1  Region = "1P"   // Player 1 frame on the original image
	RegionPlayer2  Region = "2P"   // Player 2 frame on the original image
	RegionCombined Region = "1P2P" // Player 2 frame re-cropped from the player 1 output
)

// Regions lists the compound regions in processing order.
var Regions = []Region{RegionPlayer1, RegionPlayer2, RegionCombined}

// Band returns the color band searched for the region.
// The combined region deliberately uses the player 2 band on the player 1 crop:
// the outer frame is player 1's and the inner play field is delimited by player 2's.
func (r Region) Band() Band {
	if r == RegionPlayer1 {
		return BandBlue
	}
	return BandRed
}

// Crop failure reasons.
var (
	ErrCropTooSmall             = errors.New("crop too small")
	ErrInvalidBoundaries        = errors.New("invalid boundaries")
	ErrCropTooSmallAfterTopTrim = errors.New("crop too small after top cropping")
	ErrUpstreamFailed           = errors.New("player 1 crop unavailable")
	ErrEmptyImage               = errors.New("empty image")
)

// CropError reports which region and band a crop failure pertains to.
type CropError struct {
	Region Region
	Band   Band
	Err    error
}

func (e *CropError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Region, e.Band, e.Err)
}

func (e *CropError) Unwrap() error {
	return e.Err
}

// Boundaries is a crop rectangle found by LocateBoundaries.
// Right and Bottom are exclusive.
type Boundaries struct {
	Left             int  `json:"left"`
	Right            int  `json:"right"`
	Top              int  `json:"top"`
	Bottom           int  `json:"bottom"`
	TopFrameDetected bool `json:"top_frame_detected"`
}

// Width returns Right-Left.
func (b Boundaries) Width() int {
	return b.Right - b.Left
}

// Height returns Bottom-Top.
func (b Boundaries) Height() int {
	return b.Bottom - b.Top
}

// Valid reports whether the rectangle has positive area.
func (b Boundaries) Valid() bool {
	return b.Left < b.Right && b.Top < b.Bottom
}

// Rect converts to an image.Rectangle.
func (b Boundaries) Rect() image.Rectangle {
	return image.Rect(b.Left, b.Top, b.Right, b.Bottom)
}

// Info carries size metadata for a successful crop.
type Info struct {
	OriginalSize      image.Point `json:"original_size"`
	CroppedSize       image.Point `json:"cropped_size"`
	AdditionalTopCrop int         `json:"additional_top_crop"`
}

// Diagnostics holds debug renderings. Both images have the input's dimensions.
type Diagnostics struct {
	Mask    *image.RGBA // Binary mask, white where the band matched
	Overlay *image.RGBA // Input copy annotated with crop, trim line and search margins
}

// CropResult is a successful single-band crop.
type CropResult struct {
	Region   Region
	Band     Band
	Image    *image.RGBA // Cropped pixels, origin at (0,0)
	Bounds   Boundaries  // Final rectangle (Top includes the additional trim)
	Detected Boundaries  // Rectangle as located, before the top trim
	Info     Info
	Debug    *Diagnostics // Nil unless Params.Debug
}

// Logger is an optional progress sink. *log.Logger satisfies it.
// It must be safe for concurrent use when passed to CropBothPlayers.
type Logger interface {
	Printf(format string, v ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}
