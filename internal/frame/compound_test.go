package frame

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCropBothPlayersNestedFrames(t *testing.T) {
	img := nestedImage(300, 600, 10, 5)

	res := CropBothPlayers(img, DefaultParams())
	require.True(t, res.OK(), "errors: %v", res.Errors())
	assert.NoError(t, res.Err())

	p1 := res.Get(RegionPlayer1).Result
	assert.Equal(t, BandBlue, p1.Band)
	assert.Equal(t, Boundaries{Left: 10, Right: 290, Top: 10, Bottom: 590, TopFrameDetected: true}, p1.Detected)
	assert.Equal(t, image.Pt(280, 569), p1.Info.CroppedSize)

	p2 := res.Get(RegionPlayer2).Result
	assert.Equal(t, BandRed, p2.Band)
	assert.Equal(t, Boundaries{Left: 15, Right: 285, Top: 15, Bottom: 585, TopFrameDetected: true}, p2.Detected)
	assert.Equal(t, image.Pt(270, 559), p2.Info.CroppedSize)

	// The combined region is the player 2 band searched inside the player 1 crop.
	combined := res.Get(RegionCombined).Result
	assert.Equal(t, RegionCombined, combined.Region)
	assert.Equal(t, BandRed, combined.Band)
	assert.Equal(t, image.Pt(280, 569), combined.Info.OriginalSize)
	assert.Equal(t, Boundaries{Left: 5, Right: 275, Top: 0, Bottom: 564}, combined.Bounds)
	assert.Equal(t, image.Pt(270, 564), combined.Info.CroppedSize)
	assert.Same(t, combined.Image, res.Best())
}

func TestCropBothPlayersPlayer1FailureIsIndependent(t *testing.T) {
	// Only a red frame: player 1 finds nothing, so its crop covers the
	// whole image and passes; force a failure with an impossible ratio.
	img := framedImage(200, 400, 4, frameRed)
	params := DefaultParams()
	params.MinCropRatio = 1.01

	res := CropBothPlayers(img, params)
	assert.False(t, res.OK())

	p1 := res.Get(RegionPlayer1)
	assert.False(t, p1.OK())
	assert.ErrorIs(t, p1.Err, ErrCropTooSmall)

	p2 := res.Get(RegionPlayer2)
	assert.False(t, p2.OK())
	assert.ErrorIs(t, p2.Err, ErrCropTooSmall)

	combined := res.Get(RegionCombined)
	assert.Nil(t, combined.Result)
	assert.ErrorIs(t, combined.Err, ErrUpstreamFailed)
	var cropErr *CropError
	require.True(t, errors.As(combined.Err, &cropErr))
	assert.Equal(t, RegionCombined, cropErr.Region)

	assert.Len(t, res.Errors(), 3)
	assert.Same(t, img, res.Best())
}

func TestCropBothPlayersPlayer2StillComputed(t *testing.T) {
	// Player 1 fails after its top trim; player 2 has no top frame and survives.
	img := solidImage(200, 400, black)
	fillRect(img, image.Rect(0, 0, 200, 3), frameBlue)
	fillRect(img, image.Rect(0, 0, 3, 400), frameRed)

	params := DefaultParams().WithTopCropRatio(0.9)
	res := CropBothPlayers(img, params)

	assert.ErrorIs(t, res.Get(RegionPlayer1).Err, ErrCropTooSmallAfterTopTrim)
	assert.ErrorIs(t, res.Get(RegionCombined).Err, ErrUpstreamFailed)

	p2 := res.Get(RegionPlayer2)
	require.True(t, p2.OK())
	assert.Equal(t, 3, p2.Result.Bounds.Left)
	assert.False(t, p2.Result.Bounds.TopFrameDetected)
	assert.Len(t, res.Errors(), 2)
}

func TestCropBothPlayersLoggingDoesNotChangeResult(t *testing.T) {
	img := nestedImage(200, 400, 6, 4)

	quiet := CropBothPlayers(img, DefaultParams())
	rec := &recordingLogger{}
	logged := CropBothPlayers(img, DefaultParams().WithLogger(rec))

	for _, region := range Regions {
		q, l := quiet.Get(region), logged.Get(region)
		require.Equal(t, q.OK(), l.OK(), "region %s", region)
		if q.OK() {
			assert.Equal(t, q.Result.Bounds, l.Result.Bounds)
			assert.Equal(t, q.Result.Image.Pix, l.Result.Image.Pix)
		}
	}
	assert.NotEmpty(t, rec.lines)
}

func TestCompoundResultMissingRegion(t *testing.T) {
	res := &CompoundResult{Regions: map[Region]RegionResult{}}
	assert.False(t, res.OK())
	assert.Len(t, res.Errors(), 3)
}
