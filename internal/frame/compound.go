package frame

import (
	"errors"
	"image"
	"sync"
)

// RegionResult is the outcome for one compound region: exactly one of
// Result and Err is set.
type RegionResult struct {
	Result *CropResult
	Err    error
}

// OK reports whether the region was cropped.
func (r RegionResult) OK() bool {
	return r.Err == nil && r.Result != nil
}

// CompoundResult aggregates the player 1, player 2 and combined crops.
type CompoundResult struct {
	Source  *image.RGBA
	Regions map[Region]RegionResult
}

// OK is true only if every region succeeded.
func (c *CompoundResult) OK() bool {
	for _, region := range Regions {
		if !c.Get(region).OK() {
			return false
		}
	}
	return true
}

// Get returns the outcome for region.
func (c *CompoundResult) Get(region Region) RegionResult {
	r, ok := c.Regions[region]
	if !ok {
		return RegionResult{Err: &CropError{Region: region, Band: region.Band(), Err: errors.New("not processed")}}
	}
	return r
}

// Errors returns the failures in region order.
func (c *CompoundResult) Errors() []error {
	var errs []error
	for _, region := range Regions {
		if r := c.Get(region); !r.OK() {
			errs = append(errs, r.Err)
		}
	}
	return errs
}

// Err joins all region failures, or returns nil.
func (c *CompoundResult) Err() error {
	return errors.Join(c.Errors()...)
}

// Best returns the combined crop, falling back to the source image when it failed.
func (c *CompoundResult) Best() *image.RGBA {
	if r := c.Get(RegionCombined); r.OK() {
		return r.Result.Image
	}
	return c.Source
}

// CropBothPlayers crops the player 1 and player 2 frames from img independently,
// then re-crops the player 1 output with the player 2 band to get the combined
// play field. A failure in one region never stops the others; the combined
// region fails with ErrUpstreamFailed when player 1 could not be cropped.
//
// The player 2 crop runs concurrently with the player 1 and combined crops.
func CropBothPlayers(img *image.RGBA, params Params) *CompoundResult {
	log := params.logger()
	log.Printf("framecrop: processing both players (1P + 2P)")

	var (
		p1, p2, combined RegionResult
		wg               sync.WaitGroup
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		p2 = regionResult(cropRegion(img, RegionPlayer2, RegionPlayer2.Band(), params))
	}()

	p1 = regionResult(cropRegion(img, RegionPlayer1, RegionPlayer1.Band(), params))
	if p1.OK() {
		combined = regionResult(cropRegion(p1.Result.Image, RegionCombined, RegionCombined.Band(), params))
	} else {
		combined = RegionResult{Err: &CropError{
			Region: RegionCombined,
			Band:   RegionCombined.Band(),
			Err:    ErrUpstreamFailed,
		}}
	}
	wg.Wait()

	result := &CompoundResult{
		Source: img,
		Regions: map[Region]RegionResult{
			RegionPlayer1:  p1,
			RegionPlayer2:  p2,
			RegionCombined: combined,
		},
	}

	if errs := result.Errors(); len(errs) > 0 {
		log.Printf("framecrop: completed with %d errors", len(errs))
	} else {
		log.Printf("framecrop: processed both players")
	}
	return result
}

func regionResult(r *CropResult, err error) RegionResult {
	return RegionResult{Result: r, Err: err}
}
