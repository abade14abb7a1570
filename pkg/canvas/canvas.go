/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package canvas is the rendering engine: a deterministic composite pass that clears to
// background, then adds every spot's Gaussian footprint with clipping, sub-pixel alignment, and
// cumulative saturation — the forward-rendering counterpart to the teacher's
// pkg/sky.GenerateFieldImage, generalised from a fixed Moffat PSF to arbitrary spot shapes and
// from a one-shot generator to a mutable, re-drawable object.
package canvas

/*****************************************************************************************************************/

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/observerly/starcanvas/pkg/geometry"
	"github.com/observerly/starcanvas/pkg/sampler"
	"github.com/observerly/starcanvas/pkg/spot"
	"github.com/observerly/starcanvas/pkg/transform"
)

/*****************************************************************************************************************/

// Canvas is the single stateful rendering object: dimensions, background, view transform, spot
// registry, and the resulting pixel buffer.
type Canvas struct {
	width, height int
	background    uint16
	view          transform.Transform
	registry      *spot.Registry
	pixels        []uint16
}

/*****************************************************************************************************************/

// New constructs a Canvas of the given dimensions (both must be ≥ 1), initialised to a zero
// background with an identity view transform and no spots.
func New(width, height int) (*Canvas, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d, want both >= 1", ErrInvalidDimensions, width, height)
	}

	c := &Canvas{
		width:    width,
		height:   height,
		view:     transform.Identity(),
		registry: spot.NewRegistry(),
		pixels:   make([]uint16, width*height),
	}

	c.Clear()

	return c, nil
}

/*****************************************************************************************************************/

// Dimensions returns the canvas's width and height in pixels.
func (c *Canvas) Dimensions() (width, height int) {
	return c.width, c.height
}

/*****************************************************************************************************************/

// SetBackground sets the background sample used by Clear and the base level for Draw.
func (c *Canvas) SetBackground(b uint16) {
	c.background = b
}

/*****************************************************************************************************************/

// SetViewTransform sets the global affine view transform applied to every spot's intrinsic
// position before rasterisation. Does not re-render; call Draw to apply it.
func (c *Canvas) SetViewTransform(t transform.Transform) {
	c.view = t
}

/*****************************************************************************************************************/

// AddSpot appends a new spot with the given intrinsic position, shape, and peak intensity,
// returning its stable handle.
func (c *Canvas) AddSpot(x, y float64, shape geometry.SpotShape, peak float64) spot.Handle {
	return c.registry.Add(x, y, shape, peak)
}

/*****************************************************************************************************************/

// SetSpotOffset mutates a spot's (Δx, Δy) offset. Does not re-render.
func (c *Canvas) SetSpotOffset(h spot.Handle, dx, dy float64) error {
	return c.registry.SetOffset(h, dx, dy)
}

/*****************************************************************************************************************/

// SetSpotIllumination mutates a spot's illumination factor φ. Does not re-render.
func (c *Canvas) SetSpotIllumination(h spot.Handle, phi float64) error {
	return c.registry.SetIllumination(h, phi)
}

/*****************************************************************************************************************/

// SpotPosition returns the effective rendered position V·(intrinsic + offset) of a spot under
// the canvas's current view transform.
func (c *Canvas) SpotPosition(h spot.Handle) (x, y float64, ok bool) {
	return c.registry.Position(h, c.view)
}

/*****************************************************************************************************************/

// SpotIntensity returns p0·φ for a spot (pre-saturation).
func (c *Canvas) SpotIntensity(h spot.Handle) (float64, bool) {
	return c.registry.Intensity(h)
}

/*****************************************************************************************************************/

// SpotCount returns the number of spots ever added to the canvas.
func (c *Canvas) SpotCount() int {
	return c.registry.Count()
}

/*****************************************************************************************************************/

// SpotRecords returns a copy of every spot's record, in insertion order.
func (c *Canvas) SpotRecords() []spot.Record {
	return c.registry.Records()
}

/*****************************************************************************************************************/

// ViewTransform returns the canvas's current affine view transform.
func (c *Canvas) ViewTransform() transform.Transform {
	return c.view
}

/*****************************************************************************************************************/

// Background returns the canvas's current background sample.
func (c *Canvas) Background() uint16 {
	return c.background
}

/*****************************************************************************************************************/

// Pixels returns a read-only snapshot of the current pixel buffer in row-major order (row y,
// column x at index y*width+x). The returned slice is a copy and is not affected by subsequent
// mutation of the canvas.
func (c *Canvas) Pixels() []uint16 {
	out := make([]uint16, len(c.pixels))
	copy(out, c.pixels)

	return out
}

/*****************************************************************************************************************/

// Clear resets the pixel buffer to the background sample.
func (c *Canvas) Clear() {
	for i := range c.pixels {
		c.pixels[i] = c.background
	}
}

/*****************************************************************************************************************/

// footprintTile is a precomputed per-spot footprint plus its canvas-clipped bounding box.
type footprintTile struct {
	footprint              sampler.Footprint
	xMin, xMax, yMin, yMax int
}

/*****************************************************************************************************************/

// Draw performs the clear-then-composite rendering pass: fill to background, then add every
// spot's clipped Gaussian footprint with saturating accumulation. The output buffer is
// partitioned into row-band tiles and filled concurrently; every tile scans the same spots in
// the same order, so the result is bitwise-identical to a strictly serial pass regardless of
// GOMAXPROCS.
func (c *Canvas) Draw() error {
	c.Clear()

	tiles := c.buildFootprintTiles()
	if len(tiles) == 0 {
		return nil
	}

	accum := make([]float64, len(c.pixels))
	for i, v := range c.pixels {
		accum[i] = float64(v)
	}

	bands := tileRowBands(c.height, runtime.GOMAXPROCS(0))

	g, _ := errgroup.WithContext(context.Background())

	for _, band := range bands {
		band := band

		g.Go(func() error {
			for _, t := range tiles {
				lo := max(t.yMin, band.start)
				hi := min(t.yMax, band.end-1)

				for j := lo; j <= hi; j++ {
					row := j * c.width

					for i := t.xMin; i <= t.xMax; i++ {
						accum[row+i] += t.footprint.At(i, j)
					}
				}
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, v := range accum {
		if v < 0 {
			v = 0
		}

		if v > 65535 {
			v = 65535
		}

		c.pixels[i] = uint16(v + 0.5)
	}

	return nil
}

/*****************************************************************************************************************/

// buildFootprintTiles precomputes and canvas-clips the footprint of every spot with a
// representable peak, skipping any whose bounding box does not intersect the canvas at all.
func (c *Canvas) buildFootprintTiles() []footprintTile {
	var tiles []footprintTile

	c.registry.Each(func(h spot.Handle, rec spot.Record) {
		cx, cy := c.view.Apply(rec.X+rec.OffsetX, rec.Y+rec.OffsetY)
		peak := rec.Peak * rec.Illumination * 65535

		fp, ok := sampler.NewFootprint(cx, cy, rec.Shape, peak)
		if !ok {
			return
		}

		xMin, xMax, yMin, yMax := fp.Bounds()
		if xMax < 0 || xMin >= c.width || yMax < 0 || yMin >= c.height {
			return
		}

		if xMin < 0 {
			xMin = 0
		}

		if xMax >= c.width {
			xMax = c.width - 1
		}

		if yMin < 0 {
			yMin = 0
		}

		if yMax >= c.height {
			yMax = c.height - 1
		}

		tiles = append(tiles, footprintTile{footprint: fp, xMin: xMin, xMax: xMax, yMin: yMin, yMax: yMax})
	})

	return tiles
}

/*****************************************************************************************************************/

type rowBand struct {
	start, end int // [start, end)
}

/*****************************************************************************************************************/

// tileRowBands partitions [0, height) into up to n contiguous, roughly equal row bands.
func tileRowBands(height, n int) []rowBand {
	if n < 1 {
		n = 1
	}

	if n > height {
		n = height
	}

	bands := make([]rowBand, 0, n)

	rowsPerTile := (height + n - 1) / n

	for start := 0; start < height; start += rowsPerTile {
		end := start + rowsPerTile
		if end > height {
			end = height
		}

		bands = append(bands, rowBand{start: start, end: end})
	}

	return bands
}

/*****************************************************************************************************************/

// ErrInvalidDimensions is returned by New for non-positive width or height.
var ErrInvalidDimensions = errors.New("canvas: invalid dimensions")

/*****************************************************************************************************************/
