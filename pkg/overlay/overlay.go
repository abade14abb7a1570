/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package overlay renders calibration imagery: a grayscale snapshot of a rendered canvas annotated
// with a crosshair and circle at a set of marked positions, for a human reviewer to check which
// blob corresponds to which registered spot. Adapted from examples/solve/main.go's gg drawing
// context pattern (background raster plus dc.DrawCircle marker overlay), generalised from
// plate-solved star/quad matches to arbitrary marked positions.
package overlay

/*****************************************************************************************************************/

import (
	"bytes"
	"image/color"
	"image/png"
	"math"

	"github.com/fogleman/gg"
)

/*****************************************************************************************************************/

// Mark is one annotated position: a pixel coordinate and a label drawn beside it.
type Mark struct {
	X, Y  float64
	Label string
}

/*****************************************************************************************************************/

// markerColor is the crosshair and circle color drawn over every mark — the same slate tone the
// teacher's own plate-solve overlay uses for matched quad vertices.
var markerColor = color.RGBA{R: 129, G: 140, B: 248, A: 255}

/*****************************************************************************************************************/

// labelColor is the color used for each mark's text label.
var labelColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

/*****************************************************************************************************************/

// Render draws a width x height row-major plane of 16-bit linear samples as an 8-bit grayscale
// background, then a circle and crosshair of the given radius at every mark, labelled beside it,
// and returns the result encoded as PNG.
func Render(pixels []uint16, width, height int, radius float64, marks []Mark) ([]byte, error) {
	radius = clampRadius(radius, width, height)

	dc := gg.NewContext(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := float64(pixels[y*width+x]) / 65535.0
			dc.SetRGB(v, v, v)
			dc.SetPixel(x, y)
		}
	}

	for _, m := range marks {
		dc.SetColor(markerColor)
		dc.DrawCircle(m.X, m.Y, radius)
		dc.SetLineWidth(2)
		dc.Stroke()

		dc.DrawLine(m.X-radius, m.Y, m.X+radius, m.Y)
		dc.DrawLine(m.X, m.Y-radius, m.X, m.Y+radius)
		dc.Stroke()

		if m.Label != "" {
			dc.SetColor(labelColor)
			dc.DrawString(m.Label, m.X+radius+2, m.Y-radius-2)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

/*****************************************************************************************************************/

// clampRadius keeps a caller-supplied radius sane for very small canvases.
func clampRadius(radius float64, width, height int) float64 {
	max := math.Min(float64(width), float64(height)) / 2

	if radius > max {
		return max
	}

	if radius < 1 {
		return 1
	}

	return radius
}

/*****************************************************************************************************************/
