/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package catalog

/*****************************************************************************************************************/

import (
	"math"

	"github.com/observerly/starcanvas/pkg/geometry"
	"github.com/observerly/starcanvas/pkg/spot"
	"github.com/observerly/starcanvas/pkg/wcs"
)

/*****************************************************************************************************************/

// Canvas is the minimal surface PopulateCanvas needs from pkg/canvas.Canvas, kept as an interface
// so the catalog package never imports the rendering package directly.
type Canvas interface {
	AddSpot(x, y float64, shape geometry.SpotShape, peak float64) spot.Handle
}

/*****************************************************************************************************************/

// PopulateCanvas converts catalog sources into spots on a canvas: each source's RA/Dec is mapped
// to a pixel position through the World Coordinate System's inverse transform, and its flux and
// magnitude are combined into a peak intensity via flux · 10^(−0.4·magnitude). Sources whose
// magnitude is fainter than threshold, or whose peak is non-positive, are skipped, not erroring
// the whole population. shape is applied uniformly to every populated spot (a flat field does not
// model per-star PSF variation). Returns the handle of every spot actually added, in source order.
func PopulateCanvas(world wcs.WCS, sources []Source, shape geometry.SpotShape, threshold float64, canvas Canvas) ([]spot.Handle, error) {
	tr, err := world.ToPixelTransform()
	if err != nil {
		return nil, err
	}

	var handles []spot.Handle

	for _, src := range sources {
		if src.PhotometricGMeanMagnitude > threshold {
			continue
		}

		peak := src.PhotometricGMeanFlux * math.Pow(10, -0.4*src.PhotometricGMeanMagnitude)
		if peak <= 0 || math.IsNaN(peak) || math.IsInf(peak, 0) {
			continue
		}

		x, y := tr.Apply(src.RA, src.Dec)

		handles = append(handles, canvas.AddSpot(x, y, shape, peak))
	}

	return handles, nil
}

/*****************************************************************************************************************/
