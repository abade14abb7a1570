/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package wcs implements a minimal FITS-style World Coordinate System: a reference pixel, a
// reference sky position, and a 2x2 CD matrix relating pixel offsets to sky offsets. Adapted from
// the teacher's own pkg/wcs, generalised to also provide the inverse mapping (sky to pixel) needed
// to place catalog sources onto a rendered canvas.
package wcs

/*****************************************************************************************************************/

import (
	"errors"

	"github.com/observerly/starcanvas/pkg/astrometry"
	"github.com/observerly/starcanvas/pkg/transform"
)

/*****************************************************************************************************************/

// ErrSingularCDMatrix is returned when a WCS's CD matrix cannot be inverted (zero determinant),
// meaning no pixel transform can be derived from it.
var ErrSingularCDMatrix = errors.New("wcs: CD matrix is singular")

/*****************************************************************************************************************/

// WCS is a linear (CD-matrix) World Coordinate System, the tangent-plane mapping between pixel
// coordinates and ICRS equatorial coordinates used by FITS imagery.
type WCS struct {
	CRPIX1 float64 // Reference pixel X
	CRPIX2 float64 // Reference pixel Y
	CRVAL1 float64 // Reference RA (degrees)
	CRVAL2 float64 // Reference Dec (degrees)
	CD1_1  float64
	CD1_2  float64
	CD2_1  float64
	CD2_2  float64
}

/*****************************************************************************************************************/

// NewWorldCoordinateSystem is a plain constructor, kept for parity with the teacher's idiom of
// naming a constructor even where struct literals alone would suffice.
func NewWorldCoordinateSystem(wcs WCS) WCS {
	return wcs
}

/*****************************************************************************************************************/

// PixelToEquatorialCoordinate maps a pixel position to its ICRS equatorial coordinate under this
// WCS's linear CD-matrix approximation.
func (wcs *WCS) PixelToEquatorialCoordinate(x, y float64) astrometry.ICRSEquatorialCoordinate {
	return astrometry.ICRSEquatorialCoordinate{
		RA:  wcs.CRVAL1 + wcs.CD1_1*(x-wcs.CRPIX1) + wcs.CD1_2*(y-wcs.CRPIX2),
		Dec: wcs.CRVAL2 + wcs.CD2_1*(x-wcs.CRPIX1) + wcs.CD2_2*(y-wcs.CRPIX2),
	}
}

/*****************************************************************************************************************/

// ToPixelTransform builds the inverse mapping — equatorial coordinate to pixel position — as a
// transform.Transform, for placing catalog sources onto a canvas. Returns ErrSingularCDMatrix if
// the CD matrix has zero determinant.
func (wcs *WCS) ToPixelTransform() (transform.Transform, error) {
	det := wcs.CD1_1*wcs.CD2_2 - wcs.CD1_2*wcs.CD2_1
	if det == 0 {
		return transform.Transform{}, ErrSingularCDMatrix
	}

	invXX := wcs.CD2_2 / det
	invXY := -wcs.CD1_2 / det
	invYX := -wcs.CD2_1 / det
	invYY := wcs.CD1_1 / det

	return transform.FromCDMatrix(wcs.CRVAL1, wcs.CRVAL2, wcs.CRPIX1, wcs.CRPIX2, invXX, invXY, invYX, invYY), nil
}

/*****************************************************************************************************************/
