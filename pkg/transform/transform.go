/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package transform

/*****************************************************************************************************************/

import (
	"github.com/observerly/starcanvas/pkg/geometry"
)

/*****************************************************************************************************************/

// Transform is the affine map p' = A·p + t applied to every spot's intrinsic position before
// rasterisation. A is the 2×2 linear part (reusing geometry.SpotShape's matrix layout), and
// (DX, DY) is the translation.
type Transform struct {
	A      geometry.SpotShape
	DX, DY float64
}

/*****************************************************************************************************************/

// Identity returns the identity view transform: zero translation, no rotation or scale.
func Identity() Transform {
	return Transform{A: geometry.Identity()}
}

/*****************************************************************************************************************/

// Translate returns a pure translation transform.
func Translate(dx, dy float64) Transform {
	return Transform{A: geometry.Identity(), DX: dx, DY: dy}
}

/*****************************************************************************************************************/

// Scale returns a uniform-scale transform about the origin.
func Scale(k float64) Transform {
	return Transform{A: geometry.Scale(k)}
}

/*****************************************************************************************************************/

// Rotate returns a counter-clockwise rotation transform about the origin, thetaDegrees degrees.
func Rotate(thetaDegrees float64) Transform {
	return Transform{A: geometry.Rotate(thetaDegrees)}
}

/*****************************************************************************************************************/

// Apply maps (x, y) through the transform: p' = A·p + t.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.A.XX*x + t.A.XY*y + t.DX, t.A.YX*x + t.A.YY*y + t.DY
}

/*****************************************************************************************************************/

// Compose returns the transform that applies t first, then other: other(t(p)).
func (t Transform) Compose(other Transform) Transform {
	a := t.A.Compose(other.A)
	dx, dy := other.A.XX*t.DX+other.A.XY*t.DY+other.DX, other.A.YX*t.DX+other.A.YY*t.DY+other.DY
	return Transform{A: a, DX: dx, DY: dy}
}

/*****************************************************************************************************************/

// FromCDMatrix builds a Transform from a WCS-style linear-plus-reference-pixel description: a
// pixel (x, y) maps to (refX + cd1_1*(x-crpix1) + cd1_2*(y-crpix2), refY + cd2_1*(x-crpix1) +
// cd2_2*(y-crpix2)). This is the same affine shape the teacher's pkg/wcs described for mapping
// pixel coordinates to equatorial coordinates; here it is generalised to any pair of planes.
func FromCDMatrix(crpix1, crpix2, refX, refY, cd11, cd12, cd21, cd22 float64) Transform {
	a := geometry.FromRows(cd11, cd12, cd21, cd22)
	dx := refX - (cd11*crpix1 + cd12*crpix2)
	dy := refY - (cd21*crpix1 + cd22*crpix2)
	return Transform{A: a, DX: dx, DY: dy}
}

/*****************************************************************************************************************/
