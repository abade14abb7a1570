/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package geometry

/*****************************************************************************************************************/

import "math"

/*****************************************************************************************************************/

// SpotShape is the 2×2 linear transform mapping sub-pixel footprint coordinates into canvas
// pixel space. The identity matrix yields a circular Gaussian of unit characteristic radius:
//
//	[ XX  XY ]
//	[ YX  YY ]
type SpotShape struct {
	XX, XY float64
	YX, YY float64
}

/*****************************************************************************************************************/

// Identity returns the shape matrix for a circular Gaussian of unit characteristic radius.
func Identity() SpotShape {
	return SpotShape{XX: 1, XY: 0, YX: 0, YY: 1}
}

/*****************************************************************************************************************/

// FromRows constructs a SpotShape from an explicit 2×2 array, taking rows in reading order.
func FromRows(xx, xy, yx, yy float64) SpotShape {
	return SpotShape{XX: xx, XY: xy, YX: yx, YY: yy}
}

/*****************************************************************************************************************/

// Scale returns a uniform scale of the identity shape by k (multiplies every element).
func Scale(k float64) SpotShape {
	return Identity().Scale(k)
}

/*****************************************************************************************************************/

// Stretch returns a non-uniform axis scale of the identity shape.
func Stretch(sx, sy float64) SpotShape {
	return Identity().Stretch(sx, sy)
}

/*****************************************************************************************************************/

// Rotate returns the identity shape pre-multiplied by a counter-clockwise rotation of
// thetaDegrees.
func Rotate(thetaDegrees float64) SpotShape {
	return Identity().Rotate(thetaDegrees)
}

/*****************************************************************************************************************/

// Scale multiplies every element of m by k, returning a new SpotShape.
func (m SpotShape) Scale(k float64) SpotShape {
	return SpotShape{
		XX: m.XX * k, XY: m.XY * k,
		YX: m.YX * k, YY: m.YY * k,
	}
}

/*****************************************************************************************************************/

// Stretch applies a non-uniform axis scale diag(sx, sy) to m, i.e. m.Stretch(sx, sy) = diag(sx,
// sy) · m.
func (m SpotShape) Stretch(sx, sy float64) SpotShape {
	return SpotShape{
		XX: m.XX * sx, XY: m.XY * sx,
		YX: m.YX * sy, YY: m.YY * sy,
	}
}

/*****************************************************************************************************************/

// Rotate pre-multiplies m by a counter-clockwise rotation matrix of thetaDegrees, i.e.
// m.Rotate(theta) = R(theta) · m. Composition order matters: stretch(...).Rotate(...) first
// stretches then rotates.
func (m SpotShape) Rotate(thetaDegrees float64) SpotShape {
	theta := thetaDegrees * math.Pi / 180
	c, s := math.Cos(theta), math.Sin(theta)

	return SpotShape{
		XX: c*m.XX - s*m.YX,
		XY: c*m.XY - s*m.YY,
		YX: s*m.XX + c*m.YX,
		YY: s*m.XY + c*m.YY,
	}
}

/*****************************************************************************************************************/

// Compose returns other · m — m is applied first, then other. a.Compose(b) matches the
// documented "stretch(...).Compose(rotate(...))" ordering: stretch first, then rotate.
func (m SpotShape) Compose(other SpotShape) SpotShape {
	return SpotShape{
		XX: other.XX*m.XX + other.XY*m.YX,
		XY: other.XX*m.XY + other.XY*m.YY,
		YX: other.YX*m.XX + other.YY*m.YX,
		YY: other.YX*m.XY + other.YY*m.YY,
	}
}

/*****************************************************************************************************************/

// Transpose returns the transpose of m.
func (m SpotShape) Transpose() SpotShape {
	return SpotShape{XX: m.XX, XY: m.YX, YX: m.XY, YY: m.YY}
}

/*****************************************************************************************************************/

// Covariance returns Σ = M·Mᵀ, the covariance matrix of the Gaussian footprint described by m.
func (m SpotShape) Covariance() (sigmaXX, sigmaXY, sigmaYX, sigmaYY float64) {
	t := m.Transpose()
	sigmaXX = m.XX*t.XX + m.XY*t.YX
	sigmaXY = m.XX*t.XY + m.XY*t.YY
	sigmaYX = m.YX*t.XX + m.YY*t.YX
	sigmaYY = m.YX*t.XY + m.YY*t.YY
	return
}

/*****************************************************************************************************************/
