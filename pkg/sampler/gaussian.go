/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package sampler evaluates the anisotropic Gaussian footprint each spot contributes to the
// canvas at a given pixel, following the same additive-profile shape the teacher's
// pkg/sky.generateMoffatProfile used for its Moffat point-spread function, but with a
// covariance-matrix parameterisation instead of a single FWHM/beta pair.
package sampler

/*****************************************************************************************************************/

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/observerly/starcanvas/pkg/geometry"
)

/*****************************************************************************************************************/

// Footprint is a spot's precomputed Gaussian contribution, ready to be evaluated at any integer
// pixel coordinate within its Bounds.
type Footprint struct {
	cx, cy float64
	peak   float64

	// Precomputed Σ⁻¹ (symmetric 2×2), so At does no matrix work per pixel:
	invXX, invXY, invYX, invYY float64

	halfX, halfY float64
}

/*****************************************************************************************************************/

// NewFootprint builds the footprint for a spot whose effective rendered centre is (cx, cy), whose
// shape matrix is shape, and whose peak value (p0·φ·65535) is peak. ok is false when peak is
// non-positive or not representable (NaN/Inf), or when the shape's covariance is singular — such
// spots contribute nothing and should be skipped by the renderer.
func NewFootprint(cx, cy float64, shape geometry.SpotShape, peak float64) (footprint Footprint, ok bool) {
	if peak <= 0 || math.IsNaN(peak) || math.IsInf(peak, 0) {
		return Footprint{}, false
	}

	sigmaXX, sigmaXY, sigmaYX, sigmaYY := shape.Covariance()

	sigma := mat.NewDense(2, 2, []float64{sigmaXX, sigmaXY, sigmaYX, sigmaYY})

	var inv mat.Dense
	if err := inv.Inverse(sigma); err != nil {
		return Footprint{}, false
	}

	return Footprint{
		cx: cx, cy: cy,
		peak:  peak,
		invXX: inv.At(0, 0), invXY: inv.At(0, 1),
		invYX: inv.At(1, 0), invYY: inv.At(1, 1),
		halfX: math.Ceil(4 * math.Sqrt(sigmaXX)),
		halfY: math.Ceil(4 * math.Sqrt(sigmaYY)),
	}, true
}

/*****************************************************************************************************************/

// Bounds returns the inclusive axis-aligned pixel range covering the footprint's 4σ support
// region. Pixels outside these bounds contribute a negligible (effectively zero) amount.
func (f Footprint) Bounds() (xMin, xMax, yMin, yMax int) {
	xMin = int(math.Floor(f.cx - f.halfX))
	xMax = int(math.Ceil(f.cx + f.halfX))
	yMin = int(math.Floor(f.cy - f.halfY))
	yMax = int(math.Ceil(f.cy + f.halfY))

	return
}

/*****************************************************************************************************************/

// At returns the unnormalised Gaussian contribution at integer pixel coordinate (i, j):
//
//	g(i,j) = peak · exp(−½ · dᵀ · Σ⁻¹ · d),  d = (i − cx, j − cy)
func (f Footprint) At(i, j int) float64 {
	dx := float64(i) - f.cx
	dy := float64(j) - f.cy

	quad := dx*(f.invXX*dx+f.invXY*dy) + dy*(f.invYX*dx+f.invYY*dy)

	return f.peak * math.Exp(-0.5*quad)
}

/*****************************************************************************************************************/
