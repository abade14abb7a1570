/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package sampler

/*****************************************************************************************************************/

import (
	"math"
	"testing"

	"github.com/observerly/starcanvas/pkg/geometry"
)

/*****************************************************************************************************************/

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

/*****************************************************************************************************************/

func TestNewFootprintRejectsNonPositivePeak(t *testing.T) {
	if _, ok := NewFootprint(0, 0, geometry.Identity(), 0); ok {
		t.Errorf("NewFootprint with peak=0 returned ok=true")
	}

	if _, ok := NewFootprint(0, 0, geometry.Identity(), -1); ok {
		t.Errorf("NewFootprint with peak=-1 returned ok=true")
	}
}

/*****************************************************************************************************************/

func TestAtCentrePeaksAtPeakValue(t *testing.T) {
	f, ok := NewFootprint(15.5, 15.5, geometry.Identity(), 65535)
	if !ok {
		t.Fatalf("NewFootprint returned ok=false")
	}

	// Nearest integer pixel coordinate to the sub-pixel centre:
	v := f.At(16, 16)

	if v <= 60000 {
		t.Errorf("At(16,16) near centre = %f; want close to 65535", v)
	}
}

/*****************************************************************************************************************/

func TestAtFarFromCentreIsNegligible(t *testing.T) {
	f, ok := NewFootprint(15.5, 15.5, geometry.Identity(), 65535)
	if !ok {
		t.Fatalf("NewFootprint returned ok=false")
	}

	v := f.At(20, 15)

	// exp(-12.5) * 65535 is vanishingly small:
	if v > 1 {
		t.Errorf("At(20,15) = %f; want < 1", v)
	}
}

/*****************************************************************************************************************/

func TestBoundsGrowsWithShapeScale(t *testing.T) {
	narrow, _ := NewFootprint(0, 0, geometry.Identity(), 1)
	wide, _ := NewFootprint(0, 0, geometry.Scale(3), 1)

	_, nxMax, _, _ := narrow.Bounds()
	_, wxMax, _, _ := wide.Bounds()

	if wxMax <= nxMax {
		t.Errorf("wide.Bounds() xMax = %d; want > narrow.Bounds() xMax = %d", wxMax, nxMax)
	}
}

/*****************************************************************************************************************/

func TestIlluminationDoublingDoublesContribution(t *testing.T) {
	a, _ := NewFootprint(8, 8, geometry.Identity(), 0.25*65535)
	b, _ := NewFootprint(8, 8, geometry.Identity(), 0.5*65535)

	va := a.At(8, 8)
	vb := b.At(8, 8)

	if !almostEqual(vb, 2*va, 1e-6) {
		t.Errorf("doubling peak: At = %f vs %f; want exactly double", va, vb)
	}
}

/*****************************************************************************************************************/

func TestAnisotropicShapeWidensOneAxis(t *testing.T) {
	f, ok := NewFootprint(0, 0, geometry.Stretch(3, 1), 65535)
	if !ok {
		t.Fatalf("NewFootprint returned ok=false")
	}

	xMin, xMax, yMin, yMax := f.Bounds()

	if (xMax - xMin) <= (yMax - yMin) {
		t.Errorf("Stretch(3,1) bounds x-extent=%d, y-extent=%d; want x-extent > y-extent", xMax-xMin, yMax-yMin)
	}
}

/*****************************************************************************************************************/
