/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package transform

/*****************************************************************************************************************/

import (
	"math"
	"testing"
)

/*****************************************************************************************************************/

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

/*****************************************************************************************************************/

func TestIdentityApply(t *testing.T) {
	x, y := Identity().Apply(5, 7)

	if x != 5 || y != 7 {
		t.Errorf("Identity().Apply(5,7) = (%f,%f); want (5,7)", x, y)
	}
}

/*****************************************************************************************************************/

func TestTranslateApply(t *testing.T) {
	x, y := Translate(10, 0).Apply(5, 5)

	if x != 15 || y != 5 {
		t.Errorf("Translate(10,0).Apply(5,5) = (%f,%f); want (15,5)", x, y)
	}
}

/*****************************************************************************************************************/

func TestScaleApply(t *testing.T) {
	x, y := Scale(2).Apply(3, 4)

	if x != 6 || y != 8 {
		t.Errorf("Scale(2).Apply(3,4) = (%f,%f); want (6,8)", x, y)
	}
}

/*****************************************************************************************************************/

func TestRotateApply(t *testing.T) {
	x, y := Rotate(90).Apply(1, 0)

	if !almostEqual(x, 0, 1e-9) || !almostEqual(y, 1, 1e-9) {
		t.Errorf("Rotate(90).Apply(1,0) = (%f,%f); want (0,1)", x, y)
	}
}

/*****************************************************************************************************************/

func TestComposeTranslateThenScale(t *testing.T) {
	composed := Translate(1, 0).Compose(Scale(2))

	x, y := composed.Apply(0, 0)

	if x != 2 || y != 0 {
		t.Errorf("Translate(1,0).Compose(Scale(2)).Apply(0,0) = (%f,%f); want (2,0)", x, y)
	}
}

/*****************************************************************************************************************/

func TestFromCDMatrixIdentityAtReference(t *testing.T) {
	tr := FromCDMatrix(1000, 1000, 56.75, 24.11, 1, 0, 0, 1)

	x, y := tr.Apply(1000, 1000)

	if !almostEqual(x, 56.75, 1e-9) || !almostEqual(y, 24.11, 1e-9) {
		t.Errorf("FromCDMatrix at reference pixel = (%f,%f); want (56.75,24.11)", x, y)
	}
}

/*****************************************************************************************************************/
