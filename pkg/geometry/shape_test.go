/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package geometry

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

func TestIdentity(t *testing.T) {
	m := Identity()

	if m.XX != 1 || m.XY != 0 || m.YX != 0 || m.YY != 1 {
		t.Errorf("Identity() = %+v; want {1 0 0 1}", m)
	}
}

/*****************************************************************************************************************/

func TestFromRows(t *testing.T) {
	m := FromRows(1, 2, 3, 4)

	if m.XX != 1 || m.XY != 2 || m.YX != 3 || m.YY != 4 {
		t.Errorf("FromRows(1,2,3,4) = %+v; want {1 2 3 4}", m)
	}
}

/*****************************************************************************************************************/

func TestScale(t *testing.T) {
	m := Scale(2.5)

	if m.XX != 2.5 || m.YY != 2.5 || m.XY != 0 || m.YX != 0 {
		t.Errorf("Scale(2.5) = %+v; want {2.5 0 0 2.5}", m)
	}
}

/*****************************************************************************************************************/

func TestStretch(t *testing.T) {
	m := Stretch(2, 3)

	if m.XX != 2 || m.YY != 3 || m.XY != 0 || m.YX != 0 {
		t.Errorf("Stretch(2,3) = %+v; want {2 0 0 3}", m)
	}
}

/*****************************************************************************************************************/

func TestRotate90(t *testing.T) {
	m := Rotate(90)

	if !almostEqual(m.XX, 0, 1e-9) || !almostEqual(m.XY, -1, 1e-9) {
		t.Errorf("Rotate(90) row 0 = (%f, %f); want (0, -1)", m.XX, m.XY)
	}

	if !almostEqual(m.YX, 1, 1e-9) || !almostEqual(m.YY, 0, 1e-9) {
		t.Errorf("Rotate(90) row 1 = (%f, %f); want (1, 0)", m.YX, m.YY)
	}
}

/*****************************************************************************************************************/

func TestStretchThenRotateOrder(t *testing.T) {
	stretched := Stretch(2, 1)
	composed := stretched.Rotate(90)

	// stretch(2,1) then rotate(90) should take (1,0) -> stretched (2,0) -> rotated (0,2):
	x, y := composed.XX, composed.YX

	if !almostEqual(x, 0, 1e-9) || !almostEqual(y, 2, 1e-9) {
		t.Errorf("Stretch(2,1).Rotate(90) first column = (%f, %f); want (0, 2)", x, y)
	}
}

/*****************************************************************************************************************/

func TestCovarianceOfIdentityIsIdentity(t *testing.T) {
	xx, xy, yx, yy := Identity().Covariance()

	if xx != 1 || yy != 1 || xy != 0 || yx != 0 {
		t.Errorf("Covariance of Identity() = (%f %f %f %f); want (1 0 0 1)", xx, xy, yx, yy)
	}
}

/*****************************************************************************************************************/

func TestCovarianceOfStretch(t *testing.T) {
	xx, xy, yx, yy := Stretch(2, 3).Covariance()

	if !almostEqual(xx, 4, 1e-9) || !almostEqual(yy, 9, 1e-9) {
		t.Errorf("Covariance of Stretch(2,3) = (%f %f %f %f); want (4 0 0 9)", xx, xy, yx, yy)
	}
}

/*****************************************************************************************************************/

func TestComposeIsOtherTimesM(t *testing.T) {
	a := Stretch(2, 1)
	b := Rotate(90)

	composed := a.Compose(b)
	chained := a.Rotate(90)

	if composed != chained {
		t.Errorf("Compose(Rotate(90)) = %+v; want %+v (matching chained .Rotate(90))", composed, chained)
	}
}

/*****************************************************************************************************************/
