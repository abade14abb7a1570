/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package export

/*****************************************************************************************************************/

import "math"

/*****************************************************************************************************************/

// GammaEncode8 applies the sRGB transfer function to a 16-bit linear sample and quantises the
// result to 8 bits, clamped to [0, 255].
func GammaEncode8(raw uint16) uint8 {
	u := float64(raw) / 65535.0

	var v float64
	if u > 0.0031308 {
		v = 1.055*math.Pow(u, 1/2.4) - 0.055
	} else {
		v = 12.92 * u
	}

	return clamp8(math.Round(v * 255))
}

/*****************************************************************************************************************/

// LinearQuantize quantises a 16-bit linear sample to an n-bit value, clamped to [0, 2ⁿ−1].
func LinearQuantize(raw uint16, bits int) uint16 {
	maxOut := float64((uint32(1) << uint(bits)) - 1)

	v := math.Round(float64(raw) * maxOut / 65535.0)

	if v < 0 {
		v = 0
	}

	if v > maxOut {
		v = maxOut
	}

	return uint16(v)
}

/*****************************************************************************************************************/

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}

	if v > 255 {
		return 255
	}

	return uint8(v)
}

/*****************************************************************************************************************/
