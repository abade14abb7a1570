/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package export

/*****************************************************************************************************************/

import "fmt"

/*****************************************************************************************************************/

// PackRaw encodes a width x height row-major plane of 16-bit linear samples into a headerless
// byte sequence for a raw (non-PNG) format, row-major top-to-bottom and left-to-right, with no
// padding between rows.
func PackRaw(samples []uint16, format Format) ([]byte, error) {
	switch format {
	case RawGamma8Bpp:
		out := make([]byte, len(samples))
		for i, v := range samples {
			out[i] = GammaEncode8(v)
		}

		return out, nil

	case RawLinear10BppLE:
		return packLinearLE(samples, 10), nil

	case RawLinear12BppLE:
		return packLinearLE(samples, 12), nil

	default:
		return nil, fmt.Errorf("%w: %v is not a raw format", ErrFormatUnsupported, format)
	}
}

/*****************************************************************************************************************/

// packLinearLE quantises every sample to the given bit depth and packs it as a two-byte
// little-endian word, with the unused upper bits of the word left zero.
func packLinearLE(samples []uint16, bits int) []byte {
	out := make([]byte, len(samples)*2)

	for i, v := range samples {
		q := LinearQuantize(v, bits)
		out[i*2] = byte(q)
		out[i*2+1] = byte(q >> 8)
	}

	return out
}

/*****************************************************************************************************************/
