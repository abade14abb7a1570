//go:build !nopng

/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package export

/*****************************************************************************************************************/

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
)

/*****************************************************************************************************************/

// EncodePNG renders a width x height row-major plane of 16-bit linear samples to a grayscale PNG,
// gamma-encoding to 8 bits for PngGamma8Bpp or keeping the full 16-bit linear range for
// PngLinear16Bpp. Compiled out under the "nopng" build tag.
func EncodePNG(samples []uint16, width, height int, format Format) ([]byte, error) {
	var img image.Image

	switch format {
	case PngGamma8Bpp:
		gray := image.NewGray(image.Rect(0, 0, width, height))

		for i, v := range samples {
			gray.Pix[i] = GammaEncode8(v)
		}

		img = gray

	case PngLinear16Bpp:
		gray16 := image.NewGray16(image.Rect(0, 0, width, height))

		for i, v := range samples {
			gray16.Pix[i*2] = byte(v >> 8)
			gray16.Pix[i*2+1] = byte(v)
		}

		img = gray16

	default:
		return nil, fmt.Errorf("%w: %v is not a PNG format", ErrFormatUnsupported, format)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("export: failed to encode PNG: %w", err)
	}

	return buf.Bytes(), nil
}

/*****************************************************************************************************************/
