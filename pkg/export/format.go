/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package export implements the image export pipeline: gamma encoding, bit-depth quantisation,
// endian-correct packing, sub-sampling, windowing, and PNG container writing, all sharing one
// Format enumeration — adapted from the teacher's own grayscale export flow
// (examples/sky/main.go's ZScaleNormalizeImage + png.Encode, examples/solve/main.go's manual
// image.Gray loop) generalised into a reusable, format-agnostic pipeline.
package export

/*****************************************************************************************************************/

import "errors"

/*****************************************************************************************************************/

// ErrFormatUnsupported is returned when a PNG format is requested but PNG support was not
// compiled in (build tag "nopng").
var ErrFormatUnsupported = errors.New("export: format unsupported in this build")

/*****************************************************************************************************************/

// ErrInvalidFactor is returned for a non-positive sub-sampling factor.
var ErrInvalidFactor = errors.New("export: sub-sampling factor must be >= 1")

/*****************************************************************************************************************/

// Format names one of the supported output encodings.
type Format int

/*****************************************************************************************************************/

const (
	// RawGamma8Bpp is an 8-bit, gamma (sRGB-like) encoded, one-byte-per-pixel raw plane.
	RawGamma8Bpp Format = iota

	// RawLinear10BppLE is a 10-bit, linear, two-byte little-endian raw plane (upper 6 bits zero).
	RawLinear10BppLE

	// RawLinear12BppLE is a 12-bit, linear, two-byte little-endian raw plane (upper 4 bits zero).
	RawLinear12BppLE

	// PngGamma8Bpp is an 8-bit, gamma-encoded, grayscale PNG.
	PngGamma8Bpp

	// PngLinear16Bpp is a 16-bit, linear, grayscale PNG.
	PngLinear16Bpp
)

/*****************************************************************************************************************/

// BitDepth returns the bit depth of the format's quantised samples.
func (f Format) BitDepth() int {
	switch f {
	case RawGamma8Bpp, PngGamma8Bpp:
		return 8
	case RawLinear10BppLE:
		return 10
	case RawLinear12BppLE:
		return 12
	case PngLinear16Bpp:
		return 16
	default:
		return 0
	}
}

/*****************************************************************************************************************/

// IsGamma reports whether the format applies the sRGB-like gamma transfer function (as opposed
// to linear quantisation).
func (f Format) IsGamma() bool {
	return f == RawGamma8Bpp || f == PngGamma8Bpp
}

/*****************************************************************************************************************/

// IsPNG reports whether the format is a PNG container format.
func (f Format) IsPNG() bool {
	return f == PngGamma8Bpp || f == PngLinear16Bpp
}

/*****************************************************************************************************************/

// BytesPerPixel returns the raw (non-PNG) packed size, in bytes, of one sample.
func (f Format) BytesPerPixel() int {
	switch f {
	case RawGamma8Bpp:
		return 1
	case RawLinear10BppLE, RawLinear12BppLE:
		return 2
	default:
		return 0
	}
}

/*****************************************************************************************************************/

func (f Format) String() string {
	switch f {
	case RawGamma8Bpp:
		return "RawGamma8Bpp"
	case RawLinear10BppLE:
		return "RawLinear10BppLE"
	case RawLinear12BppLE:
		return "RawLinear12BppLE"
	case PngGamma8Bpp:
		return "PngGamma8Bpp"
	case PngLinear16Bpp:
		return "PngLinear16Bpp"
	default:
		return "Unknown"
	}
}

/*****************************************************************************************************************/
