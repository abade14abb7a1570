//go:build nopng

/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package export

/*****************************************************************************************************************/

// EncodePNG is unavailable under the "nopng" build tag; PNG formats always report
// ErrFormatUnsupported.
func EncodePNG(samples []uint16, width, height int, format Format) ([]byte, error) {
	return nil, ErrFormatUnsupported
}

/*****************************************************************************************************************/
