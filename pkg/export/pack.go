/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package export

/*****************************************************************************************************************/

// Pack encodes a width x height row-major plane of 16-bit linear samples in the given format,
// dispatching to a headerless raw encoding or a PNG container as appropriate.
func Pack(samples []uint16, width, height int, format Format) ([]byte, error) {
	if format.IsPNG() {
		return EncodePNG(samples, width, height, format)
	}

	return PackRaw(samples, format)
}

/*****************************************************************************************************************/
