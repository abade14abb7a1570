/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package canvas

/*****************************************************************************************************************/

import (
	"github.com/observerly/starcanvas/pkg/export"
)

/*****************************************************************************************************************/

// Export packs the full pixel buffer in the given format.
func (c *Canvas) Export(format export.Format) ([]byte, error) {
	return export.Pack(c.pixels, c.width, c.height, format)
}

/*****************************************************************************************************************/

// ExportWindow packs a rectangular sub-region of the pixel buffer in the given format. The window
// is intersected with the canvas bounds; an entirely out-of-bounds window packs to an empty byte
// sequence.
func (c *Canvas) ExportWindow(win export.Window, format export.Format) ([]byte, error) {
	selected, w, h := export.SelectWindow(c.pixels, c.width, c.height, win)

	return export.Pack(selected, w, h, format)
}

/*****************************************************************************************************************/

// ExportSubsampled packs an integer-factor nearest-neighbour down-sampled view of the pixel
// buffer in the given format. fx and fy must each be ≥ 1.
func (c *Canvas) ExportSubsampled(fx, fy int, format export.Format) ([]byte, error) {
	selected, w, h, err := export.SelectSubsampled(c.pixels, c.width, c.height, fx, fy)
	if err != nil {
		return nil, err
	}

	return export.Pack(selected, w, h, format)
}

/*****************************************************************************************************************/
