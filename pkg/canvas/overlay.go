/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package canvas

/*****************************************************************************************************************/

import (
	"fmt"

	"github.com/observerly/starcanvas/pkg/overlay"
	"github.com/observerly/starcanvas/pkg/spot"
)

/*****************************************************************************************************************/

// Overlay renders the canvas's current pixel buffer as a grayscale PNG with a crosshair and circle
// of the given radius drawn at each handle's effective rendered position, labelled by its integer
// handle value. Handles that no longer resolve (e.g. never added) are silently skipped.
func (c *Canvas) Overlay(radius float64, handles []spot.Handle) ([]byte, error) {
	marks := make([]overlay.Mark, 0, len(handles))

	for _, h := range handles {
		x, y, ok := c.SpotPosition(h)
		if !ok {
			continue
		}

		marks = append(marks, overlay.Mark{X: x, Y: y, Label: fmt.Sprintf("#%d", int(h))})
	}

	return overlay.Render(c.pixels, c.width, c.height, radius, marks)
}

/*****************************************************************************************************************/
