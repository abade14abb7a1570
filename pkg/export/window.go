/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package export

/*****************************************************************************************************************/

// Window defines a rectangular sub-region of a canvas to export.
type Window struct {
	X, Y          int
	Width, Height int
}

/*****************************************************************************************************************/

// clipWindow intersects win with the canvas bounds [0, canvasWidth) x [0, canvasHeight),
// clamping negative offsets to zero. An entirely out-of-bounds window yields a zero-sized
// result, never an error.
func clipWindow(win Window, canvasWidth, canvasHeight int) (x, y, w, h int) {
	x1, y1 := win.X, win.Y
	x2, y2 := win.X+win.Width, win.Y+win.Height

	if x1 < 0 {
		x1 = 0
	}

	if y1 < 0 {
		y1 = 0
	}

	if x2 > canvasWidth {
		x2 = canvasWidth
	}

	if y2 > canvasHeight {
		y2 = canvasHeight
	}

	if x2 < x1 {
		x2 = x1
	}

	if y2 < y1 {
		y2 = y1
	}

	return x1, y1, x2 - x1, y2 - y1
}

/*****************************************************************************************************************/

// SelectWindow extracts the pixels of win from a canvasWidth x canvasHeight row-major plane,
// returning the clipped rectangle's own dimensions.
func SelectWindow(pixels []uint16, canvasWidth, canvasHeight int, win Window) (selected []uint16, width, height int) {
	x, y, w, h := clipWindow(win, canvasWidth, canvasHeight)

	selected = make([]uint16, w*h)

	for row := 0; row < h; row++ {
		srcStart := (y+row)*canvasWidth + x
		copy(selected[row*w:(row+1)*w], pixels[srcStart:srcStart+w])
	}

	return selected, w, h
}

/*****************************************************************************************************************/

// SelectSubsampled performs integer-factor nearest-neighbour down-sampling of a canvasWidth x
// canvasHeight row-major plane: output pixel (i, j) samples source pixel (i*fx, j*fy). Output
// dimensions are ceil(canvasWidth/fx) x ceil(canvasHeight/fy).
func SelectSubsampled(pixels []uint16, canvasWidth, canvasHeight, fx, fy int) (selected []uint16, width, height int, err error) {
	if fx < 1 || fy < 1 {
		return nil, 0, 0, ErrInvalidFactor
	}

	width = (canvasWidth + fx - 1) / fx
	height = (canvasHeight + fy - 1) / fy

	selected = make([]uint16, width*height)

	for j := 0; j < height; j++ {
		srcY := j * fy

		for i := 0; i < width; i++ {
			selected[j*width+i] = pixels[srcY*canvasWidth+i*fx]
		}
	}

	return selected, width, height, nil
}

/*****************************************************************************************************************/
