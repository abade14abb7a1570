/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package spot

/*****************************************************************************************************************/

import (
	"errors"

	"github.com/observerly/starcanvas/pkg/geometry"
)

/*****************************************************************************************************************/

// ErrNoSuchSpot is returned by registry mutators and queries when given a handle that was never
// issued by Add.
var ErrNoSuchSpot = errors.New("spot: no such spot")

/*****************************************************************************************************************/

// Handle is an opaque, dense, monotonically increasing index assigned by Registry.Add. Handles
// are stable for the lifetime of the registry and are never recycled.
type Handle int

/*****************************************************************************************************************/

// Record is a spot's full state: immutable intrinsic Position, Shape, and Peak, plus mutable
// Offset and Illumination.
type Record struct {
	// Intrinsic, set once at Add time:
	X, Y  float64
	Shape geometry.SpotShape
	Peak  float64 // intrinsic peak intensity, p0

	// Mutable over the spot's lifetime:
	OffsetX, OffsetY float64
	Illumination     float64 // phi, defaults to 1 at Add time
}

/*****************************************************************************************************************/
