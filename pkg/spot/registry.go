/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package spot

/*****************************************************************************************************************/

import (
	"github.com/observerly/starcanvas/pkg/geometry"
	"github.com/observerly/starcanvas/pkg/transform"
)

/*****************************************************************************************************************/

// Registry is an append-only, dense collection of spot records. Handles index directly into the
// backing slice, so lookups and iteration are O(1)/O(n) with no separate map.
type Registry struct {
	records []Record
}

/*****************************************************************************************************************/

// NewRegistry returns an empty spot registry.
func NewRegistry() *Registry {
	return &Registry{}
}

/*****************************************************************************************************************/

// Add appends a new spot with the given intrinsic position, shape, and peak intensity, zero
// offset, and unit illumination, returning its stable Handle.
func (r *Registry) Add(x, y float64, shape geometry.SpotShape, peak float64) Handle {
	r.records = append(r.records, Record{
		X: x, Y: y,
		Shape:        shape,
		Peak:         peak,
		Illumination: 1,
	})

	return Handle(len(r.records) - 1)
}

/*****************************************************************************************************************/

func (r *Registry) valid(h Handle) bool {
	return h >= 0 && int(h) < len(r.records)
}

/*****************************************************************************************************************/

// SetOffset mutates the (Δx, Δy) offset of an existing spot. Returns ErrNoSuchSpot for an
// unknown handle.
func (r *Registry) SetOffset(h Handle, dx, dy float64) error {
	if !r.valid(h) {
		return ErrNoSuchSpot
	}

	r.records[h].OffsetX = dx
	r.records[h].OffsetY = dy

	return nil
}

/*****************************************************************************************************************/

// SetIllumination mutates the illumination factor φ of an existing spot. Returns ErrNoSuchSpot
// for an unknown handle.
func (r *Registry) SetIllumination(h Handle, phi float64) error {
	if !r.valid(h) {
		return ErrNoSuchSpot
	}

	r.records[h].Illumination = phi

	return nil
}

/*****************************************************************************************************************/

// Get returns a copy of the spot's current record and whether the handle is valid.
func (r *Registry) Get(h Handle) (Record, bool) {
	if !r.valid(h) {
		return Record{}, false
	}

	return r.records[h], true
}

/*****************************************************************************************************************/

// Position returns the effective rendered position V·(intrinsic + offset) under the given view
// transform, and whether the handle is valid.
func (r *Registry) Position(h Handle, view transform.Transform) (x, y float64, ok bool) {
	rec, ok := r.Get(h)
	if !ok {
		return 0, 0, false
	}

	x, y = view.Apply(rec.X+rec.OffsetX, rec.Y+rec.OffsetY)

	return x, y, true
}

/*****************************************************************************************************************/

// Intensity returns p0·φ for the given spot (no saturation; that is a render-time concern), and
// whether the handle is valid.
func (r *Registry) Intensity(h Handle) (float64, bool) {
	rec, ok := r.Get(h)
	if !ok {
		return 0, false
	}

	return rec.Peak * rec.Illumination, true
}

/*****************************************************************************************************************/

// Count returns the number of spots ever added to the registry.
func (r *Registry) Count() int {
	return len(r.records)
}

/*****************************************************************************************************************/

// Each iterates over every spot in insertion order, calling fn with its handle and a copy of its
// current record.
func (r *Registry) Each(fn func(Handle, Record)) {
	for i, rec := range r.records {
		fn(Handle(i), rec)
	}
}

/*****************************************************************************************************************/

// Records returns a copy of every spot record, in insertion order.
func (r *Registry) Records() []Record {
	out := make([]Record, len(r.records))
	copy(out, r.records)

	return out
}

/*****************************************************************************************************************/
