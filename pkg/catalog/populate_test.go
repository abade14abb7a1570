/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package catalog

/*****************************************************************************************************************/

import (
	"testing"

	"github.com/observerly/starcanvas/pkg/geometry"
	"github.com/observerly/starcanvas/pkg/spot"
	"github.com/observerly/starcanvas/pkg/wcs"
)

/*****************************************************************************************************************/

type fakeCanvas struct {
	added []struct {
		x, y float64
		peak float64
	}
}

func (f *fakeCanvas) AddSpot(x, y float64, shape geometry.SpotShape, peak float64) spot.Handle {
	f.added = append(f.added, struct {
		x, y float64
		peak float64
	}{x, y, peak})

	return spot.Handle(len(f.added) - 1)
}

/*****************************************************************************************************************/

func TestPopulateCanvasSkipsFaintSources(t *testing.T) {
	world := wcs.WCS{CRPIX1: 100, CRPIX2: 100, CRVAL1: 10, CRVAL2: 20, CD1_1: 0.001, CD2_2: 0.001}

	sources := []Source{
		{RA: 10, Dec: 20, PhotometricGMeanFlux: 1000, PhotometricGMeanMagnitude: 5},
		{RA: 10.01, Dec: 20, PhotometricGMeanFlux: 1000, PhotometricGMeanMagnitude: 20},
	}

	canvas := &fakeCanvas{}

	handles, err := PopulateCanvas(world, sources, geometry.Identity(), 10, canvas)
	if err != nil {
		t.Fatalf("PopulateCanvas returned error: %v", err)
	}

	if len(handles) != 1 {
		t.Fatalf("len(handles) = %d; want 1 (faint source skipped)", len(handles))
	}

	if len(canvas.added) != 1 {
		t.Fatalf("len(canvas.added) = %d; want 1", len(canvas.added))
	}
}

/*****************************************************************************************************************/

func TestPopulateCanvasMapsReferenceSourceToReferencePixel(t *testing.T) {
	world := wcs.WCS{CRPIX1: 512, CRPIX2: 512, CRVAL1: 56.75, CRVAL2: 24.12, CD1_1: -0.0002, CD2_2: 0.0002}

	sources := []Source{
		{RA: 56.75, Dec: 24.12, PhotometricGMeanFlux: 500, PhotometricGMeanMagnitude: 8},
	}

	canvas := &fakeCanvas{}

	if _, err := PopulateCanvas(world, sources, geometry.Identity(), 15, canvas); err != nil {
		t.Fatalf("PopulateCanvas returned error: %v", err)
	}

	if len(canvas.added) != 1 {
		t.Fatalf("len(canvas.added) = %d; want 1", len(canvas.added))
	}

	got := canvas.added[0]
	if got.x != 512 || got.y != 512 {
		t.Errorf("position = (%f,%f); want (512,512)", got.x, got.y)
	}
}

/*****************************************************************************************************************/

func TestPopulateCanvasRejectsSingularCDMatrix(t *testing.T) {
	world := wcs.WCS{CD1_1: 1, CD1_2: 2, CD2_1: 2, CD2_2: 4}

	if _, err := PopulateCanvas(world, nil, geometry.Identity(), 15, &fakeCanvas{}); err == nil {
		t.Errorf("PopulateCanvas with singular CD matrix returned nil error")
	}
}

/*****************************************************************************************************************/
