/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package canvas

/*****************************************************************************************************************/

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/observerly/starcanvas/pkg/geometry"
	"github.com/observerly/starcanvas/pkg/spot"
)

/*****************************************************************************************************************/

func TestOverlayProducesDecodablePNG(t *testing.T) {
	c, _ := New(16, 16)
	h := c.AddSpot(8, 8, geometry.Identity(), 1.0)

	if err := c.Draw(); err != nil {
		t.Fatalf("Draw returned error: %v", err)
	}

	out, err := c.Overlay(3, []spot.Handle{h})
	if err != nil {
		t.Fatalf("Overlay returned error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("png.Decode returned error: %v", err)
	}

	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("decoded bounds = %v; want 16x16", b)
	}
}

/*****************************************************************************************************************/

func TestOverlaySkipsUnknownHandles(t *testing.T) {
	c, _ := New(8, 8)

	out, err := c.Overlay(2, []spot.Handle{99})
	if err != nil {
		t.Fatalf("Overlay returned error: %v", err)
	}

	if _, err := png.Decode(bytes.NewReader(out)); err != nil {
		t.Fatalf("png.Decode returned error: %v", err)
	}
}

/*****************************************************************************************************************/
