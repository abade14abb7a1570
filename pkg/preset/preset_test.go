/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package preset

/*****************************************************************************************************************/

import (
	"path/filepath"
	"testing"

	"github.com/observerly/starcanvas/pkg/geometry"
	"github.com/observerly/starcanvas/pkg/spot"
	"github.com/observerly/starcanvas/pkg/transform"
)

/*****************************************************************************************************************/

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "presets.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}

	t.Cleanup(func() { _ = s.Close() })

	return s
}

/*****************************************************************************************************************/

func TestSaveThenLoadRoundTrips(t *testing.T) {
	s := openTestStore(t)

	scene := Scene{
		Width:      64,
		Height:     32,
		Background: 10,
		View:       transform.Translate(5, 5),
		Spots: []spot.Record{
			{X: 1, Y: 2, Shape: geometry.Identity(), Peak: 0.5, Illumination: 1},
		},
	}

	if err := s.Save("field-a", scene); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := s.Load("field-a")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if got.Width != 64 || got.Height != 32 || got.Background != 10 {
		t.Errorf("got = %+v; want Width=64 Height=32 Background=10", got)
	}

	if len(got.Spots) != 1 || got.Spots[0].X != 1 || got.Spots[0].Y != 2 {
		t.Errorf("got.Spots = %+v", got.Spots)
	}
}

/*****************************************************************************************************************/

func TestLoadUnknownNameReturnsErrNotFound(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Load("nonexistent"); err == nil {
		t.Errorf("Load of unknown name returned nil error")
	}
}

/*****************************************************************************************************************/

func TestSaveTwiceOverwritesInPlace(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save("field-b", Scene{Width: 1, Height: 1}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if err := s.Save("field-b", Scene{Width: 99, Height: 99}); err != nil {
		t.Fatalf("second Save returned error: %v", err)
	}

	got, err := s.Load("field-b")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if got.Width != 99 {
		t.Errorf("Width = %d; want 99 (overwritten)", got.Width)
	}

	names, err := s.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(names) != 1 {
		t.Errorf("len(names) = %d; want 1 (no duplicate row from second Save)", len(names))
	}
}

/*****************************************************************************************************************/

func TestListReturnsAllStoredNames(t *testing.T) {
	s := openTestStore(t)

	_ = s.Save("one", Scene{Width: 1, Height: 1})
	_ = s.Save("two", Scene{Width: 1, Height: 1})

	names, err := s.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(names) != 2 {
		t.Errorf("len(names) = %d; want 2", len(names))
	}
}

/*****************************************************************************************************************/
