package refstore

import (
	"image"
	"image/color"
	"testing"

	"github.com/tryangle-app/tryangle/backend/guidance/internal/measure"
)

// splitImage paints a hard edge so perception hashes of different layouts
// land far apart.
func splitImage(horizontal bool) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			dark := x < 32
			if horizontal {
				dark = y < 32
			}
			c := color.Gray{Y: 230}
			if dark {
				c = color.Gray{Y: 20}
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSetAndGet(t *testing.T) {
	s := New()
	if _, ok := s.Get(); ok {
		t.Fatal("empty store should report no reference")
	}

	m := &measure.FrameMeasurement{Aspect: measure.Aspect4x3}
	ref, changed := s.Set(m, nil)
	if !changed || ref.ID == "" {
		t.Fatalf("ref = %+v changed = %v", ref, changed)
	}

	got, ok := s.Get()
	if !ok || got.ID != ref.ID || got.Measurement != m {
		t.Fatalf("got %+v", got)
	}
}

func TestDuplicateUploadKeepsReference(t *testing.T) {
	s := New()
	first, _ := s.Set(&measure.FrameMeasurement{}, splitImage(false))

	again, changed := s.Set(&measure.FrameMeasurement{}, splitImage(false))
	if changed {
		t.Fatal("identical image should be deduplicated")
	}
	if again.ID != first.ID {
		t.Error("dedupe must keep the original reference ID")
	}

	other, changed := s.Set(&measure.FrameMeasurement{}, splitImage(true))
	if !changed || other.ID == first.ID {
		t.Error("a different image must replace the reference")
	}
}

func TestMeasurementOnlyAlwaysReplaces(t *testing.T) {
	s := New()
	first, _ := s.Set(&measure.FrameMeasurement{}, nil)
	second, changed := s.Set(&measure.FrameMeasurement{}, nil)
	if !changed || second.ID == first.ID {
		t.Error("without image hashes every set replaces")
	}
}

func TestClear(t *testing.T) {
	s := New()
	if s.Clear() {
		t.Error("clearing an empty store reports false")
	}
	s.Set(&measure.FrameMeasurement{}, nil)
	if !s.Clear() {
		t.Error("clearing a set store reports true")
	}
	if _, ok := s.Get(); ok {
		t.Error("store should be empty after clear")
	}
}
