package renderer

import (
	"strings"
	"testing"
	"time"
)

func TestRenderStats_Merge(t *testing.T) {
	var a, b RenderStats
	a.add(SurfaceSun)
	a.add(SurfaceRoad)
	b.add(SurfaceRoad)
	b.add(SurfaceHorizon)
	b.Elapsed = time.Second

	a.Merge(b)

	if a.TotalPixels != 4 {
		t.Errorf("TotalPixels = %d, want 4", a.TotalPixels)
	}
	if a.Count(SurfaceRoad) != 2 || a.Count(SurfaceSun) != 1 || a.Count(SurfaceHorizon) != 1 {
		t.Errorf("unexpected counts %v", a.Surfaces)
	}
	if a.Elapsed != 0 {
		t.Errorf("Merge should not touch Elapsed, got %v", a.Elapsed)
	}
	if a.SkyPixels() != 1 || a.GroundPixels() != 2 {
		t.Errorf("SkyPixels = %d, GroundPixels = %d", a.SkyPixels(), a.GroundPixels())
	}
}

func TestRenderStats_CountOutOfRange(t *testing.T) {
	var s RenderStats
	if s.Count(Surface(-1)) != 0 || s.Count(surfaceCount) != 0 {
		t.Error("Expected zero for unknown surfaces")
	}
}

func TestRenderStats_String(t *testing.T) {
	var s RenderStats
	s.add(SurfaceDuneOverflow)
	str := s.String()
	for _, want := range []string{"1 pixels", "dune-overflow=1", "horizon=0"} {
		if !strings.Contains(str, want) {
			t.Errorf("String() = %q, missing %q", str, want)
		}
	}
}
