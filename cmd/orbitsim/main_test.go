package main

import (
	"strings"
	"testing"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/export"
	"github.com/san-kum/orbitsim/internal/viz"
)

func TestSnapshotSVG(t *testing.T) {
	bodies := config.GetPreset("atom").Universe().Bodies()

	svg := snapshotSVG(bodies, 640)
	if !strings.HasPrefix(svg, "<?xml") {
		t.Fatalf("expected an SVG document, got %q", svg[:min(len(svg), 40)])
	}
	if !strings.Contains(svg, `width="640`) {
		t.Errorf("expected 640 pixel width in %q", svg[:min(len(svg), 200)])
	}
	for _, cat := range []viz.Category{viz.Heavy, viz.Negative} {
		if !strings.Contains(svg, export.Palette[cat]) {
			t.Errorf("snapshot has no %s dots", cat)
		}
	}
	if strings.Contains(svg, export.Palette[viz.Positive]) {
		t.Error("atom has no light positive bodies")
	}
}
