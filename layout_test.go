package pinforge

import (
	"image"
	"testing"
)

func TestDetectLayoutMode(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want LayoutMode
	}{
		{"square", 800, 800, LayoutGrid},
		{"ratio 0.8 exactly", 80, 100, LayoutGrid},
		{"ratio 1.25 exactly", 125, 100, LayoutGrid},
		{"ratio 0.79", 79, 100, LayoutSingle},
		{"ratio 1.26", 126, 100, LayoutSingle},
		{"landscape", 1600, 900, LayoutSingle},
		{"portrait", 900, 1600, LayoutSingle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLayoutMode(tt.w, tt.h); got != tt.want {
				t.Fatalf("DetectLayoutMode(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestPlanLayoutGridQuadrants(t *testing.T) {
	cfg := DefaultConfig()
	layout, err := PlanLayout(800, 800, LayoutAuto, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if layout.Mode != LayoutGrid {
		t.Fatalf("mode = %v, want grid", layout.Mode)
	}
	if want := image.Rect(0, 0, 400, 400); layout.Top.Source != want {
		t.Fatalf("top source = %v, want %v", layout.Top.Source, want)
	}
	if want := image.Rect(400, 400, 800, 800); layout.Bottom.Source != want {
		t.Fatalf("bottom source = %v, want %v", layout.Bottom.Source, want)
	}
}

// Odd sizes floor the halves, so the bottom-right quadrant takes the
// extra pixel.
func TestPlanLayoutGridOddSize(t *testing.T) {
	layout, err := PlanLayout(801, 801, LayoutAuto, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if want := image.Rect(0, 0, 400, 400); layout.Top.Source != want {
		t.Fatalf("top source = %v, want %v", layout.Top.Source, want)
	}
	if want := image.Rect(400, 400, 801, 801); layout.Bottom.Source != want {
		t.Fatalf("bottom source = %v, want %v", layout.Bottom.Source, want)
	}
}

func TestPlanLayoutSingleUsesFullFrame(t *testing.T) {
	layout, err := PlanLayout(1600, 900, LayoutAuto, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if layout.Mode != LayoutSingle {
		t.Fatalf("mode = %v, want single", layout.Mode)
	}
	full := image.Rect(0, 0, 1600, 900)
	if layout.Top.Source != full || layout.Bottom.Source != full {
		t.Fatalf("sources = %v / %v, want both %v", layout.Top.Source, layout.Bottom.Source, full)
	}
}

// An explicit mode overrides the aspect heuristic in both directions.
func TestPlanLayoutModeOverride(t *testing.T) {
	cfg := DefaultConfig()

	layout, err := PlanLayout(800, 800, LayoutSingle, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if full := image.Rect(0, 0, 800, 800); layout.Mode != LayoutSingle || layout.Top.Source != full {
		t.Fatalf("forced single on square: mode %v, top %v", layout.Mode, layout.Top.Source)
	}

	layout, err = PlanLayout(1600, 900, LayoutGrid, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if want := image.Rect(0, 0, 800, 450); layout.Mode != LayoutGrid || layout.Top.Source != want {
		t.Fatalf("forced grid on landscape: mode %v, top %v", layout.Mode, layout.Top.Source)
	}
}

func TestPlanBandFit(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name            string
		w, h            int
		mode            LayoutMode
		band            func(Layout) BandPlan
		scaledH         int
		cropOff, pasteO int
	}{
		{
			// 735 wide by 400 tall fits the top band exactly: neither
			// crop nor letterbox may move it.
			name: "exact fit", w: 735, h: 400, mode: LayoutSingle,
			band: func(l Layout) BandPlan { return l.Top }, scaledH: 400,
		},
		{
			// Same source against the 582px bottom band letterboxes.
			name: "letterbox", w: 735, h: 400, mode: LayoutSingle,
			band: func(l Layout) BandPlan { return l.Bottom }, scaledH: 400, pasteO: 91,
		},
		{
			// A portrait frame overflows the top band and center-crops.
			name: "crop to fill", w: 735, h: 1000, mode: LayoutSingle,
			band: func(l Layout) BandPlan { return l.Top }, scaledH: 1000, cropOff: 300,
		},
		{
			// Grid quadrants of 800x800 scale 400x400 to 735x735.
			name: "grid quadrant crop", w: 800, h: 800, mode: LayoutGrid,
			band: func(l Layout) BandPlan { return l.Top }, scaledH: 735, cropOff: 167,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := PlanLayout(tt.w, tt.h, tt.mode, cfg)
			if err != nil {
				t.Fatal(err)
			}
			p := tt.band(layout)
			if p.ScaledWidth != cfg.CanvasWidth {
				t.Fatalf("scaled width = %d, want %d", p.ScaledWidth, cfg.CanvasWidth)
			}
			if p.ScaledHeight != tt.scaledH {
				t.Fatalf("scaled height = %d, want %d", p.ScaledHeight, tt.scaledH)
			}
			if p.CropOffset != tt.cropOff || p.PasteOffset != tt.pasteO {
				t.Fatalf("offsets crop=%d paste=%d, want crop=%d paste=%d",
					p.CropOffset, p.PasteOffset, tt.cropOff, tt.pasteO)
			}
		})
	}
}

func TestPlanLayoutRejectsEmptySource(t *testing.T) {
	for _, size := range [][2]int{{0, 100}, {100, 0}, {-1, 50}} {
		if _, err := PlanLayout(size[0], size[1], LayoutAuto, DefaultConfig()); err == nil {
			t.Fatalf("PlanLayout(%d, %d) did not fail", size[0], size[1])
		}
	}
}

func TestParseLayoutMode(t *testing.T) {
	for in, want := range map[string]LayoutMode{"auto": LayoutAuto, "single": LayoutSingle, "grid": LayoutGrid} {
		got, err := ParseLayoutMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseLayoutMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLayoutMode("collage"); err == nil {
		t.Fatal("unknown mode did not fail")
	}
}
