package pinforge

import (
	"fmt"
	"image"
)

// LayoutMode selects how the two photo bands source from the input.
type LayoutMode int

const (
	// LayoutAuto picks LayoutGrid or LayoutSingle from the aspect ratio.
	LayoutAuto LayoutMode = iota
	// LayoutSingle shows the full frame in both bands.
	LayoutSingle
	// LayoutGrid treats the input as a 2x2 collage: the top band shows the
	// top-left quadrant, the bottom band the bottom-right one.
	LayoutGrid
)

func (m LayoutMode) String() string {
	switch m {
	case LayoutSingle:
		return "single"
	case LayoutGrid:
		return "grid"
	default:
		return "auto"
	}
}

// ParseLayoutMode reads the textual form used by flags and config files.
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch s {
	case "auto":
		return LayoutAuto, nil
	case "single":
		return LayoutSingle, nil
	case "grid":
		return LayoutGrid, nil
	}
	return LayoutAuto, fmt.Errorf("unknown layout mode %q", s)
}

// DetectLayoutMode classifies a source by aspect ratio. Near-square
// frames are assumed to be 2x2 collages; that guess can misfire on a
// legitimately square photo, which is what the explicit modes are for.
func DetectLayoutMode(width, height int) LayoutMode {
	// 0.8 <= width/height <= 1.25, bounds included, in exact integer form.
	if 5*width >= 4*height && 4*width <= 5*height {
		return LayoutGrid
	}
	return LayoutSingle
}

// BandPlan says how one photo band is filled: which source region to
// read, its size after fitting to the canvas width, and the vertical
// centering offset inside the band.
type BandPlan struct {
	// Source region in a (0,0)-(width,height) coordinate space.
	Source image.Rectangle

	// Size after scaling Source to the canvas width, aspect preserved.
	ScaledWidth  int
	ScaledHeight int

	// CropOffset is the top edge of the center crop when the scaled
	// region overflows the band; PasteOffset is the letterbox offset
	// inside the band when it falls short. At an exact fit both are 0.
	CropOffset  int
	PasteOffset int
}

type Layout struct {
	Mode   LayoutMode
	Top    BandPlan
	Bottom BandPlan
}

// PlanLayout derives the band geometry for a width x height source.
// LayoutAuto defers to DetectLayoutMode; LayoutSingle and LayoutGrid
// force the choice. Pure geometry, no pixels touched.
func PlanLayout(width, height int, mode LayoutMode, cfg Config) (Layout, error) {
	if width <= 0 || height <= 0 {
		return Layout{}, fmt.Errorf("source size %dx%d is not positive", width, height)
	}
	if mode == LayoutAuto {
		mode = DetectLayoutMode(width, height)
	}
	if mode == LayoutGrid && (width < 2 || height < 2) {
		// Quadrants of a 1px-wide or 1px-tall source would be empty.
		mode = LayoutSingle
	}

	top := image.Rect(0, 0, width, height)
	bottom := top
	if mode == LayoutGrid {
		top = image.Rect(0, 0, width/2, height/2)
		bottom = image.Rect(width/2, height/2, width, height)
	}
	return Layout{
		Mode:   mode,
		Top:    planBand(top, cfg.TopBandHeight, cfg),
		Bottom: planBand(bottom, cfg.BottomBandHeight(), cfg),
	}, nil
}

func planBand(src image.Rectangle, bandHeight int, cfg Config) BandPlan {
	scaledH := cfg.CanvasWidth * src.Dy() / src.Dx()
	if scaledH < 1 {
		scaledH = 1 // extreme panoramas still need a resizable strip
	}
	p := BandPlan{
		Source:       src,
		ScaledWidth:  cfg.CanvasWidth,
		ScaledHeight: scaledH,
	}
	if scaledH >= bandHeight {
		p.CropOffset = (scaledH - bandHeight) / 2
	} else {
		p.PasteOffset = (bandHeight - scaledH) / 2
	}
	return p
}
