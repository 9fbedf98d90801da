package pinforge

import "fmt"

// Config holds the template geometry and default colors. The zero value
// is not usable; start from DefaultConfig and adjust.
type Config struct {
	// Finished pin size in pixels.
	CanvasWidth  int
	CanvasHeight int

	// Heights of the top photo band and the middle banner. The bottom
	// band gets whatever canvas height is left, so the three regions
	// always tile the canvas exactly.
	TopBandHeight int
	BannerHeight  int

	// Title font size in pixels and the total horizontal inset: wrapped
	// lines must fit into CanvasWidth - TitleInset.
	FontSize   int
	TitleInset int

	// Dotted border rows inside the banner: square dot edge, horizontal
	// step between dot origins, margin from the canvas sides, and the
	// distance of each row from the banner's top/bottom edge.
	DotSize    int
	DotSpacing int
	DotMargin  int
	DotInset   int

	// DefaultColor backs every degenerate path: color analysis that finds
	// nothing usable and empty manual overrides. "#RRGGBB".
	DefaultColor string
	// TextColor is the title fill. "#RRGGBB".
	TextColor string
}

func DefaultConfig() Config {
	return Config{
		CanvasWidth:   735,
		CanvasHeight:  1102,
		TopBandHeight: 400,
		BannerHeight:  120,
		FontSize:      38,
		TitleInset:    80,
		DotSize:       4,
		DotSpacing:    12,
		DotMargin:     20,
		DotInset:      15,
		DefaultColor:  "#FF9800",
		TextColor:     "#FFFFFF",
	}
}

// BottomBandHeight is the canvas height left under the top band and the
// banner.
func (c Config) BottomBandHeight() int {
	return c.CanvasHeight - c.TopBandHeight - c.BannerHeight
}

func (c Config) Validate() error {
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("canvas size %dx%d is not positive", c.CanvasWidth, c.CanvasHeight)
	}
	if c.TopBandHeight <= 0 || c.BannerHeight <= 0 || c.BottomBandHeight() <= 0 {
		return fmt.Errorf("bands %d+%d+%d do not tile a %dpx tall canvas",
			c.TopBandHeight, c.BannerHeight, c.BottomBandHeight(), c.CanvasHeight)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font size %d is not positive", c.FontSize)
	}
	if c.TitleInset < 0 || c.TitleInset >= c.CanvasWidth {
		return fmt.Errorf("title inset %d leaves no room on a %dpx wide canvas", c.TitleInset, c.CanvasWidth)
	}
	// A non-positive spacing would make the dot loop spin forever.
	if c.DotSize <= 0 || c.DotSpacing <= 0 || c.DotMargin < 0 || c.DotInset < 0 {
		return fmt.Errorf("dot geometry size=%d spacing=%d margin=%d inset=%d is invalid",
			c.DotSize, c.DotSpacing, c.DotMargin, c.DotInset)
	}
	if _, err := ParseHexColor(c.DefaultColor); err != nil {
		return fmt.Errorf("default color: %w", err)
	}
	if _, err := ParseHexColor(c.TextColor); err != nil {
		return fmt.Errorf("text color: %w", err)
	}
	return nil
}
