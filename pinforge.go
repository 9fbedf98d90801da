// Package pinforge composes Pinterest-style pin images: two photo bands
// cut from a source picture around a solid banner that carries the title
// in bold white text between dotted borders.
//
// The banner color is either supplied by the caller or picked from the
// photo by a vibrancy heuristic (see DetectBannerColor). Near-square
// sources are treated as 2x2 collages and the bands show opposite
// quadrants; everything else shows the full frame twice.
package pinforge

import "errors"

var (
	// ErrDecode reports a source image that is missing or cannot be decoded.
	ErrDecode = errors.New("pinforge: cannot decode source image")

	// ErrInvalidColor reports a malformed banner color string. A manual
	// color the caller asked for is never silently replaced.
	ErrInvalidColor = errors.New("pinforge: invalid banner color")
)
