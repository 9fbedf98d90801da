package pinforge

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"slices"
	"strings"

	"github.com/cenkalti/dominantcolor"
	"github.com/disintegration/imaging"
)

// ColorSource selects how DetectBannerColor picks a color from a photo.
type ColorSource int

const (
	// ColorVibrant scores quantized colors by saturation, brightness and
	// frequency, so a small vivid patch can beat a dull majority.
	ColorVibrant ColorSource = iota
	// ColorDominant takes the most frequent tone as found by the
	// dominantcolor package.
	ColorDominant
)

func (s ColorSource) String() string {
	switch s {
	case ColorDominant:
		return "dominant"
	default:
		return "vibrant"
	}
}

// ParseColorSource reads the textual form used by flags and config files.
func ParseColorSource(s string) (ColorSource, error) {
	switch s {
	case "vibrant":
		return ColorVibrant, nil
	case "dominant":
		return ColorDominant, nil
	}
	return ColorVibrant, fmt.Errorf("unknown color source %q", s)
}

const (
	// Analysis runs on a fixed square downscale, so its cost does not
	// depend on the source resolution.
	analysisSize = 100

	nearWhiteMin = 240 // channels above this are background, not content
	bucketStep   = 32

	minEligibleLuma = 80
	maxEligibleLuma = 200
	minEligibleSat  = 0.2

	bannerBoost   = 1.2
	minBannerLuma = 120 // banners darker than this fight the white text
)

// DetectBannerColor picks a banner background color for img and returns
// it as uppercase "#RRGGBB". It never fails: nil or empty images and
// images with no usable color fall back to cfg.DefaultColor.
func DetectBannerColor(img image.Image, source ColorSource, cfg Config) string {
	c, ok := pickColor(img, source)
	if ok {
		c, ok = boostForBanner(c)
	}
	if !ok {
		slog.Warn("no usable banner color in image, using default",
			"source", source, "default", cfg.DefaultColor)
		return strings.ToUpper(cfg.DefaultColor)
	}
	return HexString(c)
}

func pickColor(img image.Image, source ColorSource) (color.NRGBA, bool) {
	if img == nil {
		return color.NRGBA{}, false
	}
	if b := img.Bounds(); b.Dx() < 1 || b.Dy() < 1 {
		return color.NRGBA{}, false
	}
	switch source {
	case ColorDominant:
		c := dominantcolor.Find(img)
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}, true
	default:
		return vibrantPick(img)
	}
}

// vibrantPick is the bucketed vibrancy heuristic: downscale, drop
// near-white background, quantize channels to steps of 32, then score
// each bucket by saturation, luma and frequency. Buckets outside the
// eligibility window never win no matter how frequent they are.
func vibrantPick(img image.Image) (color.NRGBA, bool) {
	small := imaging.Resize(img, analysisSize, analysisSize, imaging.Lanczos)

	counts := make(map[int]int)
	total := 0
	pix := small.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		r, g, b := pix[i], pix[i+1], pix[i+2]
		if r > nearWhiteMin && g > nearWhiteMin && b > nearWhiteMin {
			continue
		}
		rb := int(r) / bucketStep * bucketStep
		gb := int(g) / bucketStep * bucketStep
		bb := int(b) / bucketStep * bucketStep
		counts[rb<<16|gb<<8|bb]++
		total++
	}
	if total == 0 {
		return color.NRGBA{}, false
	}

	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	// Fixed scan order keeps ties, and with them the output, deterministic.
	slices.Sort(keys)

	bestKey := -1
	bestScore := 0.0
	for _, k := range keys {
		r := k >> 16 & 0xFF
		g := k >> 8 & 0xFF
		b := k & 0xFF
		sat := saturation(r, g, b)
		lum := luma(r, g, b)
		if lum <= minEligibleLuma || lum >= maxEligibleLuma || sat <= minEligibleSat {
			continue
		}
		score := sat*0.6 + lum/255*0.2 + float64(counts[k])/float64(total)*0.2
		if score > bestScore {
			bestScore = score
			bestKey = k
		}
	}
	if bestKey < 0 {
		return color.NRGBA{}, false
	}
	return color.NRGBA{
		R: uint8(bestKey >> 16 & 0xFF),
		G: uint8(bestKey >> 8 & 0xFF),
		B: uint8(bestKey & 0xFF),
		A: 255,
	}, true
}

// boostForBanner lifts a picked color for banner use: a flat contrast
// boost, then a second lift when the result is still too dark for white
// text. Reports false for colors too dark to lift at all.
func boostForBanner(c color.NRGBA) (color.NRGBA, bool) {
	r := min(255, int(float64(c.R)*bannerBoost))
	g := min(255, int(float64(c.G)*bannerBoost))
	b := min(255, int(float64(c.B)*bannerBoost))
	if l := luma(r, g, b); l < minBannerLuma {
		if l == 0 {
			return color.NRGBA{}, false
		}
		k := minBannerLuma / l
		r = min(255, int(float64(r)*k))
		g = min(255, int(float64(g)*k))
		b = min(255, int(float64(b)*k))
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, true
}

func saturation(r, g, b int) float64 {
	hi := max(r, g, b)
	if hi == 0 {
		return 0
	}
	return float64(hi-min(r, g, b)) / float64(hi)
}

func luma(r, g, b int) float64 {
	return float64(299*r+587*g+114*b) / 1000
}
