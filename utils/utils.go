// Package utils holds the file I/O collaborators around the pinforge
// engine: loading source photos, saving finished pins and naming the
// output files. The engine itself never touches the filesystem.
package utils

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"strings"
	"time"
	"unicode"

	"github.com/disintegration/imaging"
	"github.com/setanarut/pinforge"

	// Sources commonly arrive as webp; imaging registers the rest.
	_ "golang.org/x/image/webp"
)

// LoadImage opens and decodes a source photo in any registered raster
// format (jpeg, png, gif, bmp, tiff, webp).
func LoadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	return img, nil
}

// SavePin writes a finished pin as PNG at the best compression level.
func SavePin(img image.Image, path string) error {
	err := imaging.Save(img, path, imaging.PNGCompressionLevel(png.BestCompression))
	if err != nil {
		return fmt.Errorf("save pin %s: %w", path, err)
	}
	return nil
}

// SaveSwatch writes a solid square tile of the given "#RRGGBB" color,
// so callers can show the banner color a render resolved to.
func SaveSwatch(hex string, tileSize int, path string) error {
	c, err := pinforge.ParseHexColor(hex)
	if err != nil {
		return err
	}
	if tileSize <= 0 {
		tileSize = 64
	}
	img := image.NewNRGBA(image.Rect(0, 0, tileSize, tileSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save swatch %s: %w", path, err)
	}
	return nil
}

// SafeFileName reduces a pin title to a filename fragment: letters,
// digits, dashes and underscores survive, spaces become underscores,
// everything else is dropped, and the result is capped at 30 runes
// before the space substitution.
func SafeFileName(title string) string {
	var b strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	s := strings.TrimRight(b.String(), " ")
	if r := []rune(s); len(r) > 30 {
		s = string(r[:30])
	}
	return strings.ReplaceAll(s, " ", "_")
}

// PinFileName builds the canonical output name for a rendered pin:
// pinterest_<safe-title>_<unix>.png.
func PinFileName(title string, now time.Time) string {
	return fmt.Sprintf("pinterest_%s_%d.png", SafeFileName(title), now.Unix())
}
