package pinforge

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource supplies the bold face used for banner titles. Faces are
// not safe for concurrent use, so implementations must hand out a fresh
// face per call; Render requests one per invocation.
type FontSource interface {
	BoldFace(size float64) (font.Face, error)
}

// BuiltinBold returns the embedded Go Bold font. It needs nothing on
// disk and backs every other source as the fallback.
func BuiltinBold() FontSource { return builtinBold{} }

type builtinBold struct{}

var (
	builtinOnce sync.Once
	builtinFont *sfnt.Font
	builtinErr  error
)

func (builtinBold) BoldFace(size float64) (font.Face, error) {
	builtinOnce.Do(func() {
		builtinFont, builtinErr = opentype.Parse(gobold.TTF)
	})
	if builtinErr != nil {
		return nil, fmt.Errorf("parse embedded bold font: %w", builtinErr)
	}
	return newFace(builtinFont, size)
}

// FontFile reads a TTF or OTF file from disk on every call, so renders
// never share face state.
type FontFile struct {
	Path string
}

func (f FontFile) BoldFace(size float64) (font.Face, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", f.Path, err)
	}
	return newFace(parsed, size)
}

func newFace(f *sfnt.Font, size float64) (font.Face, error) {
	// DPI 72 makes the point size equal the pixel size.
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
