package pinforge

import (
	"testing"

	"golang.org/x/image/font"
)

func basicTestFace(t *testing.T) font.Face {
	t.Helper()
	face, err := BuiltinBold().BoldFace(38)
	if err != nil {
		t.Fatalf("embedded bold font: %v", err)
	}
	return face
}

func measureWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func TestBuiltinBoldFace(t *testing.T) {
	face := basicTestFace(t)
	defer face.Close()

	if w := measureWidth(face, "PINFORGE"); w <= 0 {
		t.Fatalf("measured width = %d, want > 0", w)
	}
	if a := face.Metrics().Ascent.Ceil(); a <= 0 {
		t.Fatalf("ascent = %d, want > 0", a)
	}
}

func TestFontFileMissing(t *testing.T) {
	if _, err := (FontFile{Path: "testdata/nope.ttf"}).BoldFace(38); err == nil {
		t.Fatal("missing font file did not fail")
	}
}
