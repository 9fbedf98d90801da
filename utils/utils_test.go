package utils

import (
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"testing"
	"time"
)

func TestSafeFileName(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", "Easy Recipes", "Easy_Recipes"},
		{"punctuation dropped", "Pasta: 15-minute dinner!", "Pasta_15-minute_dinner"},
		{"trailing space trimmed", "Tacos?! ", "Tacos"},
		{"capped at 30 runes", "abcdefghij abcdefghij abcdefghij abc", "abcdefghij_abcdefghij_abcdefgh"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeFileName(tt.in); got != tt.want {
				t.Fatalf("SafeFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPinFileName(t *testing.T) {
	now := time.Unix(1700000000, 0)
	got := PinFileName("Easy Recipes", now)
	if want := "pinterest_Easy_Recipes_1700000000.png"; got != want {
		t.Fatalf("PinFileName = %q, want %q", got, want)
	}
}

func TestSaveAndLoadPin(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.NRGBA{10, 20, 30, 255}), image.Point{}, draw.Src)

	path := filepath.Join(t.TempDir(), "pin.png")
	if err := SavePin(img, path); err != nil {
		t.Fatal(err)
	}
	back, err := LoadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if b := back.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Fatalf("loaded size = %dx%d", b.Dx(), b.Dy())
	}
	r, g, b, _ := back.At(4, 4).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Fatalf("loaded pixel = %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestLoadImageMissing(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatal("missing file did not fail")
	}
}

func TestSaveSwatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatch.png")
	if err := SaveSwatch("#FF9800", 16, path); err != nil {
		t.Fatal(err)
	}
	img, err := LoadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := img.At(8, 8).RGBA()
	if r>>8 != 0xFF || g>>8 != 0x98 || b>>8 != 0x00 {
		t.Fatalf("swatch pixel = %x,%x,%x", r>>8, g>>8, b>>8)
	}

	if err := SaveSwatch("not-a-color", 16, path); err == nil {
		t.Fatal("malformed color did not fail")
	}
}
