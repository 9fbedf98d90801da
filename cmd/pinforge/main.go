// Command pinforge renders a Pinterest-style pin from a source photo
// and a title, with a banner color either detected from the photo or
// supplied on the command line.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/setanarut/pinforge"
	"github.com/setanarut/pinforge/utils"
)

func main() {
	var (
		imagePath   string
		title       string
		outFile     string
		outDir      string
		manualColor string
		colorSource string
		layoutMode  string
		fontPath    string
		swatch      bool
	)

	flag.StringVar(&imagePath, "image", "", "Source photo (jpeg, png, gif, bmp, tiff, webp)")
	flag.StringVar(&title, "title", "", "Banner title text")
	flag.StringVar(&outFile, "out", "", "Output file path (default: <out-dir>/pinterest_<title>_<unix>.png)")
	flag.StringVar(&outDir, "out-dir", "generated_pins", "Output directory when -out is not set")
	flag.StringVar(&manualColor, "color", "", "Manual banner color #RRGGBB (empty: detect from photo)")
	flag.StringVar(&colorSource, "color-source", "vibrant", "Detection strategy: vibrant or dominant")
	flag.StringVar(&layoutMode, "mode", "auto", "Band layout: auto, single or grid")
	flag.StringVar(&fontPath, "font", "", "Title font file, TTF or OTF (empty: embedded bold)")
	flag.BoolVar(&swatch, "swatch", false, "Also write a swatch tile of the resolved color")
	flag.Parse()

	if imagePath == "" || title == "" {
		fmt.Fprintln(os.Stderr, "Error: -image and -title are required")
		flag.Usage()
		os.Exit(1)
	}

	source, err := pinforge.ParseColorSource(colorSource)
	if err != nil {
		fatal(err)
	}
	mode, err := pinforge.ParseLayoutMode(layoutMode)
	if err != nil {
		fatal(err)
	}

	var fonts pinforge.FontSource
	if fontPath != "" {
		fonts = pinforge.FontFile{Path: fontPath}
	}
	composer, err := pinforge.NewComposer(pinforge.DefaultConfig(), fonts)
	if err != nil {
		fatal(err)
	}

	img, err := utils.LoadImage(imagePath)
	if err != nil {
		fatal(err)
	}

	pin, used, err := composer.Render(pinforge.Request{
		Image:     img,
		Title:     title,
		AutoColor: manualColor == "",
		Color:     manualColor,
		Source:    source,
		Mode:      mode,
	})
	if err != nil {
		fatal(err)
	}

	if outFile == "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			fatal(err)
		}
		outFile = filepath.Join(outDir, utils.PinFileName(title, time.Now()))
	}
	if err := utils.SavePin(pin, outFile); err != nil {
		fatal(err)
	}
	fmt.Printf("Saved %s (banner color %s)\n", outFile, used)

	if swatch {
		swatchFile := outFile[:len(outFile)-len(filepath.Ext(outFile))] + "_swatch.png"
		if err := utils.SaveSwatch(used, 64, swatchFile); err != nil {
			fatal(err)
		}
		fmt.Printf("Saved %s\n", swatchFile)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
