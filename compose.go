package pinforge

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Request describes one pin render. The source image is borrowed and
// never written to; every call produces a fresh canvas, so concurrent
// renders share nothing.
type Request struct {
	// Image is the decoded source photo.
	Image image.Image
	// Title is the banner text. It is upper-cased and word-wrapped to
	// fit; an empty title leaves the banner blank.
	Title string

	// AutoColor picks the banner color from the photo via Source.
	// When false, Color is used instead.
	AutoColor bool
	// Color is the manual "#RRGGBB" override. A malformed value fails
	// the render; an empty one falls back to Config.DefaultColor.
	Color string
	// Source selects the auto-detection strategy. Ignored unless
	// AutoColor is set.
	Source ColorSource

	// Mode forces single or grid band sourcing. LayoutAuto applies the
	// aspect-ratio heuristic.
	Mode LayoutMode
}

// Composer renders pin templates for one fixed geometry.
type Composer struct {
	cfg   Config
	fonts FontSource
}

// NewComposer validates cfg and binds a font source. A nil fonts uses
// the embedded bold font.
func NewComposer(cfg Config, fonts FontSource) (*Composer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pinforge: config: %w", err)
	}
	if fonts == nil {
		fonts = BuiltinBold()
	}
	return &Composer{cfg: cfg, fonts: fonts}, nil
}

func (c *Composer) Config() Config { return c.cfg }

// Decode reads an image from r in any registered raster format.
// Failures wrap ErrDecode.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// Render produces the finished canvas and the banner color that was
// actually used, as uppercase "#RRGGBB". The color is surfaced on both
// the auto and the manual path so callers can display it.
func (c *Composer) Render(req Request) (*image.NRGBA, string, error) {
	if req.Image == nil {
		return nil, "", fmt.Errorf("%w: no source image", ErrDecode)
	}
	bounds := req.Image.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		return nil, "", fmt.Errorf("%w: empty source image %dx%d", ErrDecode, bounds.Dx(), bounds.Dy())
	}

	banner, err := c.resolveColor(req)
	if err != nil {
		return nil, "", err
	}

	layout, err := PlanLayout(bounds.Dx(), bounds.Dy(), req.Mode, c.cfg)
	if err != nil {
		return nil, "", fmt.Errorf("pinforge: %w", err)
	}

	canvas := imaging.New(c.cfg.CanvasWidth, c.cfg.CanvasHeight, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	canvas = c.placeBand(canvas, req.Image, layout.Top, 0, c.cfg.TopBandHeight)
	canvas = c.placeBand(canvas, req.Image, layout.Bottom,
		c.cfg.TopBandHeight+c.cfg.BannerHeight, c.cfg.BottomBandHeight())

	c.paintBanner(canvas, banner)
	c.drawDots(canvas)
	c.drawTitle(canvas, req.Title)

	return canvas, HexString(banner), nil
}

func (c *Composer) resolveColor(req Request) (color.NRGBA, error) {
	if req.AutoColor {
		hex := DetectBannerColor(req.Image, req.Source, c.cfg)
		// DetectBannerColor only emits well-formed hex.
		col, err := ParseHexColor(hex)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("pinforge: detected color: %w", err)
		}
		return col, nil
	}
	s := req.Color
	if s == "" {
		s = c.cfg.DefaultColor
	}
	return ParseHexColor(s)
}

// placeBand cuts the planned source region, fits it to the canvas
// width and pastes it into the band at yOffset: center-cropped when it
// overflows the band, letterboxed on the white canvas when it falls
// short.
func (c *Composer) placeBand(canvas *image.NRGBA, src image.Image, plan BandPlan, yOffset, bandHeight int) *image.NRGBA {
	region := imaging.Crop(src, plan.Source)
	scaled := imaging.Resize(region, plan.ScaledWidth, plan.ScaledHeight, imaging.Lanczos)

	if plan.ScaledHeight >= bandHeight {
		visible := imaging.Crop(scaled, image.Rect(0, plan.CropOffset, plan.ScaledWidth, plan.CropOffset+bandHeight))
		return imaging.Paste(canvas, visible, image.Pt(0, yOffset))
	}
	return imaging.Paste(canvas, scaled, image.Pt(0, yOffset+plan.PasteOffset))
}

func (c *Composer) paintBanner(canvas *image.NRGBA, col color.NRGBA) {
	y := c.cfg.TopBandHeight
	rect := image.Rect(0, y, c.cfg.CanvasWidth, y+c.cfg.BannerHeight)
	draw.Draw(canvas, rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// drawDots paints the two white dotted rows just inside the banner's
// top and bottom edges.
func (c *Composer) drawDots(canvas *image.NRGBA) {
	white := image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	bannerY := c.cfg.TopBandHeight
	topRow := bannerY + c.cfg.DotInset
	bottomRow := bannerY + c.cfg.BannerHeight - c.cfg.DotInset - c.cfg.DotSize

	for x := c.cfg.DotMargin; x < c.cfg.CanvasWidth-c.cfg.DotMargin; x += c.cfg.DotSpacing {
		dot := image.Rect(x, topRow, x+c.cfg.DotSize, topRow+c.cfg.DotSize)
		draw.Draw(canvas, dot, white, image.Point{}, draw.Src)
		dot = image.Rect(x, bottomRow, x+c.cfg.DotSize, bottomRow+c.cfg.DotSize)
		draw.Draw(canvas, dot, white, image.Point{}, draw.Src)
	}
}

func (c *Composer) drawTitle(canvas *image.NRGBA, title string) {
	words := strings.Fields(strings.ToUpper(title))
	if len(words) == 0 {
		return
	}

	face := c.titleFace()
	defer face.Close()

	maxWidth := c.cfg.CanvasWidth - c.cfg.TitleInset
	lines := wrapWords(words, face, maxWidth)

	lineHeight := int(math.Round(float64(c.cfg.FontSize) * 1.1))
	startY := c.cfg.TopBandHeight + (c.cfg.BannerHeight-len(lines)*lineHeight)/2
	ascent := face.Metrics().Ascent.Ceil()

	// TextColor was validated with the config.
	fg, _ := ParseHexColor(c.cfg.TextColor)

	for i, line := range lines {
		width := font.MeasureString(face, line).Ceil()
		x := (c.cfg.CanvasWidth - width) / 2
		y := startY + i*lineHeight + ascent

		// Shadow passes first so they never sit on top of the glyphs.
		drawString(canvas, line, face, x+3, y+3, color.NRGBA{A: 128})
		drawString(canvas, line, face, x+1, y+1, color.NRGBA{A: 77})
		drawString(canvas, line, face, x, y, fg)
	}
}

// titleFace hands out the configured bold face, degrading to the
// embedded bold font and finally to basicfont. Text always renders.
func (c *Composer) titleFace() font.Face {
	face, err := c.fonts.BoldFace(float64(c.cfg.FontSize))
	if err == nil {
		return face
	}
	slog.Warn("configured font unavailable, using embedded bold", "err", err)
	face, err = BuiltinBold().BoldFace(float64(c.cfg.FontSize))
	if err == nil {
		return face
	}
	slog.Warn("embedded bold font unavailable, using basicfont", "err", err)
	return basicfont.Face7x13
}

// wrapWords is the greedy wrap: words join the current line while it
// still fits, and a single word wider than maxWidth is emitted as its
// own line rather than truncated.
func wrapWords(words []string, face font.Face, maxWidth int) []string {
	var lines []string
	current := ""
	for _, word := range words {
		test := word
		if current != "" {
			test = current + " " + word
		}
		if font.MeasureString(face, test).Ceil() > maxWidth && current != "" {
			lines = append(lines, current)
			current = word
			continue
		}
		current = test
	}
	return append(lines, current)
}

func drawString(dst *image.NRGBA, s string, face font.Face, x, y int, col color.NRGBA) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
