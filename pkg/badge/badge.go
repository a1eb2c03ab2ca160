// Package badge renders system tray icons carrying a due-count badge.
//
// The badge is a rounded rectangle drawn across the bottom band of the base
// application icon, with the formatted count centered in it using the Go bold
// font. Colors come from the host theme so the badge matches light and dark
// modes. An empty badge text yields the base icon unchanged.
package badge

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Size is the icon size used when no base icon is supplied.
const Size = 32

// DefaultFontSize is the badge text height in pixels.
const DefaultFontSize = 16

// cornerRadius of the badge rectangle.
const cornerRadius = 5

// Fallback colors when the host theme provides none.
var (
	defaultText = color.RGBA{66, 133, 244, 255}  // learn blue
	defaultFill = color.RGBA{245, 245, 245, 255} // elevated canvas
)

// Default base icon: a small stack of cards.
var (
	cardBack  = color.RGBA{63, 131, 197, 255}
	cardFront = color.RGBA{250, 250, 250, 255}
)

// Options controls badge appearance.
type Options struct {
	Text     color.RGBA // badge text color
	Fill     color.RGBA // badge background color
	FontSize int        // badge text height in pixels
}

// Format converts a due count to badge text.
// Counts below 1000 are shown verbatim, counts up to 9999 are collapsed to
// one decimal digit plus a "k" suffix (1234 -> "1.2k"), and anything larger
// is shown as infinity.
func Format(n int) string {
	if n < 1000 {
		return strconv.Itoa(n)
	}
	if n < 10000 {
		s := strconv.Itoa(n)
		return s[:1] + "." + s[1:2] + "k"
	}
	return "∞"
}

// Render draws text as a badge over the base icon and returns the result as
// PNG bytes. A nil base falls back to the built-in card-stack icon, and an
// empty text encodes the base icon without a badge.
func Render(base image.Image, text string, opts Options) ([]byte, error) {
	if base == nil {
		base = DefaultIcon(Size)
	}
	b := base.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), base, b.Min, draw.Src)

	if text != "" {
		if opts.Text.A == 0 {
			opts.Text = defaultText
		}
		if opts.Fill.A == 0 {
			opts.Fill = defaultFill
		}
		fs := opts.FontSize
		if fs <= 0 {
			fs = DefaultFontSize
		}
		if fs > b.Dy() {
			fs = b.Dy()
		}

		band := image.Rect(0, b.Dy()-fs, b.Dx(), b.Dy())
		fillRoundedRect(img, band, cornerRadius, opts.Fill)
		if err := drawBoldText(img, text, band, fs, opts.Text); err != nil {
			return nil, fmt.Errorf("draw badge text: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// DefaultIcon generates the built-in card-stack icon at the given size.
func DefaultIcon(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	unit := size / 16
	if unit < 1 {
		unit = 1
	}
	back := image.Rect(3*unit, 1*unit, 15*unit, 11*unit)
	front := image.Rect(1*unit, 3*unit, 13*unit, 13*unit)
	fillRoundedRect(img, back, 2*unit, cardBack)
	fillRoundedRect(img, front, 2*unit, cardFront)
	return img
}

// fillRoundedRect fills a rectangle with rounded corners.
func fillRoundedRect(img *image.RGBA, r image.Rectangle, radius int, fill color.RGBA) {
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			if inRoundedRect(px, py, r, radius) {
				img.Set(px, py, fill)
			}
		}
	}
}

// inRoundedRect reports whether the pixel center lies inside the rounded
// rectangle. Points are clamped to the inner rectangle spanned by the corner
// circle centers, so only the corner regions are subject to the radius test.
func inRoundedRect(px, py int, r image.Rectangle, radius int) bool {
	x := float64(px) + 0.5
	y := float64(py) + 0.5
	rad := float64(radius)

	cx := x
	cy := y
	if left := float64(r.Min.X) + rad; x < left {
		cx = left
	}
	if right := float64(r.Max.X) - rad; x > right {
		cx = right
	}
	if top := float64(r.Min.Y) + rad; y < top {
		cy = top
	}
	if bottom := float64(r.Max.Y) - rad; y > bottom {
		cy = bottom
	}

	dx := x - cx
	dy := y - cy
	return dx*dx+dy*dy <= rad*rad
}

var (
	fontOnce sync.Once
	boldFont *opentype.Font
	fontErr  error
)

func loadBoldFont() (*opentype.Font, error) {
	fontOnce.Do(func() {
		boldFont, fontErr = opentype.Parse(gobold.TTF)
	})
	return boldFont, fontErr
}

// drawBoldText renders bold text centered in the band rectangle.
func drawBoldText(img *image.RGBA, text string, band image.Rectangle, fontSize int, fg color.RGBA) error {
	f, err := loadBoldFont()
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size: float64(fontSize),
		DPI:  72,
	})
	if err != nil {
		return fmt.Errorf("create font face: %w", err)
	}
	defer face.Close() //nolint:errcheck // Close error is not critical for rendering

	bounds, advance := font.BoundString(face, text)
	textWidth := advance.Ceil()

	centerX := (band.Min.X + band.Max.X) / 2
	centerY := (band.Min.Y + band.Max.Y) / 2

	// The visual center of the text sits at (bounds.Max.Y+bounds.Min.Y)/2
	// above the baseline, so shift the baseline to center it in the band.
	visualCenter := (bounds.Max.Y + bounds.Min.Y) / 2
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(centerX - textWidth/2),
			Y: fixed.I(centerY) - visualCenter,
		},
	}
	drawer.DrawString(text)
	return nil
}
