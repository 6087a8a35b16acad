// Package export encodes pictures for download: PNG at one pixel per cell,
// a quantized GIF, or a printable PDF grid.
package export

import (
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/soniakeys/quant/median"
	xdraw "golang.org/x/image/draw"

	"github.com/example/pixeleditor/internal/picture"
	"github.com/example/pixeleditor/internal/render"
)

// DefaultName is the file name offered when saving from the editors.
const DefaultName = "pixelart.png"

type Format string

const (
	FormatPNG Format = "png"
	FormatGIF Format = "gif"
	FormatPDF Format = "pdf"
)

// Options tunes the optional parts of an export.
type Options struct {
	// Scale magnifies PNG and GIF output; values below 1 mean 1:1.
	Scale int
	// Colors caps the GIF palette size (2..256). Zero means 256.
	Colors int
	// CellMM is the printed size of one cell in millimetres. Zero fits the
	// picture to the page width.
	CellMM float64
}

// FormatFromPath guesses the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch Format(ext) {
	case FormatPNG, FormatGIF, FormatPDF:
		return Format(ext), nil
	case "":
		return "", fmt.Errorf("cannot infer export format from %q", path)
	}
	return "", fmt.Errorf("unsupported export format %q", ext)
}

// Encode writes pic to w in format f.
func Encode(w io.Writer, pic *picture.Picture, f Format, opts Options) error {
	switch f {
	case FormatPNG:
		return PNG(w, pic, opts.Scale)
	case FormatGIF:
		return GIF(w, pic, opts.Scale, opts.Colors)
	case FormatPDF:
		return PDF(w, pic, opts.CellMM)
	}
	return fmt.Errorf("unsupported export format %q", f)
}

// Image renders pic one pixel per cell, magnified by scale with
// nearest-neighbour sampling when scale > 1.
func Image(pic *picture.Picture, scale int) *image.RGBA {
	img := render.Snapshot(pic)
	if scale <= 1 {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx()*scale, img.Bounds().Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

func PNG(w io.Writer, pic *picture.Picture, scale int) error {
	if err := png.Encode(w, Image(pic, scale)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// GIF quantizes the picture with median cut before encoding.
func GIF(w io.Writer, pic *picture.Picture, scale, colors int) error {
	if colors <= 0 || colors > 256 {
		colors = 256
	}
	if colors < 2 {
		colors = 2
	}
	opts := &gif.Options{NumColors: colors, Quantizer: median.Quantizer(colors)}
	if err := gif.Encode(w, Image(pic, scale), opts); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}

const (
	pageMarginMM = 10.0
	a4WidthMM    = 210.0
)

// PDF draws each cell as a filled square on an A4 page.
func PDF(w io.Writer, pic *picture.Picture, cellMM float64) error {
	if cellMM <= 0 {
		cellMM = (a4WidthMM - 2*pageMarginMM) / float64(pic.Width())
	}
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("pixelart", false)
	doc.SetMargins(pageMarginMM, pageMarginMM, pageMarginMM)
	doc.AddPage()
	for y := 0; y < pic.Height(); y++ {
		for x := 0; x < pic.Width(); x++ {
			c := pic.Pixel(x, y)
			doc.SetFillColor(int(c.R), int(c.G), int(c.B))
			doc.Rect(pageMarginMM+float64(x)*cellMM, pageMarginMM+float64(y)*cellMM, cellMM, cellMM, "F")
		}
	}
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("encode pdf: %w", err)
	}
	return nil
}
