package picture

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MaxImportSize caps both dimensions of an imported image.
const MaxImportSize = 120

// FromImage samples the top-left corner of img into a picture no larger than
// MaxImportSize in either dimension. Alpha is ignored.
func FromImage(img image.Image) (*Picture, error) {
	b := img.Bounds()
	width := min(MaxImportSize, b.Dx())
	height := min(MaxImportSize, b.Dy())
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("import %dx%d image: %w", b.Dx(), b.Dy(), ErrInvalidDimension)
	}
	pixels := make([]Color, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixels = append(pixels, FromColor(img.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return &Picture{width: width, height: height, pixels: pixels}, nil
}

// Decode reads any registered image format and imports it with FromImage.
// It also returns the format name reported by image.Decode.
func Decode(r io.Reader) (*Picture, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	pic, err := FromImage(img)
	if err != nil {
		return nil, format, err
	}
	return pic, format, nil
}
