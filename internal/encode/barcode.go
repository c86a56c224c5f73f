package encode

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

// EncodeBarcode renders a CODE128 barcode Size wide and Size/3 tall,
// mirroring the proportions the preview uses.
func (e *LibraryEncoder) EncodeBarcode(text string, opts Options) (*Rendering, error) {
	bc, err := code128.Encode(text)
	if err != nil {
		return nil, fmt.Errorf("code128 encode: %w", err)
	}

	width := opts.Size
	if modules := bc.Bounds().Dx(); width < modules {
		width = modules
	}
	height := opts.Size / 3
	if height < 1 {
		height = 1
	}

	scaled, err := barcode.Scale(bc, width, height)
	if err != nil {
		return nil, fmt.Errorf("code128 scale: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, recolor(scaled, opts)); err != nil {
		return nil, fmt.Errorf("code128 raster: %w", err)
	}

	return &Rendering{
		RasterPNG: buf.Bytes(),
		SVG:       barcodeSVG(bc, width, height, opts),
	}, nil
}

// recolor maps the library's black-and-white output onto the requested
// foreground/background colors.
func recolor(src image.Image, opts Options) image.Image {
	bounds := src.Bounds()
	out := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if isDark(src, x, y) {
				out.Set(x, y, opts.Foreground)
			} else {
				out.Set(x, y, opts.Background)
			}
		}
	}
	return out
}

func isDark(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r < 0x8000 && g < 0x8000 && b < 0x8000
}
