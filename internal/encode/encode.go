// Package encode renders text payloads into QR and CODE128 symbologies,
// producing both a raster (PNG) and a vector (SVG) form of every code.
package encode

import (
	"encoding/base64"
	"image/color"
)

// Options control how a code is rendered.
type Options struct {
	// Size is the pixel dimension of the raster form. QR codes are rendered
	// Size x Size; barcodes Size wide and Size/3 tall.
	Size       int
	Foreground color.Color
	Background color.Color
}

// Rendering is the result of encoding one payload.
type Rendering struct {
	RasterPNG []byte
	SVG       string
}

// RasterDataURL returns the raster form as a portable embedded-image
// encoding (a base64 PNG data URL).
func (r *Rendering) RasterDataURL() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(r.RasterPNG)
}

// Encoder turns text plus options into raster and vector representations.
type Encoder interface {
	EncodeQR(text string, opts Options) (*Rendering, error)
	// EncodeBarcode renders a CODE128 barcode. It fails when the text is not
	// representable in the symbology.
	EncodeBarcode(text string, opts Options) (*Rendering, error)
}

// LibraryEncoder is the production Encoder backed by third-party symbology
// libraries.
type LibraryEncoder struct{}

func NewLibraryEncoder() *LibraryEncoder {
	return &LibraryEncoder{}
}
