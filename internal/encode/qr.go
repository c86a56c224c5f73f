package encode

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// EncodeQR renders a QR code at medium error-correction level.
func (e *LibraryEncoder) EncodeQR(text string, opts Options) (*Rendering, error) {
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}
	q.ForegroundColor = opts.Foreground
	q.BackgroundColor = opts.Background

	png, err := q.PNG(opts.Size)
	if err != nil {
		return nil, fmt.Errorf("qr raster: %w", err)
	}

	return &Rendering{
		RasterPNG: png,
		SVG:       qrSVG(q.Bitmap(), opts),
	}, nil
}
