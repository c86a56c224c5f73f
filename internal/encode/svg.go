package encode

import (
	"bytes"
	"fmt"
	"image"

	svg "github.com/ajstarks/svgo"
)

// qrSVG draws one unit rect per dark module over a background rect. The
// viewBox is in module units so the result scales without artifacts.
func qrSVG(modules [][]bool, opts Options) string {
	n := len(modules)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(opts.Size, opts.Size,
		fmt.Sprintf(`viewBox="0 0 %d %d"`, n, n),
		`shape-rendering="crispEdges"`)
	canvas.Rect(0, 0, n, n, "fill:"+FormatHexColor(opts.Background))

	fg := "fill:" + FormatHexColor(opts.Foreground)
	for y, row := range modules {
		for x, dark := range row {
			if dark {
				canvas.Rect(x, y, 1, 1, fg)
			}
		}
	}
	canvas.End()
	return buf.String()
}

// barcodeSVG draws one rect per run of dark modules in the unscaled code.
// The viewBox is module-wide and one unit tall; the outer width/height carry
// the raster proportions.
func barcodeSVG(bc image.Image, width, height int, opts Options) string {
	bounds := bc.Bounds()
	modules := bounds.Dx()

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height,
		fmt.Sprintf(`viewBox="0 0 %d 1"`, modules),
		`preserveAspectRatio="none"`,
		`shape-rendering="crispEdges"`)
	canvas.Rect(0, 0, modules, 1, "fill:"+FormatHexColor(opts.Background))

	fg := "fill:" + FormatHexColor(opts.Foreground)
	y := bounds.Min.Y
	for x := bounds.Min.X; x < bounds.Max.X; {
		if !isDark(bc, x, y) {
			x++
			continue
		}
		run := x
		for run < bounds.Max.X && isDark(bc, run, y) {
			run++
		}
		canvas.Rect(x-bounds.Min.X, 0, run-x, 1, fg)
		x = run
	}
	canvas.End()
	return buf.String()
}
