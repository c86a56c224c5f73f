package services

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"qrforge/internal/common"
	"qrforge/internal/filex"
	"qrforge/internal/models"
)

const jpegQuality = 90

// writeDownload materializes one output file from the stored forms: vector
// text for SVG, the stored PNG bytes as-is for PNG, and a re-encode over a
// white background for JPEG.
func (s *codeService) writeDownload(base string, format models.OutputFormat, raster, vector string) (string, error) {
	data, err := renderOutput(format, raster, vector)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDownload, err)
	}

	dir, err := filex.EnsureDir(s.downloadDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDownload, err)
	}

	path := filepath.Join(dir, base+"."+string(format))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDownload, err)
	}
	return path, nil
}

func renderOutput(format models.OutputFormat, raster, vector string) ([]byte, error) {
	switch format {
	case models.FormatSVG:
		if vector == "" {
			return nil, fmt.Errorf("no vector form available")
		}
		return []byte(vector), nil

	case models.FormatPNG:
		return decodeRasterForm(raster)

	case models.FormatJPEG:
		pngBytes, err := decodeRasterForm(raster)
		if err != nil {
			return nil, err
		}
		img, err := png.Decode(bytes.NewReader(pngBytes))
		if err != nil {
			return nil, err
		}
		// JPEG has no alpha; flatten onto white first.
		flat := image.NewRGBA(img.Bounds())
		draw.Draw(flat, flat.Bounds(), image.White, image.Point{}, draw.Src)
		draw.Draw(flat, flat.Bounds(), img, img.Bounds().Min, draw.Over)

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	return nil, fmt.Errorf("unknown output format %q", format)
}
