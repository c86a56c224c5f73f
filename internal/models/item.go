package models

import (
	"fmt"
	"strings"
	"time"

	"qrforge/internal/common"
)

// CodeKind classifies a generated code's symbology.
type CodeKind string

const (
	KindQR      CodeKind = "qr"
	KindBarcode CodeKind = "barcode"
)

// ParseKind maps user input onto a CodeKind.
func ParseKind(s string) (CodeKind, error) {
	switch CodeKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindQR:
		return KindQR, nil
	case KindBarcode:
		return KindBarcode, nil
	}
	return "", fmt.Errorf("%w: unknown code type %q", common.ErrValidation, s)
}

// OutputFormat selects the file representation at save/download time.
type OutputFormat string

const (
	FormatPNG  OutputFormat = "png"
	FormatJPEG OutputFormat = "jpeg"
	FormatSVG  OutputFormat = "svg"
)

// ParseFormat maps user input onto an OutputFormat. "jpg" is accepted as an
// alias for "jpeg".
func ParseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png", "":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "svg":
		return FormatSVG, nil
	}
	return "", fmt.Errorf("%w: unknown output format %q", common.ErrValidation, s)
}

// SavedItem is a persisted, owner-tagged generated code. Items are immutable
// after creation except for the Owner field, which follows account renames.
type SavedItem struct {
	ID           string       `json:"id"`
	Owner        string       `json:"owner"`
	Kind         CodeKind     `json:"kind"`
	Text         string       `json:"text"`
	Size         int          `json:"size"`
	Color        string       `json:"color"`
	VectorForm   string       `json:"vector_form"`
	RasterForm   string       `json:"raster_form"`
	FileBaseName string       `json:"file_base_name"`
	OutputFormat OutputFormat `json:"output_format"`
	CreatedAt    time.Time    `json:"created_at"`
}
