package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"image/color"
	"strings"
	"time"

	"qrforge/internal/common"
	"qrforge/internal/encode"
	"qrforge/internal/models"
)

// CodeService is the generation controller. It owns the single ephemeral
// CurrentCode and orchestrates the encoder and the item store; it has no
// other state of its own.
type CodeService interface {
	// Generate encodes the payload and stages it as the current code,
	// silently replacing any previous one. Any failure leaves no current
	// code staged.
	Generate(ctx context.Context, text string, kind models.CodeKind, size int, colorHex string) (*models.CurrentCode, error)

	// Current returns the staged code, or nil.
	Current() *models.CurrentCode

	// SaveCurrent promotes the staged code to a SavedItem owned by the
	// session's user. The code stays staged, so it can be saved again or
	// downloaded afterward.
	SaveCurrent(ctx context.Context, session *models.Session, fileBaseName string, format models.OutputFormat) (*models.SavedItem, error)

	// DownloadCurrent writes the staged code to the download directory and
	// returns the file path.
	DownloadCurrent(ctx context.Context, fileBaseName string, format models.OutputFormat) (string, error)

	// DownloadItem writes a saved item to the download directory using the
	// item's own base name and format, and returns the file path.
	DownloadItem(ctx context.Context, item *models.SavedItem) (string, error)
}

type codeService struct {
	encoder     encode.Encoder
	items       ItemService
	downloadDir string
	current     *models.CurrentCode
	now         func() time.Time
}

func NewCodeService(encoder encode.Encoder, items ItemService, downloadDir string) CodeService {
	return &codeService{encoder: encoder, items: items, downloadDir: downloadDir, now: time.Now}
}

// white is the fixed background of every generated code, matching the
// preview rendering.
var white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

func (s *codeService) Generate(ctx context.Context, text string, kind models.CodeKind, size int, colorHex string) (*models.CurrentCode, error) {
	s.current = nil

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: please enter text to generate a code", common.ErrValidation)
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: size must be a positive number of pixels", common.ErrValidation)
	}
	foreground, err := encode.ParseHexColor(colorHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	opts := encode.Options{Size: size, Foreground: foreground, Background: white}

	var rendering *encode.Rendering
	switch kind {
	case models.KindQR:
		rendering, err = s.encoder.EncodeQR(text, opts)
	case models.KindBarcode:
		rendering, err = s.encoder.EncodeBarcode(text, opts)
	default:
		return nil, fmt.Errorf("%w: unknown code type %q", common.ErrValidation, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrEncoding, err)
	}

	s.current = &models.CurrentCode{
		Kind:        kind,
		Text:        text,
		Size:        size,
		Color:       encode.FormatHexColor(foreground),
		RasterForm:  rendering.RasterDataURL(),
		VectorForm:  rendering.SVG,
		GeneratedAt: s.now(),
	}
	return s.current, nil
}

func (s *codeService) Current() *models.CurrentCode {
	return s.current
}

func (s *codeService) SaveCurrent(ctx context.Context, session *models.Session, fileBaseName string, format models.OutputFormat) (*models.SavedItem, error) {
	if s.current == nil {
		return nil, common.ErrNoCurrentCode
	}

	base := strings.TrimSpace(fileBaseName)
	if base == "" {
		base = models.DeriveFileBaseName(s.current.Text)
	}

	item := models.SavedItem{
		Owner:        session.Username,
		Kind:         s.current.Kind,
		Text:         s.current.Text,
		Size:         s.current.Size,
		Color:        s.current.Color,
		VectorForm:   s.current.VectorForm,
		RasterForm:   s.current.RasterForm,
		FileBaseName: base,
		OutputFormat: format,
	}

	return s.items.Save(ctx, item)
}

func (s *codeService) DownloadCurrent(ctx context.Context, fileBaseName string, format models.OutputFormat) (string, error) {
	if s.current == nil {
		return "", common.ErrNoCurrentCode
	}

	base := strings.TrimSpace(fileBaseName)
	if base == "" {
		base = models.DeriveFileBaseName(s.current.Text)
	}

	return s.writeDownload(base, format, s.current.RasterForm, s.current.VectorForm)
}

func (s *codeService) DownloadItem(ctx context.Context, item *models.SavedItem) (string, error) {
	return s.writeDownload(item.FileBaseName, item.OutputFormat, item.RasterForm, item.VectorForm)
}

const rasterDataURLPrefix = "data:image/png;base64,"

func decodeRasterForm(raster string) ([]byte, error) {
	encoded, ok := strings.CutPrefix(raster, rasterDataURLPrefix)
	if !ok {
		return nil, fmt.Errorf("unexpected raster encoding")
	}
	return base64.StdEncoding.DecodeString(encoded)
}
