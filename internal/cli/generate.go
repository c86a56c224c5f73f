package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"qrforge/internal/models"
	"qrforge/internal/notify"
)

const defaultCodeSize = 200

// Generate collects the code parameters and stages a new current code. The
// previous current code, if any, is replaced.
func (a *App) Generate(ctx context.Context) error {
	if err := a.requireLogin("Generation Failed"); err != nil {
		return err
	}

	kindText, err := getSimpleText(a.reader, "Code type (qr/barcode, default qr)", os.Stdout)
	if err != nil {
		return err
	}
	if kindText == "" {
		kindText = string(models.KindQR)
	}
	kind, err := models.ParseKind(kindText)
	if err != nil {
		a.notifyErr("Generation Failed", err)
		return err
	}

	text, err := getSimpleText(a.reader, "Text to encode", os.Stdout)
	if err != nil {
		return err
	}

	sizeText, err := getSimpleText(a.reader, fmt.Sprintf("Size in pixels (default %d)", defaultCodeSize), os.Stdout)
	if err != nil {
		return err
	}
	size := defaultCodeSize
	if sizeText != "" {
		size, err = strconv.Atoi(sizeText)
		if err != nil {
			err = errors.New("size must be a whole number of pixels")
			a.notifyErr("Generation Failed", err)
			return err
		}
	}

	colorHex, err := getSimpleText(a.reader, "Color (hex, default #000000)", os.Stdout)
	if err != nil {
		return err
	}
	if colorHex == "" {
		colorHex = "#000000"
	}

	code, err := a.codes.Generate(ctx, text, kind, size, colorHex)
	if err != nil {
		a.notifyErr("Generation Failed", err)
		return err
	}

	a.notifier.Notify(notify.Success("Code Generated",
		fmt.Sprintf("%s code for %q is ready to save or download.", code.Kind, code.Text)))
	return nil
}

// Save promotes the current code to the saved list under the logged-in user.
func (a *App) Save(ctx context.Context) error {
	if a.session == nil {
		err := errors.New("you must be logged in to save codes")
		a.notifyErr("Save Failed", err)
		return err
	}

	base, err := getSimpleText(a.reader, "File name (empty derives one from the text)", os.Stdout)
	if err != nil {
		return err
	}
	formatText, err := getSimpleText(a.reader, "Output format (png/jpeg/svg, default png)", os.Stdout)
	if err != nil {
		return err
	}
	format, err := models.ParseFormat(formatText)
	if err != nil {
		a.notifyErr("Save Failed", err)
		return err
	}

	item, err := a.codes.SaveCurrent(ctx, a.session, base, format)
	if err != nil {
		a.notifyErr("Save Failed", err)
		return err
	}

	a.notifier.Notify(notify.Success("Code Saved", fmt.Sprintf("Saved as %s (id %s).", item.FileBaseName, item.ID)))
	return nil
}

// Download writes the current code to the download directory.
func (a *App) Download(ctx context.Context) error {
	if err := a.requireLogin("Download Failed"); err != nil {
		return err
	}

	base, err := getSimpleText(a.reader, "File name (empty derives one from the text)", os.Stdout)
	if err != nil {
		return err
	}
	formatText, err := getSimpleText(a.reader, "Output format (png/jpeg/svg, default png)", os.Stdout)
	if err != nil {
		return err
	}
	format, err := models.ParseFormat(formatText)
	if err != nil {
		a.notifyErr("Download Failed", err)
		return err
	}

	path, err := a.codes.DownloadCurrent(ctx, base, format)
	if err != nil {
		a.notifyErr("Download Failed", err)
		return err
	}

	a.notifier.Notify(notify.Success("Download Complete", fmt.Sprintf("File saved to %s.", path)))
	return nil
}
