package cli

import (
	"context"
	"fmt"

	"qrforge/internal/models"
)

// Profile prints the logged-in user's account statistics.
func (a *App) Profile(ctx context.Context) error {
	if err := a.requireLogin("Profile Failed"); err != nil {
		return err
	}

	list, err := a.items.ListByOwner(ctx, a.session.Username)
	if err != nil {
		a.notifyErr("Profile Failed", err)
		return err
	}

	var qrCount, barcodeCount int
	for _, item := range list {
		switch item.Kind {
		case models.KindQR:
			qrCount++
		case models.KindBarcode:
			barcodeCount++
		}
	}

	printlnFn("Username:     ", a.session.Username)
	printlnFn("Member since: ", a.session.CreatedAt.Format("2006-01-02"))
	printlnFn("Saved codes:  ", len(list))
	printlnFn(fmt.Sprintf("By type:       %d qr, %d barcode", qrCount, barcodeCount))
	return nil
}
