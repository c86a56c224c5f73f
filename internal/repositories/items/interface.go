// Package items persists the saved-item collection as a single snapshot
// blob. The slice order is the persisted order; new items are prepended by
// the service layer, so position 0 is always the most recent save.
package items

import (
	"context"

	"qrforge/internal/models"
)

type Repository interface {
	LoadAll(ctx context.Context) ([]models.SavedItem, error)
	ReplaceAll(ctx context.Context, items []models.SavedItem) error
}
