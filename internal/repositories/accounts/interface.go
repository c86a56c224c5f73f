// Package accounts persists the registered account collection as a single
// snapshot blob.
package accounts

import (
	"context"

	"qrforge/internal/models"
)

// Repository loads and replaces the full account collection. Mutating
// operations at the service level always rewrite the whole snapshot.
type Repository interface {
	LoadAll(ctx context.Context) ([]models.Account, error)
	ReplaceAll(ctx context.Context, accounts []models.Account) error
}
