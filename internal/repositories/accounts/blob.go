package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"qrforge/internal/common"
	"qrforge/internal/models"
	"qrforge/internal/storage"
)

// BlobRepository implements Repository over a keyed blob store.
type BlobRepository struct {
	kv storage.KV
}

// NewBlobRepository returns a BlobRepository bound to the given store.
func NewBlobRepository(kv storage.KV) *BlobRepository {
	return &BlobRepository{kv: kv}
}

// LoadAll returns the stored accounts. An absent blob is an empty collection.
func (r *BlobRepository) LoadAll(ctx context.Context) ([]models.Account, error) {
	data, err := r.kv.Get(ctx, storage.KeyUsers)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	var accounts []models.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("failed to decode accounts: %w", err)
	}
	return accounts, nil
}

// ReplaceAll overwrites the stored collection with the given snapshot.
func (r *BlobRepository) ReplaceAll(ctx context.Context, accounts []models.Account) error {
	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to encode accounts: %w", err)
	}
	if err := r.kv.Set(ctx, storage.KeyUsers, data); err != nil {
		return fmt.Errorf("failed to store accounts: %w", err)
	}
	return nil
}
