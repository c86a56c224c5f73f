package items

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

func NewBlobRepository(kv storage.KV) *BlobRepository {
	return &BlobRepository{kv: kv}
}

func (r *BlobRepository) LoadAll(ctx context.Context) ([]models.SavedItem, error) {
	data, err := r.kv.Get(ctx, storage.KeySavedItems)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load saved items: %w", err)
	}

	var items []models.SavedItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode saved items: %w", err)
	}
	return items, nil
}

func (r *BlobRepository) ReplaceAll(ctx context.Context, items []models.SavedItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode saved items: %w", err)
	}
	if err := r.kv.Set(ctx, storage.KeySavedItems, data); err != nil {
		return fmt.Errorf("failed to store saved items: %w", err)
	}
	return nil
}
