package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"qrforge/internal/models"
	"qrforge/internal/repositories/items"
)

// ItemService is the saved-item store: a flat collection partitioned by
// owner, newest first.
type ItemService interface {
	// ListByOwner returns the owner's items in reverse-chronological
	// insertion order (most recent save first).
	ListByOwner(ctx context.Context, username string) ([]models.SavedItem, error)

	// Search filters ListByOwner by a case-insensitive substring match
	// against the file base name, the encoded text, or the kind. An empty
	// query returns the full list.
	Search(ctx context.Context, username, query string) ([]models.SavedItem, error)

	// Save assigns a fresh id, prepends the item, and persists the whole
	// collection. CreatedAt is stamped when unset.
	Save(ctx context.Context, item models.SavedItem) (*models.SavedItem, error)

	// Delete removes the item with the given id regardless of owner and
	// reports whether a removal occurred. Unknown ids leave the collection
	// untouched.
	Delete(ctx context.Context, id string) (bool, error)

	// CascadeRename rewrites ownership after an account rename, persisting
	// once for the whole batch.
	CascadeRename(ctx context.Context, oldOwner, newOwner string) error
}

type itemService struct {
	repo items.Repository
	now  func() time.Time

	// lastID keeps wall-clock derived ids strictly increasing within the
	// process, so two saves in the same millisecond still get distinct ids.
	lastID int64
}

func NewItemService(repo items.Repository) ItemService {
	return &itemService{repo: repo, now: time.Now}
}

func (s *itemService) ListByOwner(ctx context.Context, username string) ([]models.SavedItem, error) {
	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	var result []models.SavedItem
	for _, item := range all {
		if item.Owner == username {
			result = append(result, item)
		}
	}
	return result, nil
}

func (s *itemService) Search(ctx context.Context, username, query string) ([]models.SavedItem, error) {
	owned, err := s.ListByOwner(ctx, username)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return owned, nil
	}

	var result []models.SavedItem
	for _, item := range owned {
		if strings.Contains(strings.ToLower(item.FileBaseName), q) ||
			strings.Contains(strings.ToLower(item.Text), q) ||
			strings.Contains(strings.ToLower(string(item.Kind)), q) {
			result = append(result, item)
		}
	}
	return result, nil
}

func (s *itemService) Save(ctx context.Context, item models.SavedItem) (*models.SavedItem, error) {
	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	item.ID = strconv.FormatInt(id, 10)
	if item.CreatedAt.IsZero() {
		item.CreatedAt = s.now()
	}

	next := make([]models.SavedItem, 0, len(all)+1)
	next = append(next, item)
	next = append(next, all...)

	if err := s.repo.ReplaceAll(ctx, next); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *itemService) Delete(ctx context.Context, id string) (bool, error) {
	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return false, err
	}

	next := all[:0]
	for _, item := range all {
		if item.ID != id {
			next = append(next, item)
		}
	}
	if len(next) == len(all) {
		return false, nil
	}

	if err := s.repo.ReplaceAll(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

func (s *itemService) CascadeRename(ctx context.Context, oldOwner, newOwner string) error {
	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	changed := false
	for i := range all {
		if all[i].Owner == oldOwner {
			all[i].Owner = newOwner
			changed = true
		}
	}
	if !changed {
		return nil
	}

	return s.repo.ReplaceAll(ctx, all)
}
