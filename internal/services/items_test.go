package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrforge/internal/models"
	"qrforge/internal/repositories/items"
	"qrforge/internal/storage"
)

func newItems(t *testing.T) *itemService {
	t.Helper()
	return &itemService{
		repo: items.NewBlobRepository(storage.NewMemoryKV()),
		now:  time.Now,
	}
}

func qrItem(owner, text, base string) models.SavedItem {
	return models.SavedItem{
		Owner:        owner,
		Kind:         models.KindQR,
		Text:         text,
		Size:         200,
		Color:        "#000000",
		FileBaseName: base,
		OutputFormat: models.FormatPNG,
	}
}

func TestSave_AssignsIDAndPrepends(t *testing.T) {
	svc := newItems(t)
	ctx := context.Background()

	first, err := svc.Save(ctx, qrItem("alice", "one", "first"))
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := svc.Save(ctx, qrItem("alice", "two", "second"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	list, err := svc.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].FileBaseName, "most recent save comes first")
	assert.Equal(t, "first", list[1].FileBaseName)
}

func TestSave_IDsMonotonicWithinSameMillisecond(t *testing.T) {
	svc := newItems(t)
	fixed := time.Date(2026, 8, 29, 16, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	ctx := context.Background()

	a, err := svc.Save(ctx, qrItem("alice", "a", "a"))
	require.NoError(t, err)
	b, err := svc.Save(ctx, qrItem("alice", "b", "b"))
	require.NoError(t, err)
	c, err := svc.Save(ctx, qrItem("alice", "c", "c"))
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, b.ID, c.ID)
	assert.Less(t, a.ID, b.ID)
	assert.Less(t, b.ID, c.ID)
}

func TestListByOwner_FiltersOtherUsers(t *testing.T) {
	svc := newItems(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, qrItem("alice", "hers", "hers"))
	require.NoError(t, err)
	_, err = svc.Save(ctx, qrItem("bob", "his", "his"))
	require.NoError(t, err)

	list, err := svc.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "alice", list[0].Owner)

	empty, err := svc.ListByOwner(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSearch(t *testing.T) {
	svc := newItems(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, qrItem("alice", "https://example.org", "homepage"))
	require.NoError(t, err)
	barcode := qrItem("alice", "123456789012", "ean-like")
	barcode.Kind = models.KindBarcode
	_, err = svc.Save(ctx, barcode)
	require.NoError(t, err)
	_, err = svc.Save(ctx, qrItem("bob", "https://example.org", "homepage"))
	require.NoError(t, err)

	all, err := svc.ListByOwner(ctx, "alice")
	require.NoError(t, err)

	// empty query equals the full listing
	got, err := svc.Search(ctx, "alice", "")
	require.NoError(t, err)
	assert.Equal(t, all, got)

	// matches file base name, case-insensitively
	got, err = svc.Search(ctx, "alice", "HOME")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "homepage", got[0].FileBaseName)

	// matches encoded text
	got, err = svc.Search(ctx, "alice", "example.org")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.KindQR, got[0].Kind)

	// matches the kind
	got, err = svc.Search(ctx, "alice", "barcode")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.KindBarcode, got[0].Kind)

	// no match is an empty result, not an error
	got, err = svc.Search(ctx, "alice", "zzz")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDelete(t *testing.T) {
	svc := newItems(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, qrItem("alice", "one", "one"))
	require.NoError(t, err)

	removed, err := svc.Delete(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	list, err := svc.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, list)

	// unknown id: no removal, collection unchanged
	removed, err = svc.Delete(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestCascadeRename(t *testing.T) {
	svc := newItems(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, qrItem("alice", "one", "one"))
	require.NoError(t, err)
	_, err = svc.Save(ctx, qrItem("alice", "two", "two"))
	require.NoError(t, err)
	_, err = svc.Save(ctx, qrItem("bob", "his", "his"))
	require.NoError(t, err)

	before, err := svc.ListByOwner(ctx, "alice")
	require.NoError(t, err)

	require.NoError(t, svc.CascadeRename(ctx, "alice", "alicia"))

	after, err := svc.ListByOwner(ctx, "alicia")
	require.NoError(t, err)
	require.Len(t, after, len(before))
	for i := range after {
		assert.Equal(t, "alicia", after[i].Owner)
		assert.Equal(t, before[i].ID, after[i].ID)
	}

	old, err := svc.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, old)

	bobs, err := svc.ListByOwner(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, bobs, 1)
}
