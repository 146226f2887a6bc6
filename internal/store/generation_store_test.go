package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slidegen/internal/db"
	"slidegen/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	d, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestGenerationStoreRecord(t *testing.T) {
	store := NewGenerationStore(openTestDB(t))
	ctx := context.Background()

	gen, err := store.Record(ctx, &domain.Generation{
		Title:        "Q1 Results",
		BulletPoints: []string{"Revenue up 12%", "New markets opened"},
		Model:        "gemini-2.0-flash",
		MimeType:     "image/jpeg",
		StorageKey:   "upload_1.jpg",
		Status:       "success",
	})
	require.NoError(t, err)
	assert.NotZero(t, gen.ID)
	assert.Equal(t, "Q1 Results", gen.Title)
	assert.Equal(t, []string{"Revenue up 12%", "New markets opened"}, gen.BulletPoints)
	assert.Equal(t, "success", gen.Status)
	assert.False(t, gen.CreatedAt.IsZero())
}

func TestGenerationStoreRecordError(t *testing.T) {
	store := NewGenerationStore(openTestDB(t))
	ctx := context.Background()

	gen, err := store.Record(ctx, &domain.Generation{
		Model:    "gemini-2.0-flash",
		MimeType: "image/png",
		Status:   "error",
		Error:    "gemini returned status 500",
	})
	require.NoError(t, err)
	assert.Empty(t, gen.Title)
	assert.Empty(t, gen.BulletPoints)
	assert.Equal(t, "error", gen.Status)
	assert.Contains(t, gen.Error, "500")
}

func TestGenerationStoreGetByIDMissing(t *testing.T) {
	store := NewGenerationStore(openTestDB(t))

	gen, err := store.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, gen)
}

func TestGenerationStoreListRecent(t *testing.T) {
	store := NewGenerationStore(openTestDB(t))
	ctx := context.Background()

	for _, title := range []string{"First", "Second", "Third"} {
		_, err := store.Record(ctx, &domain.Generation{
			Title:        title,
			BulletPoints: []string{"a"},
			Model:        "test-model",
			Status:       "success",
		})
		require.NoError(t, err)
	}

	gens, err := store.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, gens, 2)
	assert.Equal(t, "Third", gens[0].Title)
	assert.Equal(t, "Second", gens[1].Title)
}

func TestGenerationStoreDelete(t *testing.T) {
	store := NewGenerationStore(openTestDB(t))
	ctx := context.Background()

	gen, err := store.Record(ctx, &domain.Generation{
		Title:        "Temp",
		BulletPoints: []string{"a"},
		Model:        "test-model",
		Status:       "success",
	})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, gen.ID))

	missing, err := store.GetByID(ctx, gen.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.Error(t, store.Delete(ctx, gen.ID))
}
