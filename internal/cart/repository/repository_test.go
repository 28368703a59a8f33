package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kemasindo/storefront/internal/cart/domain"
)

func newTestRepository(t *testing.T) *GormCartRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	repo := NewGormCartRepository(db)
	require.NoError(t, repo.AutoMigrate())
	return repo
}

func TestFindItem(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	t.Run("missing pair returns not found", func(t *testing.T) {
		_, err := repo.FindItem(ctx, 1, 7)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("returns the stored row", func(t *testing.T) {
		inserted, err := repo.Insert(ctx, 1, 7, 3)
		require.NoError(t, err)

		found, err := repo.FindItem(ctx, 1, 7)
		require.NoError(t, err)
		assert.Equal(t, inserted.ID, found.ID)
		assert.Equal(t, 3, found.Quantity)
	})
}

func TestInsert(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	item, err := repo.Insert(ctx, 1, 7, 1)
	require.NoError(t, err)
	assert.NotZero(t, item.ID)

	t.Run("unique index rejects a second row for the pair", func(t *testing.T) {
		_, err := repo.Insert(ctx, 1, 7, 1)
		assert.ErrorIs(t, err, domain.ErrDuplicateItem)
	})

	t.Run("other pairs are unaffected", func(t *testing.T) {
		_, err := repo.Insert(ctx, 1, 8, 1)
		assert.NoError(t, err)
		_, err = repo.Insert(ctx, 2, 7, 1)
		assert.NoError(t, err)
	})
}

func TestUpdateQuantity(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	item, err := repo.Insert(ctx, 1, 7, 1)
	require.NoError(t, err)

	t.Run("sets the quantity on the row", func(t *testing.T) {
		updated, err := repo.UpdateQuantity(ctx, item.ID, 5)
		require.NoError(t, err)
		assert.Equal(t, 5, updated.Quantity)
	})

	t.Run("unknown row returns not found", func(t *testing.T) {
		_, err := repo.UpdateQuantity(ctx, 9999, 2)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := repo.UpdateQuantity(ctx, item.ID, 0)
		assert.Error(t, err)
	})
}

func TestListByUser(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, 1, 7, 1)
	require.NoError(t, err)
	_, err = repo.Insert(ctx, 1, 8, 2)
	require.NoError(t, err)
	_, err = repo.Insert(ctx, 2, 7, 1)
	require.NoError(t, err)

	items, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, uint(1), item.UserID)
	}

	empty, err := repo.ListByUser(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRemove(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	item, err := repo.Insert(ctx, 1, 7, 1)
	require.NoError(t, err)

	t.Run("another user cannot remove the row", func(t *testing.T) {
		err := repo.Remove(ctx, 2, item.ID)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)

		_, err = repo.FindItem(ctx, 1, 7)
		assert.NoError(t, err)
	})

	t.Run("owner removes the row", func(t *testing.T) {
		require.NoError(t, repo.Remove(ctx, 1, item.ID))

		_, err := repo.FindItem(ctx, 1, 7)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("removing twice returns not found", func(t *testing.T) {
		err := repo.Remove(ctx, 1, item.ID)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})
}
