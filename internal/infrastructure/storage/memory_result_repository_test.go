package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"shape-detector/internal/domain/entity"
	"shape-detector/internal/domain/port"
)

func TestMemoryResultRepository_SaveAndGet(t *testing.T) {
	repo := NewMemoryResultRepository(10)
	ctx := context.Background()

	in := &entity.DetectionResult{ID: "a", ImageWidth: 640, ImageHeight: 480}
	require.NoError(t, repo.Save(ctx, in))

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, in, got)
}

func TestMemoryResultRepository_NotFound(t *testing.T) {
	repo := NewMemoryResultRepository(10)

	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, port.ErrResultNotFound)
}

func TestMemoryResultRepository_EvictsOldest(t *testing.T) {
	repo := NewMemoryResultRepository(2)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Save(ctx, &entity.DetectionResult{ID: id}))
	}

	_, err := repo.Get(ctx, "a")
	require.ErrorIs(t, err, port.ErrResultNotFound)

	list, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "c", list[0].ID)
	require.Equal(t, "b", list[1].ID)
}

func TestMemoryResultRepository_ListLimit(t *testing.T) {
	repo := NewMemoryResultRepository(0)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Save(ctx, &entity.DetectionResult{ID: id}))
	}

	list, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "c", list[0].ID)
}

func TestMemoryResultRepository_ResaveKeepsSingleEntry(t *testing.T) {
	repo := NewMemoryResultRepository(5)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.DetectionResult{ID: "a"}))
	require.NoError(t, repo.Save(ctx, &entity.DetectionResult{ID: "a", ImageWidth: 1}))

	list, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, 1, list[0].ImageWidth)
}
