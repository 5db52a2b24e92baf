package repository_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/duamind/pkg/repository"
	"github.com/m-mizutani/gt"
)

func TestFileStorage(t *testing.T) {
	ctx := context.Background()
	storage, err := repository.NewFile(t.TempDir())
	gt.NoError(t, err)

	_, ok, err := storage.Get(ctx, "duaMindPrayerBook")
	gt.NoError(t, err)
	gt.False(t, ok)

	gt.NoError(t, storage.Set(ctx, "duaMindPrayerBook", `[{"id":1}]`))

	value, ok, err := storage.Get(ctx, "duaMindPrayerBook")
	gt.NoError(t, err)
	gt.True(t, ok)
	gt.Equal(t, value, `[{"id":1}]`)
}

func TestFileStorageOverwrite(t *testing.T) {
	ctx := context.Background()
	storage, err := repository.NewFile(t.TempDir())
	gt.NoError(t, err)

	gt.NoError(t, storage.Set(ctx, "k", "first"))
	gt.NoError(t, storage.Set(ctx, "k", "second"))

	value, ok, err := storage.Get(ctx, "k")
	gt.NoError(t, err)
	gt.True(t, ok)
	gt.Equal(t, value, "second")
}

func TestFileStorageRequiresDir(t *testing.T) {
	_, err := repository.NewFile("")
	gt.Error(t, err)
}
