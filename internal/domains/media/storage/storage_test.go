package storage_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"halachi/infras/s3/mocks"
	"halachi/internal/domains/media/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLocalStorage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public", "images", "uploads")
	store := storage.NewLocal(dir, "/images/uploads")
	ctx := context.Background()

	url, err := store.Put(ctx, "1-abc.png", "image/png", []byte("png"))
	require.NoError(t, err)
	assert.Equal(t, "/images/uploads/1-abc.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "1-abc.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)

	_, err = store.Put(ctx, "1-abc.png", "image/png", []byte("again"))
	assert.Error(t, err, "existing uploads are never overwritten")

	require.NoError(t, store.Remove(ctx, "1-abc.png"))
	require.NoError(t, store.Remove(ctx, "1-abc.png"))

	_, err = os.Stat(filepath.Join(dir, "1-abc.png"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestS3Storage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockS3(ctrl)
	store := storage.NewS3(client, "images/uploads")

	client.EXPECT().
		UploadFileBytes(gomock.Any(), "images/uploads", "1-abc.png", "image/png", []byte("png")).
		Return("https://cdn.example.com/images/uploads/1-abc.png", nil)
	client.EXPECT().
		DeleteFile(gomock.Any(), "images/uploads", "1-abc.png").
		Return(nil)

	url, err := store.Put(context.Background(), "1-abc.png", "image/png", []byte("png"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/images/uploads/1-abc.png", url)

	assert.NoError(t, store.Remove(context.Background(), "1-abc.png"))
}
