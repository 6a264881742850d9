package service_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"halachi/config"
	otelMocks "halachi/infras/otel/mocks"
	"halachi/internal/domains/media/mocks"
	"halachi/internal/domains/media/service"
	"halachi/internal/domains/media/storage"
	"halachi/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{0}, 32)...)

type upload struct {
	name string
	data []byte
}

func fileHeaders(t *testing.T, files ...upload) []*multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, file := range files {
		part, err := writer.CreateFormFile("images", file.name)
		require.NoError(t, err)

		_, err = part.Write(file.data)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)

	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["images"]
}

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Storage.MaxUploadMB = 5
	cfg.Storage.MaxUploadFiles = 5

	return cfg
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names
}

func TestMediaService_Upload(t *testing.T) {
	tests := []struct {
		name      string
		file      upload
		wantCode  int
		wantFiles int
	}{
		{
			name:      "png is stored",
			file:      upload{name: "photo.PNG", data: pngBytes},
			wantFiles: 1,
		},
		{
			name:     "text renamed to jpg is rejected",
			file:     upload{name: "notes.jpg", data: []byte("just some plain text, not an image")},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "png with a txt extension is rejected",
			file:     upload{name: "photo.txt", data: pngBytes},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "too large",
			file:     upload{name: "huge.png", data: append(append([]byte{}, pngBytes...), make([]byte, 5<<20)...)},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "uploads")
			svc := service.New(storage.NewLocal(dir, "/images/uploads"), newConfig(), otelMocks.NewOtel())

			res, err := svc.Upload(context.Background(), fileHeaders(t, tt.file)[0])

			files := listDir(t, dir)
			assert.Len(t, files, tt.wantFiles)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.True(t, res.Success)
			assert.Regexp(t, `^/images/uploads/\d+-[0-9a-f]{8}\.PNG$`, res.URL)
			assert.Equal(t, "/images/uploads/"+files[0], res.URL)
		})
	}
}

func TestMediaService_UploadWithoutFile(t *testing.T) {
	svc := service.New(storage.NewLocal(t.TempDir(), "/images/uploads"), newConfig(), otelMocks.NewOtel())

	_, err := svc.Upload(context.Background(), nil)

	assert.Equal(t, failure.NoFileError, err)
}

func TestMediaService_UploadManyChecksEveryFileFirst(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	svc := service.New(storage.NewLocal(dir, "/images/uploads"), newConfig(), otelMocks.NewOtel())

	headers := fileHeaders(t,
		upload{name: "a.png", data: pngBytes},
		upload{name: "b.gif", data: []byte("not a gif")},
	)

	urls, err := svc.UploadMany(context.Background(), headers)

	assert.Equal(t, failure.OnlyImagesError, err)
	assert.Nil(t, urls)
	assert.Empty(t, listDir(t, dir))
}

func TestMediaService_UploadManyLimit(t *testing.T) {
	cfg := newConfig()
	cfg.Storage.MaxUploadFiles = 1

	svc := service.New(storage.NewLocal(t.TempDir(), "/images/uploads"), cfg, otelMocks.NewOtel())

	_, err := svc.UploadMany(context.Background(), fileHeaders(t,
		upload{name: "a.png", data: pngBytes},
		upload{name: "b.png", data: pngBytes},
	))

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestMediaService_UploadManyRollsBackOnStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	svc := service.New(mockStorage, newConfig(), otelMocks.NewOtel())

	gomock.InOrder(
		mockStorage.EXPECT().Put(gomock.Any(), gomock.Any(), "image/png", gomock.Any()).Return("/images/uploads/1.png", nil),
		mockStorage.EXPECT().Put(gomock.Any(), gomock.Any(), "image/png", gomock.Any()).Return("", errors.New("disk full")),
		mockStorage.EXPECT().Remove(gomock.Any(), gomock.Any()).Return(nil),
	)

	urls, err := svc.UploadMany(context.Background(), fileHeaders(t,
		upload{name: "a.png", data: pngBytes},
		upload{name: "b.png", data: pngBytes},
	))

	assert.Error(t, err)
	assert.Nil(t, urls)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestMediaService_UploadManyStoresAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	svc := service.New(storage.NewLocal(dir, "/images/uploads"), newConfig(), otelMocks.NewOtel())

	urls, err := svc.UploadMany(context.Background(), fileHeaders(t,
		upload{name: "a.png", data: pngBytes},
		upload{name: "b.png", data: pngBytes},
	))

	require.NoError(t, err)
	assert.Len(t, urls, 2)
	assert.Len(t, listDir(t, dir), 2)
}

func TestMediaService_Discard(t *testing.T) {
	tests := []struct {
		name      string
		urls      []string
		setupMock func(mockStorage *mocks.MockStorage)
	}{
		{
			name: "removes each file by its name",
			urls: []string{"/images/uploads/1-a.png", "https://cdn.example.com/tours/2-b.jpg"},
			setupMock: func(mockStorage *mocks.MockStorage) {
				mockStorage.EXPECT().Remove(gomock.Any(), "1-a.png").Return(nil)
				mockStorage.EXPECT().Remove(gomock.Any(), "2-b.jpg").Return(nil)
			},
		},
		{
			name: "keeps going after a failed removal",
			urls: []string{"/images/uploads/1-a.png", "/images/uploads/2-b.png"},
			setupMock: func(mockStorage *mocks.MockStorage) {
				mockStorage.EXPECT().Remove(gomock.Any(), "1-a.png").Return(errors.New("permission denied"))
				mockStorage.EXPECT().Remove(gomock.Any(), "2-b.png").Return(nil)
			},
		},
		{
			name:      "nothing to remove",
			setupMock: func(*mocks.MockStorage) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := mocks.NewMockStorage(ctrl)
			tt.setupMock(mockStorage)

			svc := service.New(mockStorage, newConfig(), otelMocks.NewOtel())
			svc.Discard(context.Background(), tt.urls)
		})
	}
}

func TestMediaService_DiscardUndoesUploadMany(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	svc := service.New(storage.NewLocal(dir, "/images/uploads"), newConfig(), otelMocks.NewOtel())

	urls, err := svc.UploadMany(context.Background(), fileHeaders(t,
		upload{name: "a.png", data: pngBytes},
		upload{name: "b.png", data: pngBytes},
	))
	require.NoError(t, err)
	require.Len(t, listDir(t, dir), 2)

	svc.Discard(context.Background(), urls)

	assert.Empty(t, listDir(t, dir))
}
