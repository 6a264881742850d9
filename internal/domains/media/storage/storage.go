package storage

//go:generate go run go.uber.org/mock/mockgen -source=./storage.go -destination=../mocks/storage_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"halachi/config"
	"halachi/infras/otel"
	"halachi/infras/s3"
	"halachi/shared/constant"

	"github.com/rs/zerolog/log"
)

// Storage is where accepted images end up. Put returns the URL browsers load the image from.
type Storage interface {
	Put(ctx context.Context, name, contentType string, data []byte) (string, error)
	Remove(ctx context.Context, name string) error
}

func New(cfg *config.Config, otel otel.Otel) Storage {
	if cfg.Storage.Driver == constant.StorageDriverS3 {
		log.Info().Str("bucket", cfg.External.S3.BucketName).Msg("image uploads go to S3")

		return NewS3(s3.New(cfg, otel), strings.Trim(cfg.Storage.PublicPath, "/"))
	}

	log.Info().Str("dir", cfg.Storage.UploadDir).Msg("image uploads go to local disk")

	return NewLocal(cfg.Storage.UploadDir, cfg.Storage.PublicPath)
}

type localStorage struct {
	dir        string
	publicPath string
}

func NewLocal(dir, publicPath string) Storage {
	return &localStorage{
		dir:        dir,
		publicPath: publicPath,
	}
}

func (l *localStorage) Put(_ context.Context, name, _ string, data []byte) (string, error) {
	if err := os.MkdirAll(l.dir, constant.DirPermission); err != nil {
		return constant.Empty, fmt.Errorf("failed to create upload directory: %w", err)
	}

	target := filepath.Join(l.dir, name)

	file, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, constant.FilePermission)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err = file.Write(data); err != nil {
		_ = file.Close()
		_ = os.Remove(target)

		return constant.Empty, fmt.Errorf("failed to write upload file: %w", err)
	}

	if err = file.Close(); err != nil {
		_ = os.Remove(target)

		return constant.Empty, fmt.Errorf("failed to close upload file: %w", err)
	}

	return path.Join(l.publicPath, name), nil
}

func (l *localStorage) Remove(_ context.Context, name string) error {
	err := os.Remove(filepath.Join(l.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove upload file: %w", err)
	}

	return nil
}

type s3Storage struct {
	client    s3.S3
	directory string
}

func NewS3(client s3.S3, directory string) Storage {
	return &s3Storage{
		client:    client,
		directory: directory,
	}
}

func (s *s3Storage) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	return s.client.UploadFileBytes(ctx, s.directory, name, contentType, data)
}

func (s *s3Storage) Remove(ctx context.Context, name string) error {
	return s.client.DeleteFile(ctx, s.directory, name)
}
