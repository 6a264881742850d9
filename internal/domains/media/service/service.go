package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"halachi/config"
	"halachi/infras/otel"
	"halachi/internal/domains/media/model"
	"halachi/internal/domains/media/model/dto"
	"halachi/internal/domains/media/storage"
	"halachi/shared"
	"halachi/shared/constant"
	"halachi/shared/failure"
	"halachi/shared/timezone"
	"halachi/shared/validator"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog/log"
)

const randomSuffixLength = 8

type Media interface {
	Upload(ctx context.Context, header *multipart.FileHeader) (dto.UploadImageResponse, error)
	// UploadMany accepts all files or none: every file is checked before the first write.
	UploadMany(ctx context.Context, headers []*multipart.FileHeader) ([]string, error)
	// Discard removes images returned by Upload or UploadMany that ended up unused.
	Discard(ctx context.Context, urls []string)
}

type serviceImpl struct {
	storage  storage.Storage
	maxBytes int64
	maxFiles int
	otel     otel.Otel
}

func New(storage storage.Storage, cfg *config.Config, otel otel.Otel) Media {
	return &serviceImpl{
		storage:  storage,
		maxBytes: cfg.MaxUploadBytes(),
		maxFiles: cfg.Storage.MaxUploadFiles,
		otel:     otel,
	}
}

func (s *serviceImpl) Upload(ctx context.Context, header *multipart.FileHeader) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".media.Upload")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if header == nil {
		return res, failure.NoFileError
	}

	image, err := s.accept(header)
	if err != nil {
		return res, err
	}

	url, err := s.storage.Put(ctx, image.Name, image.ContentType, image.Data)
	if err != nil {
		log.Error().Err(err).Str("file", header.Filename).Msg("failed to store image")

		return res, err
	}

	log.Info().Str("url", url).Int("bytes", len(image.Data)).Msg("image uploaded")

	res.Success = true
	res.URL = url

	return res, nil
}

func (s *serviceImpl) UploadMany(ctx context.Context, headers []*multipart.FileHeader) (urls []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".media.UploadMany")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if len(headers) > s.maxFiles {
		return nil, failure.BadRequestFromString(fmt.Sprintf("Можно загрузить не более %d файлов", s.maxFiles))
	}

	images := make([]model.Image, 0, len(headers))

	for _, header := range headers {
		image, err := s.accept(header)
		if err != nil {
			return nil, err
		}

		images = append(images, image)
	}

	urls = make([]string, 0, len(images))

	for i, image := range images {
		url, err := s.storage.Put(ctx, image.Name, image.ContentType, image.Data)
		if err != nil {
			log.Error().Err(err).Str("file", image.Name).Msg("failed to store image")
			s.rollback(ctx, names(images[:i]))

			return nil, err
		}

		urls = append(urls, url)
	}

	return urls, nil
}

// accept reads and checks one file without writing anything.
func (s *serviceImpl) accept(header *multipart.FileHeader) (model.Image, error) {
	if header.Size > s.maxBytes {
		return model.Image{}, failure.FileTooLargeError
	}

	file, err := header.Open()
	if err != nil {
		return model.Image{}, fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.maxBytes+1))
	if err != nil {
		return model.Image{}, fmt.Errorf("failed to read upload: %w", err)
	}

	if int64(len(data)) > s.maxBytes {
		return model.Image{}, failure.FileTooLargeError
	}

	contentType, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")

	req := dto.UploadImageRequest{}
	req.FromHeader(header, contentType, int64(len(data)))

	if err := validator.ValidateStruct(&req); err != nil {
		log.Warn().
			Str("file", header.Filename).
			Str("content_type", contentType).
			Msg("rejected upload that is not an image")

		return model.Image{}, failure.OnlyImagesError
	}

	return model.Image{
		Name:        fileName(filepath.Ext(header.Filename)),
		ContentType: contentType,
		Data:        data,
	}, nil
}

func (s *serviceImpl) Discard(ctx context.Context, urls []string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".media.Discard")
	defer scope.End()

	files := make([]string, 0, len(urls))
	for _, url := range urls {
		files = append(files, path.Base(url))
	}

	s.rollback(ctx, files)
}

func (s *serviceImpl) rollback(ctx context.Context, files []string) {
	for _, name := range files {
		if err := s.storage.Remove(ctx, name); err != nil {
			log.Error().Err(err).Str("file", name).Msg("failed to remove partial upload")
		}
	}
}

func names(images []model.Image) []string {
	files := make([]string, 0, len(images))
	for _, image := range images {
		files = append(files, image.Name)
	}

	return files
}

// fileName is <unix ms>-<random hex><original extension>.
func fileName(ext string) string {
	return strconv.FormatInt(timezone.Now().UnixMilli(), 10) + "-" + shared.RandomSuffix(randomSuffixLength) + ext
}
