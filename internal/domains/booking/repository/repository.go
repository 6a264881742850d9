package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"halachi/config"
	"halachi/infras/otel"
	"halachi/internal/domains/booking/model"
	"halachi/shared/constant"

	"github.com/rs/zerolog/log"
)

// ErrDuplicateID is returned when a booking file with the same id already exists.
var ErrDuplicateID = errors.New("booking id already taken")

type Booking interface {
	Insert(ctx context.Context, booking model.Booking) error
	GetAll(ctx context.Context) ([]model.Booking, error)
	Count(ctx context.Context) (int, error)
}

type repositoryImpl struct {
	dir  string
	otel otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Booking {
	return NewWithDir(cfg.Storage.BookingsDir, otel)
}

func NewWithDir(dir string, otel otel.Otel) Booking {
	return &repositoryImpl{
		dir:  dir,
		otel: otel,
	}
}

// Insert writes <id>.json and never overwrites an existing booking.
func (r *repositoryImpl) Insert(ctx context.Context, booking model.Booking) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Insert")
	defer scope.End()
	defer scope.TraceIfError(&err)

	data, err := json.MarshalIndent(booking, "", constant.JSONIndent)
	if err != nil {
		return fmt.Errorf("failed to encode booking: %w", err)
	}

	if err = os.MkdirAll(r.dir, constant.DirPermission); err != nil {
		return fmt.Errorf("failed to create bookings directory: %w", err)
	}

	path := filepath.Join(r.dir, booking.ID()+constant.JSONExtension)

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, constant.FilePermission)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrDuplicateID
		}

		return fmt.Errorf("failed to create booking file: %w", err)
	}

	if _, err = file.Write(data); err != nil {
		_ = file.Close()
		_ = os.Remove(path)

		return fmt.Errorf("failed to write booking file: %w", err)
	}

	if err = file.Close(); err != nil {
		_ = os.Remove(path)

		return fmt.Errorf("failed to close booking file: %w", err)
	}

	return nil
}

// GetAll reads every booking file. Files that cannot be parsed are logged and skipped.
func (r *repositoryImpl) GetAll(ctx context.Context) (bookings []model.Booking, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	names, err := r.files()
	if err != nil {
		return nil, err
	}

	bookings = make([]model.Booking, 0, len(names))

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(r.dir, name))
		if err != nil {
			log.Error().Err(err).Str("file", name).Msg("failed to read booking")

			continue
		}

		var booking model.Booking
		if err := json.Unmarshal(data, &booking); err != nil || booking == nil {
			log.Error().Err(err).Str("file", name).Msg("failed to parse booking")

			continue
		}

		bookings = append(bookings, booking)
	}

	return bookings, nil
}

// Count returns the number of booking files without parsing them.
func (r *repositoryImpl) Count(ctx context.Context) (count int, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	names, err := r.files()

	return len(names), err
}

func (r *repositoryImpl) files() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), constant.JSONExtension) {
			continue
		}

		names = append(names, entry.Name())
	}

	return names, nil
}
