package filestore

//go:generate go run go.uber.org/mock/mockgen -source=./filestore.go -destination=./mocks/filestore_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"halachi/config"
	"halachi/infras/otel"
	"halachi/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	otelAttrPath = "store.path"
)

// Store reads and rewrites the whole site document.
//
// Every request loads its own copy, changes it and saves it back, so two concurrent
// writers race and the later save wins for the entire document.
type Store interface {
	Load(ctx context.Context) Document
	Save(ctx context.Context, doc Document) error
}

type fileStore struct {
	path string
	otel otel.Otel

	// writeMu only keeps two saves from interleaving on disk.
	writeMu sync.Mutex
}

func New(cfg *config.Config, otel otel.Otel) Store {
	return NewWithPath(cfg.Storage.DataFile, otel)
}

func NewWithPath(path string, otel otel.Otel) Store {
	return &fileStore{
		path: path,
		otel: otel,
	}
}

// Load never fails. A missing file yields DefaultDocument; an unreadable or malformed
// one yields a Degraded document that Mutate refuses to save over the file.
func (s *fileStore) Load(ctx context.Context) Document {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Load")
	defer scope.End()

	scope.SetAttribute(otelAttrPath, s.path)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", s.path).Msg("data file does not exist yet, serving default document")

		return DefaultDocument()
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("path", s.path).Msg("failed to read data file, serving default document")

		return degradedDocument()
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("path", s.path).Msg("failed to parse data file, serving default document")

		return degradedDocument()
	}

	if doc.Degraded {
		log.Error().Strs("sections", doc.mismatched).Str("path", s.path).Msg("data file has sections of an unexpected shape, writes are disabled")
	}

	doc.normalize()

	return doc
}

func degradedDocument() Document {
	doc := DefaultDocument()
	doc.Degraded = true

	return doc
}

// Save replaces the data file through a temporary file in the same directory.
func (s *fileStore) Save(ctx context.Context, doc Document) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttribute(otelAttrPath, s.path)

	if doc.Degraded {
		return ErrDegraded
	}

	doc.normalize()

	data, err := json.MarshalIndent(doc, "", constant.JSONIndent)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err = writeFileAtomic(s.path, data); err != nil {
		log.Error().Err(err).Str("path", s.path).Msg("failed to write data file")

		return err
	}

	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, constant.DirPermission); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck,gosec

		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close() //nolint:errcheck,gosec

		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpName, constant.FilePermission); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}

	return nil
}
