package filestore

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrSave     = errors.New("failed to save document")
	ErrDegraded = errors.New("data file was not loaded in full")
)

// Mutate loads the document, lets fn change it and saves it back.
// Nothing is written when fn returns an error or the document is Degraded.
func Mutate(ctx context.Context, store Store, fn func(doc *Document) error) error {
	doc := store.Load(ctx)
	if doc.Degraded {
		return fmt.Errorf("%w: %w", ErrSave, ErrDegraded)
	}

	if err := fn(&doc); err != nil {
		return err
	}

	if err := store.Save(ctx, doc); err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}

	return nil
}
