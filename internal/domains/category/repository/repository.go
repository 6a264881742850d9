package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"

	"halachi/infras/filestore"
	"halachi/infras/otel"
	"halachi/internal/domains/category/model"
	"halachi/shared/constant"
)

var (
	ErrNotFound = errors.New("category not found")
	ErrInUse    = errors.New("category is referenced by a tour")
)

type Category interface {
	GetAll(ctx context.Context) []model.Category
	Upsert(ctx context.Context, category model.Category) (model.Category, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	store filestore.Store
	otel  otel.Otel
}

func New(store filestore.Store, otel otel.Otel) Category {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) []model.Category {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".category.GetAll")
	defer scope.End()

	return r.store.Load(ctx).Categories
}

// Upsert appends a new category at position len+1 or replaces an existing one in place,
// keeping its order.
func (r *repositoryImpl) Upsert(ctx context.Context, category model.Category) (saved model.Category, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".category.Upsert")
	defer scope.End()
	defer scope.TraceIfError(&err)

	err = filestore.Mutate(ctx, r.store, func(doc *filestore.Document) error {
		idx := doc.CategoryIndex(category.ID)
		if idx < 0 {
			category.Order = len(doc.Categories) + 1
			doc.Categories = append(doc.Categories, category)
			saved = category

			return nil
		}

		category.Order = doc.Categories[idx].Order
		doc.Categories[idx] = category
		saved = category

		return nil
	})

	return saved, err
}

// Delete refuses to remove a category that a tour still points at. Remaining categories
// keep their order values.
func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".category.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return filestore.Mutate(ctx, r.store, func(doc *filestore.Document) error {
		if doc.CategoryInUse(id) {
			return ErrInUse
		}

		idx := doc.CategoryIndex(id)
		if idx < 0 {
			return ErrNotFound
		}

		doc.Categories = append(doc.Categories[:idx], doc.Categories[idx+1:]...)

		return nil
	})
}
