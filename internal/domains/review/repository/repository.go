package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"

	"halachi/infras/filestore"
	"halachi/infras/otel"
	"halachi/internal/domains/review/model"
	"halachi/shared/constant"
)

var ErrNotFound = errors.New("review not found")

type Review interface {
	GetAll(ctx context.Context, status string) []model.Review
	Add(ctx context.Context, review model.Review) error
	SetStatus(ctx context.Context, id, status string) (model.Review, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	store filestore.Store
	otel  otel.Otel
}

func New(store filestore.Store, otel otel.Otel) Review {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

// GetAll returns every review when status is empty.
func (r *repositoryImpl) GetAll(ctx context.Context, status string) []model.Review {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.GetAll")
	defer scope.End()

	reviews := []model.Review{}

	for _, review := range r.store.Load(ctx).Reviews {
		if status != constant.Empty && review.Status != status {
			continue
		}

		reviews = append(reviews, review)
	}

	return reviews
}

func (r *repositoryImpl) Add(ctx context.Context, review model.Review) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.Add")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return filestore.Mutate(ctx, r.store, func(doc *filestore.Document) error {
		doc.Reviews = append(doc.Reviews, review)

		return nil
	})
}

// SetStatus is idempotent: setting the current status again still saves and succeeds.
func (r *repositoryImpl) SetStatus(ctx context.Context, id, status string) (review model.Review, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.SetStatus")
	defer scope.End()
	defer scope.TraceIfError(&err)

	err = filestore.Mutate(ctx, r.store, func(doc *filestore.Document) error {
		idx := doc.ReviewIndex(id)
		if idx < 0 {
			return ErrNotFound
		}

		doc.Reviews[idx].Status = status
		review = doc.Reviews[idx]

		return nil
	})

	return review, err
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return filestore.Mutate(ctx, r.store, func(doc *filestore.Document) error {
		idx := doc.ReviewIndex(id)
		if idx < 0 {
			return ErrNotFound
		}

		doc.Reviews = append(doc.Reviews[:idx], doc.Reviews[idx+1:]...)

		return nil
	})
}
