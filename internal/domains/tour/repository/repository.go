package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"

	"halachi/infras/filestore"
	"halachi/infras/otel"
	"halachi/internal/domains/tour/model"
	"halachi/shared/constant"
)

var ErrNotFound = errors.New("tour not found")

type Tour interface {
	GetAll(ctx context.Context, filter model.Filter) []model.Tour
	Get(ctx context.Context, id string) (model.Tour, error)
	Upsert(ctx context.Context, tour model.Tour) (model.Tour, error)
	Update(ctx context.Context, id string, apply func(tour *model.Tour)) (model.Tour, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	store filestore.Store
	otel  otel.Otel
}

func New(store filestore.Store, otel otel.Otel) Tour {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context, filter model.Filter) []model.Tour {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".tour.GetAll")
	defer scope.End()

	doc := r.store.Load(ctx)

	tours := make([]model.Tour, 0, len(doc.Tours))
	for _, tour := range doc.Tours {
		if filter.Match(tour) {
			tours = append(tours, tour)
		}
	}

	return tours
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Tour, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".tour.Get")
	defer scope.End()

	doc := r.store.Load(ctx)

	idx := doc.TourIndex(id)
	if idx < 0 {
		return model.Tour{}, ErrNotFound
	}

	return doc.Tours[idx], nil
}

// Upsert replaces the tour with the same id in place or appends it.
// A replaced tour keeps its original created_at.
func (r *repositoryImpl) Upsert(ctx context.Context, tour model.Tour) (saved model.Tour, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".tour.Upsert")
	defer scope.End()
	defer scope.TraceIfError(&err)

	err = filestore.Mutate(ctx, r.store, func(doc *filestore.Document) error {
		idx := doc.TourIndex(tour.ID)
		if idx < 0 {
			doc.Tours = append(doc.Tours, tour)
			saved = tour

			return nil
		}

		if created := doc.Tours[idx].CreatedAt; created != "" {
			tour.CreatedAt = created
		}

		doc.Tours[idx] = tour
		saved = tour

		return nil
	})

	return saved, err
}

func (r *repositoryImpl) Update(ctx context.Context, id string, apply func(tour *model.Tour)) (updated model.Tour, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".tour.Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	err = filestore.Mutate(ctx, r.store, func(doc *filestore.Document) error {
		idx := doc.TourIndex(id)
		if idx < 0 {
			return ErrNotFound
		}

		apply(&doc.Tours[idx])
		updated = doc.Tours[idx]

		return nil
	})

	return updated, err
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".tour.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return filestore.Mutate(ctx, r.store, func(doc *filestore.Document) error {
		idx := doc.TourIndex(id)
		if idx < 0 {
			return ErrNotFound
		}

		doc.Tours = append(doc.Tours[:idx], doc.Tours[idx+1:]...)

		return nil
	})
}
