package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"halachi/infras/filestore"
	"halachi/infras/otel"
	"halachi/internal/domains/seo/model"
	"halachi/shared/constant"
)

type SEO interface {
	Get(ctx context.Context) model.SEO
	Merge(ctx context.Context, apply func(seo model.SEO) model.SEO) error
}

type repositoryImpl struct {
	store filestore.Store
	otel  otel.Otel
}

func New(store filestore.Store, otel otel.Otel) SEO {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

// Get returns an empty object when the document carries no SEO section.
func (r *repositoryImpl) Get(ctx context.Context) model.SEO {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".seo.Get")
	defer scope.End()

	seo := r.store.Load(ctx).SEO
	if seo == nil {
		return model.SEO{}
	}

	return seo
}

func (r *repositoryImpl) Merge(ctx context.Context, apply func(seo model.SEO) model.SEO) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".seo.Merge")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return filestore.Mutate(ctx, r.store, func(doc *filestore.Document) error {
		doc.SEO = apply(doc.SEO)

		return nil
	})
}
