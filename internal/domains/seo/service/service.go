package service

import (
	"context"

	"halachi/infras/otel"
	"halachi/internal/domains/seo/model"
	"halachi/internal/domains/seo/model/dto"
	"halachi/internal/domains/seo/repository"
	"halachi/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	MessageSEOUpdated = "SEO обновлено"
)

type SEO interface {
	Get(ctx context.Context) model.SEO
	Update(ctx context.Context, req dto.UpdateSEORequest) error
}

type serviceImpl struct {
	repo repository.SEO
	otel otel.Otel
}

func New(repo repository.SEO, otel otel.Otel) SEO {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context) model.SEO {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seo.Get")
	defer scope.End()

	return s.repo.Get(ctx)
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSEORequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seo.Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = s.repo.Merge(ctx, req.Apply); err != nil {
		log.Error().Err(err).Msg("failed to update seo")

		return err
	}

	log.Info().Int("pages", len(req.Pages)).Msg("seo updated")

	return nil
}
