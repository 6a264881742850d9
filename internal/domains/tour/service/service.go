package service

import (
	"context"
	"errors"

	"halachi/infras/otel"
	"halachi/internal/domains/tour/model"
	"halachi/internal/domains/tour/model/dto"
	"halachi/internal/domains/tour/repository"
	"halachi/shared/constant"
	"halachi/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	MessageTourNotFound = "Тур не найден"
	MessageTourSaved    = "Тур сохранён"
	MessageTourUpdated  = "Тур обновлён"
	MessageTourDeleted  = "Тур удалён"
)

type Tour interface {
	GetAll(ctx context.Context, req dto.GetToursRequest) ([]model.Tour, error)
	Get(ctx context.Context, id string) (model.Tour, error)
	Save(ctx context.Context, req dto.SaveTourRequest, uploaded []string) (dto.SaveTourResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateTourRequest) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Tour
	otel otel.Otel
}

func New(repo repository.Tour, otel otel.Otel) Tour {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req dto.GetToursRequest) ([]model.Tour, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tour.GetAll")
	defer scope.End()

	filter := req.ToFilter()
	scope.SetAttributes(map[string]any{
		"filter.category":       filter.Category,
		"filter.featured_only":  filter.FeaturedOnly,
		"filter.include_hidden": filter.IncludeHidden,
	})

	return s.repo.GetAll(ctx, filter), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (tour model.Tour, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tour.Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	tour, err = s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return tour, failure.NotFound(MessageTourNotFound)
	}

	return tour, err
}

func (s *serviceImpl) Save(ctx context.Context, req dto.SaveTourRequest, uploaded []string) (res dto.SaveTourResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tour.Save")
	defer scope.End()
	defer scope.TraceIfError(&err)

	tour, err := s.repo.Upsert(ctx, req.ToModel(uploaded))
	if err != nil {
		log.Error().Err(err).Str("id", req.ID).Msg("failed to save tour")

		return res, err
	}

	log.Info().Str("id", tour.ID).Int("images", len(tour.Images)).Msg("tour saved")

	res.Success = true
	res.Message = MessageTourSaved
	res.Tour = tour

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateTourRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tour.Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	_, err = s.repo.Update(ctx, id, req.Apply)
	if errors.Is(err, repository.ErrNotFound) {
		return failure.NotFound(MessageTourNotFound)
	}

	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update tour")

		return err
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tour.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	err = s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return failure.NotFound(MessageTourNotFound)
	}

	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete tour")

		return err
	}

	return nil
}
