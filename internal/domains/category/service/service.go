package service

import (
	"context"
	"errors"

	"halachi/infras/otel"
	"halachi/internal/domains/category/model"
	"halachi/internal/domains/category/model/dto"
	"halachi/internal/domains/category/repository"
	"halachi/shared/constant"
	"halachi/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	MessageCategorySaved    = "Категория сохранена"
	MessageCategoryDeleted  = "Категория удалена"
	MessageCategoryNotFound = "Категория не найдена"
	MessageCategoryInUse    = "Нельзя удалить категорию, которая используется"
)

type Category interface {
	GetAll(ctx context.Context) []model.Category
	Save(ctx context.Context, req dto.SaveCategoryRequest) (model.Category, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Category
	otel otel.Otel
}

func New(repo repository.Category, otel otel.Otel) Category {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) []model.Category {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".category.GetAll")
	defer scope.End()

	return s.repo.GetAll(ctx)
}

func (s *serviceImpl) Save(ctx context.Context, req dto.SaveCategoryRequest) (category model.Category, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".category.Save")
	defer scope.End()
	defer scope.TraceIfError(&err)

	category, err = s.repo.Upsert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Str("id", req.ID).Msg("failed to save category")

		return category, err
	}

	log.Info().Str("id", category.ID).Int("order", category.Order).Msg("category saved")

	return category, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".category.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	err = s.repo.Delete(ctx, id)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrInUse):
		log.Warn().Str("id", id).Msg("refused to delete category in use")

		return failure.Conflict(MessageCategoryInUse)
	case errors.Is(err, repository.ErrNotFound):
		return failure.NotFound(MessageCategoryNotFound)
	default:
		log.Error().Err(err).Str("id", id).Msg("failed to delete category")

		return err
	}
}
