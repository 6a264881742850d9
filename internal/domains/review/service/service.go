package service

import (
	"context"
	"errors"

	"halachi/infras/otel"
	"halachi/internal/domains/review/model"
	"halachi/internal/domains/review/model/dto"
	"halachi/internal/domains/review/repository"
	"halachi/shared/constant"
	"halachi/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	MessageReviewSubmitted = "Спасибо! Отзыв появится после модерации"
	MessageReviewSaved     = "Отзыв сохранён"
	MessageReviewApproved  = "Отзыв одобрен"
	MessageReviewRejected  = "Отзыв отклонён"
	MessageReviewDeleted   = "Отзыв удалён"
	MessageReviewNotFound  = "Отзыв не найден"
)

type Review interface {
	GetApproved(ctx context.Context) []model.Review
	GetAll(ctx context.Context, req dto.GetReviewsRequest) []model.Review
	Submit(ctx context.Context, req dto.SubmitReviewRequest) (dto.SaveReviewResponse, error)
	Create(ctx context.Context, req dto.CreateReviewRequest) (dto.SaveReviewResponse, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Review
	otel otel.Otel
}

func New(repo repository.Review, otel otel.Otel) Review {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetApproved(ctx context.Context) []model.Review {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.GetApproved")
	defer scope.End()

	return s.repo.GetAll(ctx, model.StatusApproved)
}

func (s *serviceImpl) GetAll(ctx context.Context, req dto.GetReviewsRequest) []model.Review {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.GetAll")
	defer scope.End()

	return s.repo.GetAll(ctx, req.Status)
}

// Submit stores a guest review as pending.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitReviewRequest) (res dto.SaveReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Submit")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return s.add(ctx, req.ToModel(), MessageReviewSubmitted)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (res dto.SaveReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return s.add(ctx, req.ToModel(), MessageReviewSaved)
}

func (s *serviceImpl) add(ctx context.Context, review model.Review, message string) (dto.SaveReviewResponse, error) {
	if err := s.repo.Add(ctx, review); err != nil {
		log.Error().Err(err).Str("id", review.ID).Msg("failed to save review")

		return dto.SaveReviewResponse{}, err
	}

	log.Info().Str("id", review.ID).Str("status", review.Status).Int("rating", review.Rating).Msg("review added")

	return dto.SaveReviewResponse{
		Success: true,
		Message: message,
		Review:  review,
	}, nil
}

func (s *serviceImpl) Approve(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Approve")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return s.setStatus(ctx, id, model.StatusApproved)
}

func (s *serviceImpl) Reject(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Reject")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return s.setStatus(ctx, id, model.StatusRejected)
}

func (s *serviceImpl) setStatus(ctx context.Context, id, status string) error {
	if _, err := s.repo.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return failure.NotFound(MessageReviewNotFound)
		}

		log.Error().Err(err).Str("id", id).Str("status", status).Msg("failed to change review status")

		return err
	}

	log.Info().Str("id", id).Str("status", status).Msg("review moderated")

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return failure.NotFound(MessageReviewNotFound)
		}

		log.Error().Err(err).Str("id", id).Msg("failed to delete review")

		return err
	}

	return nil
}
