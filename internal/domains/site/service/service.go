package service

import (
	"context"

	"halachi/infras/filestore"
	"halachi/infras/otel"
	bookingRepo "halachi/internal/domains/booking/repository"
	reviewModel "halachi/internal/domains/review/model"
	"halachi/internal/domains/site/model"
	"halachi/shared"
	"halachi/shared/constant"

	"github.com/rs/zerolog/log"
)

const ratingPrecision = 1

type Site interface {
	GetData(ctx context.Context) filestore.Document
	GetStats(ctx context.Context) (model.Stats, error)
}

type serviceImpl struct {
	store    filestore.Store
	bookings bookingRepo.Booking
	otel     otel.Otel
}

func New(store filestore.Store, bookings bookingRepo.Booking, otel otel.Otel) Site {
	return &serviceImpl{
		store:    store,
		bookings: bookings,
		otel:     otel,
	}
}

// GetData returns the whole document, including members the site does not model.
func (s *serviceImpl) GetData(ctx context.Context) filestore.Document {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".site.GetData")
	defer scope.End()

	return s.store.Load(ctx)
}

func (s *serviceImpl) GetStats(ctx context.Context) (stats model.Stats, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".site.GetStats")
	defer scope.End()
	defer scope.TraceIfError(&err)

	doc := s.store.Load(ctx)

	stats = model.Stats{
		TotalTours:      len(doc.Tours),
		TotalCategories: len(doc.Categories),
		TotalReviews:    len(doc.Reviews),
	}

	if doc.Hotel != nil {
		stats.TotalRooms = len(doc.Hotel.Rooms)
		stats.VisitorCount = doc.Hotel.Visitors()
	}

	for _, review := range doc.Reviews {
		if review.Status == reviewModel.StatusPending {
			stats.PendingReviews++
		}
	}

	if len(doc.Tours) > 0 {
		var sum float64
		for _, tour := range doc.Tours {
			sum += tour.Rating
		}

		stats.AvgRating = shared.RoundTo(sum/float64(len(doc.Tours)), ratingPrecision)
	}

	stats.TotalBookings, err = s.bookings.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return stats, err
	}

	return stats, nil
}
