package service

import (
	"context"
	"errors"
	"sort"

	"halachi/infras/kafka"
	"halachi/infras/otel"
	"halachi/internal/domains/booking/model"
	"halachi/internal/domains/booking/model/dto"
	"halachi/internal/domains/booking/repository"
	"halachi/shared"
	"halachi/shared/constant"
	"halachi/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	MessageBookingAccepted = "Заявка принята!"

	EventBookingCreated = "booking.created"

	maxInsertAttempts = 3
	idSuffixLength    = 4
)

type Booking interface {
	Submit(ctx context.Context, req dto.SubmitBookingRequest) (dto.SubmitBookingResponse, error)
	GetAll(ctx context.Context) ([]model.Booking, error)
}

type serviceImpl struct {
	repo      repository.Booking
	publisher kafka.Publisher
	otel      otel.Otel
}

func New(repo repository.Booking, publisher kafka.Publisher, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		publisher: publisher,
		otel:      otel,
	}
}

type bookingEvent struct {
	Event   string        `json:"event"`
	Booking model.Booking `json:"booking"`
}

// Submit stores the booking under a time-based id. When two bookings land in the same
// millisecond the later one gets a random suffix.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitBookingRequest) (res dto.SubmitBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Submit")
	defer scope.End()
	defer scope.TraceIfError(&err)

	now := timezone.Now()
	baseID := shared.TimeToken(now)
	id := baseID

	var booking model.Booking

	for attempt := 1; ; attempt++ {
		booking = req.ToModel(id, timezone.Format(now))

		err = s.repo.Insert(ctx, booking)
		if err == nil {
			break
		}

		if !errors.Is(err, repository.ErrDuplicateID) || attempt == maxInsertAttempts {
			log.Error().Err(err).Str("booking_id", id).Msg("failed to save booking")

			return res, err
		}

		id = baseID + shared.RandomSuffix(idSuffixLength)
	}

	log.Info().Str("booking_id", id).Interface("booking", booking).Msg("new booking")

	event := kafka.Message{
		Key:   id,
		Value: bookingEvent{Event: EventBookingCreated, Booking: booking},
	}

	if pubErr := s.publisher.Publish(ctx, event); pubErr != nil {
		log.Warn().Err(pubErr).Str("booking_id", id).Msg("failed to publish booking event")
	}

	return dto.SubmitBookingResponse{
		Success:   true,
		Message:   MessageBookingAccepted,
		BookingID: id,
	}, nil
}

// GetAll returns the bookings newest first.
func (s *serviceImpl) GetAll(ctx context.Context) (bookings []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	bookings, err = s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")

		return nil, err
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return newer(bookings[i].CreatedAt(), bookings[j].CreatedAt())
	})

	return bookings, nil
}

// newer compares timestamps, falling back to plain string order when either is unparsable.
func newer(a, b string) bool {
	ta, errA := timezone.Parse(a)
	tb, errB := timezone.Parse(b)

	if errA != nil || errB != nil {
		return a > b
	}

	return ta.After(tb)
}
