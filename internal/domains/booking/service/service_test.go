package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	kafkaMocks "halachi/infras/kafka/mocks"
	"halachi/infras/otel/mocks"
	bookingMocks "halachi/internal/domains/booking/mocks"
	"halachi/internal/domains/booking/model"
	"halachi/internal/domains/booking/model/dto"
	"halachi/internal/domains/booking/repository"
	"halachi/internal/domains/booking/service"
	"halachi/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingService_Submit(t *testing.T) {
	restore := timezone.SetClock(func() time.Time {
		return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	})
	defer restore()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockPublisher := kafkaMocks.NewMockPublisher(ctrl)
	svc := service.New(mockRepo, mockPublisher, mocks.NewOtel())

	req := dto.SubmitBookingRequest{Fields: map[string]any{"name": "Анна", "id": "mine"}}

	tests := []struct {
		name      string
		setupMock func()
		wantID    func(t *testing.T, id string)
		wantErr   bool
	}{
		{
			name: "stores and publishes",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, "lvnnbr40", booking.ID())
						assert.Equal(t, "new", booking.Status())
						assert.Equal(t, "2024-05-01T10:00:00.000Z", booking.CreatedAt())

						return nil
					})
				mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantID: func(t *testing.T, id string) { assert.Equal(t, "lvnnbr40", id) },
		},
		{
			name: "suffixes the id on collision",
			setupMock: func() {
				gomock.InOrder(
					mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicateID),
					mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil),
				)
				mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantID: func(t *testing.T, id string) {
				assert.Len(t, id, len("lvnnbr40")+4)
				assert.Equal(t, "lvnnbr40", id[:8])
			},
		},
		{
			name: "publish failure does not fail the booking",
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
			wantID: func(t *testing.T, id string) { assert.Equal(t, "lvnnbr40", id) },
		},
		{
			name: "write failure",
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			},
			wantErr: true,
		},
		{
			name: "gives up after repeated collisions",
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicateID).Times(3)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Submit(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.True(t, res.Success)
			assert.Equal(t, service.MessageBookingAccepted, res.Message)
			tt.wantID(t, res.BookingID)
		})
	}
}

func TestBookingService_GetAll_NewestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo, kafkaMocks.NewMockPublisher(ctrl), mocks.NewOtel())

	mockRepo.EXPECT().GetAll(gomock.Any()).Return([]model.Booking{
		{"id": "a", "created_at": "2024-05-01T10:00:00.000Z"},
		{"id": "b", "created_at": "2024-05-03T10:00:00.000+03:00"},
		{"id": "c", "created_at": "2024-05-02T10:00:00Z"},
	}, nil)

	bookings, err := svc.GetAll(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(bookings))
	for _, booking := range bookings {
		ids = append(ids, booking.ID())
	}

	assert.Equal(t, []string{"b", "c", "a"}, ids)
}
