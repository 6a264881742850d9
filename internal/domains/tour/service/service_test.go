package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"halachi/infras/otel/mocks"
	tourMocks "halachi/internal/domains/tour/mocks"
	"halachi/internal/domains/tour/model"
	"halachi/internal/domains/tour/model/dto"
	"halachi/internal/domains/tour/repository"
	"halachi/internal/domains/tour/service"
	"halachi/shared/coerce"
	"halachi/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestTourService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := tourMocks.NewMockTour(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name       string
		req        dto.GetToursRequest
		wantFilter model.Filter
	}{
		{
			name:       "defaults hide unavailable tours",
			req:        dto.GetToursRequest{},
			wantFilter: model.Filter{},
		},
		{
			name:       "category and featured",
			req:        dto.GetToursRequest{Category: "sea", Featured: "true"},
			wantFilter: model.Filter{Category: "sea", FeaturedOnly: true},
		},
		{
			name:       "available=false shows hidden tours",
			req:        dto.GetToursRequest{Available: "false"},
			wantFilter: model.Filter{IncludeHidden: true},
		},
		{
			name:       "featured other than true is ignored",
			req:        dto.GetToursRequest{Featured: "1"},
			wantFilter: model.Filter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().
				GetAll(gomock.Any(), tt.wantFilter).
				Return([]model.Tour{{ID: "t1"}})

			tours, err := svc.GetAll(context.Background(), tt.req)

			assert.NoError(t, err)
			assert.Len(t, tours, 1)
		})
	}
}

func TestTourService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := tourMocks.NewMockTour(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), "t1").Return(model.Tour{ID: "t1"}, nil)
			},
		},
		{
			name: "not found",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), "t1").Return(model.Tour{}, repository.ErrNotFound)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			tour, err := svc.Get(context.Background(), "t1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Equal(t, service.MessageTourNotFound, failure.Message(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "t1", tour.ID)
		})
	}
}

func TestTourService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := tourMocks.NewMockTour(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.SaveTourRequest
		uploaded  []string
		setupMock func()
		check     func(t *testing.T, res dto.SaveTourResponse)
		wantErr   bool
	}{
		{
			name: "generates id and coerces fields",
			req: dto.SaveTourRequest{
				Title:    "Сулакский каньон",
				Category: "nature",
				Price:    coerce.Int(1500),
				Images:   []string{"/images/a.jpg"},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tour model.Tour) (model.Tour, error) {
						return tour, nil
					})
			},
			check: func(t *testing.T, res dto.SaveTourResponse) {
				assert.True(t, res.Success)
				assert.Equal(t, service.MessageTourSaved, res.Message)
				assert.Regexp(t, `^tour_[0-9a-z]+$`, res.Tour.ID)
				assert.Equal(t, 1500, res.Tour.Price)
				assert.True(t, res.Tour.Available)
				assert.Equal(t, []string{"/images/a.jpg"}, res.Tour.Images)
				assert.NotEmpty(t, res.Tour.CreatedAt)
			},
		},
		{
			name:     "uploaded files replace payload images",
			req:      dto.SaveTourRequest{ID: "t1", Title: "Дербент", Images: []string{"/images/old.jpg"}},
			uploaded: []string{"/images/uploads/1-a.jpg"},
			setupMock: func() {
				mockRepo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tour model.Tour) (model.Tour, error) {
						return tour, nil
					})
			},
			check: func(t *testing.T, res dto.SaveTourResponse) {
				assert.Equal(t, "t1", res.Tour.ID)
				assert.Equal(t, []string{"/images/uploads/1-a.jpg"}, res.Tour.Images)
			},
		},
		{
			name: "save failure",
			req:  dto.SaveTourRequest{ID: "t1", Title: "Дербент"},
			setupMock: func() {
				mockRepo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(model.Tour{}, errors.New("disk full"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Save(context.Background(), tt.req, tt.uploaded)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestTourService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := tourMocks.NewMockTour(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	price := coerce.Int(2000)

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
	}{
		{
			name: "applies partial fields",
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), "t1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, apply func(*model.Tour)) (model.Tour, error) {
						tour := model.Tour{ID: "t1", Title: "Дербент", Price: 1500}
						apply(&tour)

						assert.Equal(t, 2000, tour.Price)
						assert.Equal(t, "Дербент", tour.Title)

						return tour, nil
					})
			},
		},
		{
			name: "not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), "t1", gomock.Any()).
					Return(model.Tour{}, repository.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "save failure",
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), "t1", gomock.Any()).
					Return(model.Tour{}, errors.New("disk full"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), "t1", dto.UpdateTourRequest{Price: &price})

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestTourService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := tourMocks.NewMockTour(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().Delete(gomock.Any(), "t1").Return(nil)
	assert.NoError(t, svc.Delete(context.Background(), "t1"))

	mockRepo.EXPECT().Delete(gomock.Any(), "missing").Return(repository.ErrNotFound)
	err := svc.Delete(context.Background(), "missing")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
