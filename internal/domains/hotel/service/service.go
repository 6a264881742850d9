package service

import (
	"context"
	"errors"

	"halachi/infras/otel"
	"halachi/internal/domains/hotel/model"
	"halachi/internal/domains/hotel/model/dto"
	"halachi/internal/domains/hotel/repository"
	"halachi/shared/constant"
	"halachi/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	MessageHotelUpdated   = "Информация о гостинице обновлена"
	MessageHotelNotFound  = "Гостиница не найдена"
	MessageCounterUpdated = "Счётчик обновлён"
	MessageRoomAdded      = "Номер добавлен"
	MessageRoomUpdated    = "Номер обновлён"
	MessageRoomDeleted    = "Номер удалён"
	MessageRoomNotFound   = "Номер не найден"
	MessageNoRooms        = "Номера не найдены"
)

type Hotel interface {
	Get(ctx context.Context) model.Hotel
	GetConfig(ctx context.Context) dto.SiteConfigResponse
	Update(ctx context.Context, req dto.UpdateHotelRequest) error
	SetVisitorCount(ctx context.Context, req dto.VisitorCountRequest) error

	GetRooms(ctx context.Context) []model.Room
	GetRoom(ctx context.Context, id string) (model.Room, error)
	CreateRoom(ctx context.Context, req dto.SaveRoomRequest) (dto.SaveRoomResponse, error)
	UpdateRoom(ctx context.Context, id string, req dto.UpdateRoomRequest) error
	DeleteRoom(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Hotel
	otel otel.Otel
}

func New(repo repository.Hotel, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Get returns an empty hotel when the store has none.
func (s *serviceImpl) Get(ctx context.Context) model.Hotel {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Get")
	defer scope.End()

	if hotel := s.repo.Get(ctx); hotel != nil {
		return *hotel
	}

	return model.Hotel{}
}

func (s *serviceImpl) GetConfig(ctx context.Context) (res dto.SiteConfigResponse) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.GetConfig")
	defer scope.End()

	res.FromModel(s.repo.Get(ctx))

	return res
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHotelRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = s.repo.Merge(ctx, req.Apply); err != nil {
		log.Error().Err(err).Msg("failed to update hotel")

		return err
	}

	return nil
}

func (s *serviceImpl) SetVisitorCount(ctx context.Context, req dto.VisitorCountRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.SetVisitorCount")
	defer scope.End()
	defer scope.TraceIfError(&err)

	count := 0
	if v := req.Count; v != nil {
		count = int(*v)
	}

	err = s.repo.SetVisitorCount(ctx, count)
	if errors.Is(err, repository.ErrHotelMissing) {
		return failure.BadRequestFromString(MessageHotelNotFound)
	}

	if err != nil {
		log.Error().Err(err).Int("count", count).Msg("failed to set visitor count")

		return err
	}

	return nil
}

func (s *serviceImpl) GetRooms(ctx context.Context) []model.Room {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()

	return s.repo.GetRooms(ctx)
}

func (s *serviceImpl) GetRoom(ctx context.Context, id string) (room model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	room, err = s.repo.GetRoom(ctx, id)
	if err != nil {
		return room, roomFailure(err)
	}

	return room, nil
}

func (s *serviceImpl) CreateRoom(ctx context.Context, req dto.SaveRoomRequest) (res dto.SaveRoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	room := req.ToModel()

	if err = s.repo.AddRoom(ctx, room); err != nil {
		log.Error().Err(err).Str("id", room.ID).Msg("failed to add room")

		return res, roomFailure(err)
	}

	res.Success = true
	res.Message = MessageRoomAdded
	res.Room = room

	return res, nil
}

func (s *serviceImpl) UpdateRoom(ctx context.Context, id string, req dto.UpdateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = s.repo.UpdateRoom(ctx, id, req.Apply); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update room")

		return roomFailure(err)
	}

	return nil
}

func (s *serviceImpl) DeleteRoom(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = s.repo.DeleteRoom(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete room")

		return roomFailure(err)
	}

	return nil
}

func roomFailure(err error) error {
	switch {
	case errors.Is(err, repository.ErrRoomNotFound):
		return failure.NotFound(MessageRoomNotFound)
	case errors.Is(err, repository.ErrNoRooms):
		return failure.NotFound(MessageNoRooms)
	case errors.Is(err, repository.ErrHotelMissing):
		return failure.BadRequestFromString(MessageHotelNotFound)
	default:
		return err
	}
}
