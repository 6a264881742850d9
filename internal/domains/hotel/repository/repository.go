package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"

	"halachi/infras/filestore"
	"halachi/infras/otel"
	"halachi/internal/domains/hotel/model"
	"halachi/shared/constant"
)

var (
	ErrHotelMissing = errors.New("hotel is missing from the store")
	ErrNoRooms      = errors.New("hotel has no rooms")
	ErrRoomNotFound = errors.New("room not found")
)

type Hotel interface {
	Get(ctx context.Context) *model.Hotel
	// Merge applies the change to the stored hotel, creating an empty one first if needed.
	Merge(ctx context.Context, apply func(hotel *model.Hotel)) error
	SetVisitorCount(ctx context.Context, count int) error

	GetRooms(ctx context.Context) []model.Room
	GetRoom(ctx context.Context, id string) (model.Room, error)
	AddRoom(ctx context.Context, room model.Room) error
	UpdateRoom(ctx context.Context, id string, apply func(room *model.Room)) error
	DeleteRoom(ctx context.Context, id string) error
}

type repositoryImpl struct {
	store filestore.Store
	otel  otel.Otel
}

func New(store filestore.Store, otel otel.Otel) Hotel {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

func (r *repositoryImpl) Get(ctx context.Context) *model.Hotel {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".hotel.Get")
	defer scope.End()

	return r.store.Load(ctx).Hotel
}

func (r *repositoryImpl) Merge(ctx context.Context, apply func(hotel *model.Hotel)) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".hotel.Merge")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return filestore.Mutate(ctx, r.store, func(doc *filestore.Document) error {
		if doc.Hotel == nil {
			doc.Hotel = &model.Hotel{}
		}

		apply(doc.Hotel)

		return nil
	})
}

func (r *repositoryImpl) SetVisitorCount(ctx context.Context, count int) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".hotel.SetVisitorCount")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return filestore.Mutate(ctx, r.store, func(doc *filestore.Document) error {
		if doc.Hotel == nil {
			return ErrHotelMissing
		}

		doc.Hotel.SetVisitors(count)

		return nil
	})
}

func (r *repositoryImpl) GetRooms(ctx context.Context) []model.Room {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetAll")
	defer scope.End()

	hotel := r.store.Load(ctx).Hotel
	if hotel == nil || hotel.Rooms == nil {
		return []model.Room{}
	}

	return hotel.Rooms
}

func (r *repositoryImpl) GetRoom(ctx context.Context, id string) (model.Room, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Get")
	defer scope.End()

	hotel := r.store.Load(ctx).Hotel
	if hotel == nil {
		return model.Room{}, ErrRoomNotFound
	}

	idx := hotel.RoomIndex(id)
	if idx < 0 {
		return model.Room{}, ErrRoomNotFound
	}

	return hotel.Rooms[idx], nil
}

func (r *repositoryImpl) AddRoom(ctx context.Context, room model.Room) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Add")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return filestore.Mutate(ctx, r.store, func(doc *filestore.Document) error {
		if doc.Hotel == nil {
			return ErrHotelMissing
		}

		doc.Hotel.Rooms = append(doc.Hotel.Rooms, room)

		return nil
	})
}

func (r *repositoryImpl) UpdateRoom(ctx context.Context, id string, apply func(room *model.Room)) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return filestore.Mutate(ctx, r.store, func(doc *filestore.Document) error {
		if doc.Hotel == nil || doc.Hotel.Rooms == nil {
			return ErrNoRooms
		}

		idx := doc.Hotel.RoomIndex(id)
		if idx < 0 {
			return ErrRoomNotFound
		}

		apply(&doc.Hotel.Rooms[idx])

		return nil
	})
}

func (r *repositoryImpl) DeleteRoom(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return filestore.Mutate(ctx, r.store, func(doc *filestore.Document) error {
		if doc.Hotel == nil || doc.Hotel.Rooms == nil {
			return ErrNoRooms
		}

		idx := doc.Hotel.RoomIndex(id)
		if idx < 0 {
			return ErrRoomNotFound
		}

		doc.Hotel.Rooms = append(doc.Hotel.Rooms[:idx], doc.Hotel.Rooms[idx+1:]...)

		return nil
	})
}
