package hotel

import (
	"net/http"

	"halachi/infras/otel"
	"halachi/internal/domains/hotel/model/dto"
	"halachi/internal/domains/hotel/service"
	"halachi/shared/constant"
	"halachi/shared/validator"
	"halachi/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hotel
	otel    otel.Otel
}

func New(service service.Hotel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/hotel", handler.GetHotel)
	router.Get("/config", handler.GetConfig)

	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
	})
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Post("/hotel", handler.UpdateHotel)
	router.Post("/visitor-count", handler.SetVisitorCount)

	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Put("/{id}", handler.UpdateRoom)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
	})
}

// GetHotel returns the hotel, or {} when the store has none.
// @Summary Get hotel information
// @Tags Hotel
// @Produce json
// @Success 200 {object} model.Hotel
// @Router /api/hotel [get]
func (handler *Handler) GetHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotel")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Get(ctx))
}

// GetConfig returns the site name and visitor counter.
// @Summary Get site configuration
// @Tags Hotel
// @Produce json
// @Success 200 {object} dto.SiteConfigResponse
// @Router /api/config [get]
func (handler *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConfig")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.GetConfig(ctx))
}

// GetRooms lists the hotel rooms.
// @Summary List rooms
// @Tags Hotel
// @Produce json
// @Success 200 {array} model.Room
// @Router /api/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.GetRooms(ctx))
}

// GetRoomByID returns one room.
// @Summary Get a room
// @Tags Hotel
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} model.Room
// @Failure 404 {object} response.Error
// @Router /api/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	room, err := handler.service.GetRoom(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateHotel merges hotel fields. A rooms array replaces all rooms.
// @Summary Update hotel information
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.UpdateHotelRequest true "Fields to change"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/hotel [post]
// @Security AdminPassword
func (handler *Handler) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHotel")
	defer scope.End()

	req := dto.UpdateHotelRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, service.MessageHotelUpdated)
}

// SetVisitorCount overwrites the visitor counter.
// @Summary Set the visitor counter
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.VisitorCountRequest true "New value"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/visitor-count [post]
// @Security AdminPassword
func (handler *Handler) SetVisitorCount(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetVisitorCount")
	defer scope.End()

	req := dto.VisitorCountRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetVisitorCount(ctx, req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, service.MessageCounterUpdated)
}

// CreateRoom adds a room to the hotel.
// @Summary Add a room
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.SaveRoomRequest true "Room"
// @Success 200 {object} dto.SaveRoomResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/rooms [post]
// @Security AdminPassword
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.SaveRoomRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateRoom(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateRoom merges the given fields into a room.
// @Summary Update a room
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Fields to change"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/rooms/{id} [put]
// @Security AdminPassword
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	req := dto.UpdateRoomRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateRoom(ctx, chi.URLParam(r, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, service.MessageRoomUpdated)
}

// DeleteRoom removes a room.
// @Summary Delete a room
// @Tags Admin
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/rooms/{id} [delete]
// @Security AdminPassword
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	if err := handler.service.DeleteRoom(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, service.MessageRoomDeleted)
}
