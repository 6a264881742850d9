package booking

import (
	"mime"
	"net/http"

	"halachi/infras/otel"
	"halachi/internal/domains/booking/model/dto"
	"halachi/internal/domains/booking/service"
	"halachi/shared/constant"
	"halachi/shared/failure"
	"halachi/shared/validator"
	"halachi/transport/http/middleware"
	"halachi/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Booking
	middleware middleware.AppMiddleware
	otel       otel.Otel
}

func New(service service.Booking, middleware middleware.AppMiddleware, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.With(handler.middleware.RateLimit()).Post("/booking", handler.SubmitBooking)
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Get("/bookings", handler.GetBookings)
}

// SubmitBooking stores a booking request from the site form.
// @Summary Submit a booking
// @Description Any JSON object or url-encoded form is accepted. id, created_at and status are assigned by the server.
// @Tags Booking
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body object true "Booking form fields"
// @Success 200 {object} dto.SubmitBookingResponse
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/booking [post]
func (handler *Handler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBooking")
	defer scope.End()

	r.Body = http.MaxBytesReader(w, r.Body, constant.RequestMaxMemory)

	req := dto.SubmitBookingRequest{}

	if isJSON(r) {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Warn().Err(err).Msg("rejected booking body")

			response.WithError(w, err)

			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			scope.TraceError(err)
			log.Warn().Err(err).Msg("failed to parse booking form")

			response.WithError(w, failure.InvalidRequestError)

			return
		}

		req.FromForm(r.PostForm)
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking stored " + res.BookingID)

	response.WithJSON(w, http.StatusOK, res)
}

// GetBookings lists every booking, newest first.
// @Summary List bookings
// @Tags Admin
// @Produce json
// @Success 200 {array} object
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/bookings [get]
// @Security AdminPassword
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	bookings, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// isJSON treats a missing content type as JSON.
func isJSON(r *http.Request) bool {
	contentType := r.Header.Get(constant.RequestHeaderContentType)
	if contentType == constant.Empty {
		return true
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == constant.ContentTypeJSON
}
