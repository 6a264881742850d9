package tour

import (
	"mime"
	"net/http"

	"halachi/infras/otel"
	mediaService "halachi/internal/domains/media/service"
	"halachi/internal/domains/tour/model/dto"
	"halachi/internal/domains/tour/service"
	"halachi/shared/constant"
	"halachi/shared/failure"
	"halachi/shared/validator"
	"halachi/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Tour
	media   mediaService.Media
	otel    otel.Otel
}

func New(service service.Tour, media mediaService.Media, otel otel.Otel) Handler {
	return Handler{
		service: service,
		media:   media,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tours", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTours)
		routerGroup.Get("/{id}", handler.GetTourByID)
	})
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/tours", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SaveTour)
		routerGroup.Put("/{id}", handler.UpdateTour)
		routerGroup.Delete("/{id}", handler.DeleteTour)
	})
}

// GetTours lists the tours shown on the site.
// @Summary List tours
// @Description Unavailable tours are hidden unless available=false is passed.
// @Tags Tour
// @Produce json
// @Param category query string false "Category id"
// @Param featured query string false "Only featured tours when true"
// @Param available query string false "Include unavailable tours when false"
// @Success 200 {array} model.Tour
// @Router /api/tours [get]
func (handler *Handler) GetTours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTours")
	defer scope.End()

	query := r.URL.Query()
	req := dto.GetToursRequest{
		Category:  query.Get(constant.RequestParamCategory),
		Featured:  query.Get(constant.RequestParamFeatured),
		Available: query.Get(constant.RequestParamAvail),
	}

	tours, err := handler.service.GetAll(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tours")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, tours)
}

// GetTourByID returns one tour.
// @Summary Get a tour
// @Tags Tour
// @Produce json
// @Param id path string true "Tour ID"
// @Success 200 {object} model.Tour
// @Failure 404 {object} response.Error
// @Router /api/tours/{id} [get]
func (handler *Handler) GetTourByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTourByID")
	defer scope.End()

	tour, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, tour)
}

// SaveTour creates a tour or replaces the one with the same id.
// @Summary Create or replace a tour
// @Description Accepts JSON, or a multipart form with up to five image files in "images".
// @Tags Admin
// @Accept json,mpfd
// @Produce json
// @Param request body dto.SaveTourRequest true "Tour"
// @Success 200 {object} dto.SaveTourResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/tours [post]
// @Security AdminPassword
func (handler *Handler) SaveTour(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveTour")
	defer scope.End()

	req := dto.SaveTourRequest{}

	var uploaded []string

	if isMultipart(r) {
		if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse multipart form")

			response.WithError(w, failure.InvalidRequestError)

			return
		}

		if err := req.FromForm(r.MultipartForm); err != nil {
			scope.TraceError(err)
			log.Warn().Err(err).Msg("failed to read tour form")

			response.WithError(w, err)

			return
		}

		if err := validator.ValidateStruct(&req); err != nil {
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		if files := r.MultipartForm.File[constant.FormFieldImages]; len(files) > 0 {
			urls, err := handler.media.UploadMany(ctx, files)
			if err != nil {
				scope.TraceError(err)
				log.Error().Err(err).Msg("failed to upload tour images")

				response.WithError(w, err)

				return
			}

			uploaded = urls
		}
	} else if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Save(ctx, req, uploaded)
	if err != nil {
		scope.TraceError(err)

		if len(uploaded) > 0 {
			log.Warn().Err(err).Strs("images", uploaded).Msg("tour not saved, removing its uploaded images")
			handler.media.Discard(ctx, uploaded)
		}

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tour saved " + res.Tour.ID)

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateTour merges the given fields into a tour.
// @Summary Update a tour
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Tour ID"
// @Param request body dto.UpdateTourRequest true "Fields to change"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/tours/{id} [put]
// @Security AdminPassword
func (handler *Handler) UpdateTour(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTour")
	defer scope.End()

	req := dto.UpdateTourRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, chi.URLParam(r, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, service.MessageTourUpdated)
}

// DeleteTour removes a tour.
// @Summary Delete a tour
// @Tags Admin
// @Produce json
// @Param id path string true "Tour ID"
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/tours/{id} [delete]
// @Security AdminPassword
func (handler *Handler) DeleteTour(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTour")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, service.MessageTourDeleted)
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get(constant.RequestHeaderContentType))

	return err == nil && mediaType == constant.ContentTypeMultipartFormData
}
