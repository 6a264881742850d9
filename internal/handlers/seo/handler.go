package seo

import (
	"net/http"

	"halachi/infras/otel"
	"halachi/internal/domains/seo/model/dto"
	"halachi/internal/domains/seo/service"
	"halachi/shared/constant"
	"halachi/shared/validator"
	"halachi/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.SEO
	otel    otel.Otel
}

func New(service service.SEO, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/seo", handler.GetSEO)
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Post("/seo", handler.UpdateSEO)
}

// GetSEO returns the meta tags of every page.
// @Summary Get SEO settings
// @Tags SEO
// @Produce json
// @Success 200 {object} model.SEO
// @Router /api/seo [get]
func (handler *Handler) GetSEO(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSEO")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Get(ctx))
}

// UpdateSEO merges page fields into the stored settings.
// @Summary Update SEO settings
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body map[string]dto.UpdatePageRequest true "Fields per page"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/seo [post]
// @Security AdminPassword
func (handler *Handler) UpdateSEO(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSEO")
	defer scope.End()

	req := dto.UpdateSEORequest{}
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

	response.WithMessage(w, http.StatusOK, service.MessageSEOUpdated)
}
