package site

import (
	"net/http"

	"halachi/infras/otel"
	"halachi/internal/domains/site/service"
	"halachi/shared/constant"
	"halachi/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Site
	otel    otel.Otel
}

func New(service service.Site, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/data", handler.GetData)
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Get("/stats", handler.GetStats)
}

// GetData returns the whole site document.
// @Summary Get all site data
// @Tags Site
// @Produce json
// @Success 200 {object} object
// @Router /api/data [get]
func (handler *Handler) GetData(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetData")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.GetData(ctx))
}

// GetStats returns the dashboard counters.
// @Summary Get dashboard statistics
// @Tags Admin
// @Produce json
// @Success 200 {object} model.Stats
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/stats [get]
// @Security AdminPassword
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.service.GetStats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to collect stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}
