package category

import (
	"net/http"

	"halachi/infras/otel"
	"halachi/internal/domains/category/model/dto"
	"halachi/internal/domains/category/service"
	"halachi/shared/constant"
	"halachi/shared/validator"
	"halachi/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Category
	otel    otel.Otel
}

func New(service service.Category, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/categories", handler.GetCategories)
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/categories", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SaveCategory)
		routerGroup.Delete("/{id}", handler.DeleteCategory)
	})
}

// GetCategories lists the tour categories in their stored order.
// @Summary List categories
// @Tags Category
// @Produce json
// @Success 200 {array} model.Category
// @Router /api/categories [get]
func (handler *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategories")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.GetAll(ctx))
}

// SaveCategory creates a category or replaces the one with the same id.
// @Summary Create or replace a category
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.SaveCategoryRequest true "Category"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/categories [post]
// @Security AdminPassword
func (handler *Handler) SaveCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveCategory")
	defer scope.End()

	req := dto.SaveCategoryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if _, err := handler.service.Save(ctx, req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, service.MessageCategorySaved)
}

// DeleteCategory removes a category that no tour uses.
// @Summary Delete a category
// @Tags Admin
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error "Category is used by a tour"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/categories/{id} [delete]
// @Security AdminPassword
func (handler *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCategory")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, service.MessageCategoryDeleted)
}
