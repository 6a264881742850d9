package review

import (
	"net/http"

	"halachi/infras/otel"
	"halachi/internal/domains/review/model/dto"
	"halachi/internal/domains/review/service"
	"halachi/shared/constant"
	"halachi/shared/validator"
	"halachi/transport/http/middleware"
	"halachi/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Review
	middleware middleware.AppMiddleware
	otel       otel.Otel
}

func New(service service.Review, middleware middleware.AppMiddleware, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetApprovedReviews)
		routerGroup.With(handler.middleware.RateLimit()).Post("/", handler.SubmitReview)
	})
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetReviews)
		routerGroup.Post("/", handler.CreateReview)
		routerGroup.Put("/{id}/approve", handler.ApproveReview)
		routerGroup.Put("/{id}/reject", handler.RejectReview)
		routerGroup.Delete("/{id}", handler.DeleteReview)
	})
}

// GetApprovedReviews lists reviews cleared for the site.
// @Summary List approved reviews
// @Tags Review
// @Produce json
// @Success 200 {array} model.Review
// @Router /api/reviews [get]
func (handler *Handler) GetApprovedReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetApprovedReviews")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.GetApproved(ctx))
}

// SubmitReview stores a guest review for moderation.
// @Summary Submit a review
// @Tags Review
// @Accept json
// @Produce json
// @Param request body dto.SubmitReviewRequest true "Review"
// @Success 200 {object} dto.SaveReviewResponse
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/reviews [post]
func (handler *Handler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitReview")
	defer scope.End()

	req := dto.SubmitReviewRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("rejected review submission")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetReviews lists all reviews, optionally narrowed to one status.
// @Summary List reviews for moderation
// @Tags Admin
// @Produce json
// @Param status query string false "pending, approved or rejected"
// @Success 200 {array} model.Review
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /api/admin/reviews [get]
// @Security AdminPassword
func (handler *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	req := dto.GetReviewsRequest{Status: r.URL.Query().Get(constant.RequestParamStatus)}
	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, handler.service.GetAll(ctx, req))
}

// CreateReview adds a review on behalf of a guest.
// @Summary Create a review
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Review"
// @Success 200 {object} dto.SaveReviewResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/reviews [post]
// @Security AdminPassword
func (handler *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReview")
	defer scope.End()

	req := dto.CreateReviewRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ApproveReview publishes a review. Approving twice is allowed.
// @Summary Approve a review
// @Tags Admin
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/reviews/{id}/approve [put]
// @Security AdminPassword
func (handler *Handler) ApproveReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveReview")
	defer scope.End()

	if err := handler.service.Approve(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, service.MessageReviewApproved)
}

// RejectReview hides a review. Rejecting twice is allowed.
// @Summary Reject a review
// @Tags Admin
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/reviews/{id}/reject [put]
// @Security AdminPassword
func (handler *Handler) RejectReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectReview")
	defer scope.End()

	if err := handler.service.Reject(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, service.MessageReviewRejected)
}

// DeleteReview removes a review.
// @Summary Delete a review
// @Tags Admin
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/reviews/{id} [delete]
// @Security AdminPassword
func (handler *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReview")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, service.MessageReviewDeleted)
}
