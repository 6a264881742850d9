package media

import (
	"errors"
	"net/http"

	"halachi/infras/otel"
	"halachi/internal/domains/media/service"
	"halachi/shared/constant"
	"halachi/shared/failure"
	"halachi/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Media
	otel    otel.Otel
}

func New(service service.Media, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Post("/upload", handler.UploadImage)
}

// UploadImage stores one image and returns its public URL.
// @Summary Upload an image
// @Description JPEG, PNG, GIF or WEBP up to 5 MB.
// @Tags Admin
// @Accept mpfd
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} dto.UploadImageResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/upload [post]
// @Security AdminPassword
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.InvalidRequestError)

		return
	}

	_, header, err := r.FormFile(constant.FormFieldImage)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("upload without image file")

		response.WithError(w, failure.NoFileError)

		return
	}

	res, err := handler.service.Upload(ctx, header)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
