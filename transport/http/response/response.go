package response

import (
	"encoding/json"
	"net/http"

	"halachi/shared/constant"
	"halachi/shared/failure"
	"halachi/shared/logger"
)

type Error struct {
	Error string `json:"error"`
}

type Message struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WithMessage sends the {"success": true, "message": ...} acknowledgement.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Success: true, Message: message})
}

// WithJSON sends the payload as is, without an envelope.
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, jsonPayload)
}

// WithError sends {"error": ...} with the status carried by the failure.
// Errors that are not a failure are reported as a generic save error.
func WithError(writer http.ResponseWriter, err error) {
	response(writer, failure.GetCode(err), Error{Error: failure.Message(err)})
}

// WithUnauthorized sends the admin gate rejection.
func WithUnauthorized(writer http.ResponseWriter) {
	WithError(writer, failure.UnauthorizedError)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	response(writer, http.StatusTooManyRequests, Error{Error: constant.ResponseErrorRequestLimitExceeded})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	response(writer, http.StatusServiceUnavailable, Error{Error: constant.ResponseErrorPrepareShutdown})
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		http.Error(writer, constant.ResponseErrorSave, http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
