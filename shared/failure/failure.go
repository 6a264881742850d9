package failure

import (
	"errors"
	"net/http"

	"halachi/shared/constant"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var UnauthorizedError = &Failure{Code: http.StatusUnauthorized, Message: constant.ResponseErrorUnauthorized}
var NoFileError = &Failure{Code: http.StatusBadRequest, Message: "Файл не загружен"}
var OnlyImagesError = &Failure{Code: http.StatusBadRequest, Message: "Только изображения разрешены!"}
var FileTooLargeError = &Failure{Code: http.StatusBadRequest, Message: "Файл слишком большой"}
var InvalidRequestError = &Failure{Code: http.StatusBadRequest, Message: "Некорректные данные запроса"}
var SaveError = &Failure{Code: http.StatusInternalServerError, Message: constant.ResponseErrorSave}

// Error returns the message of the failure.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(message string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: message,
	}
}

// Conflict returns a new Failure for requests that contradict the stored state.
// The site reports these as bad requests.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// Message returns the client-facing message for err. Errors that are not a Failure
// never leak their text.
func Message(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return SaveError.Message
}
