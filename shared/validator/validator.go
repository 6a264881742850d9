package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"halachi/shared/failure"

	val "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var validate *val.Validate

// mimetypes=<space separated list> checks a sniffed content type string.
func registerMimetypeValidation(field val.FieldLevel) bool {
	contentType, ok := field.Field().Interface().(string)
	if !ok || contentType == "" {
		return false
	}

	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, contentType)
}

// extensions=<space separated list> checks a lower-cased file extension.
func registerExtensionValidation(field val.FieldLevel) bool {
	ext, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	allowed := strings.Split(field.Param(), " ")

	return slices.Contains(allowed, strings.ToLower(ext))
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("mimetypes", registerMimetypeValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("extensions", registerExtensionValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		log.Warn().Err(err).Msg("failed to decode request body")

		return fmt.Errorf("%w: %w", failure.InvalidRequestError, err)
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
