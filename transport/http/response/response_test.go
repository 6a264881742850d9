package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"halachi/shared/failure"
	"halachi/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, []string{"a", "b"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `["a","b"]`, rec.Body.String())
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithMessage(rec, http.StatusOK, "Тур удалён")

	assert.JSONEq(t, `{"success":true,"message":"Тур удалён"}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "failure",
			err:      failure.NotFound("Тур не найден"),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Тур не найден"}`,
		},
		{
			name:     "unauthorized",
			err:      failure.UnauthorizedError,
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":"Unauthorized"}`,
		},
		{
			name:     "plain error is not leaked",
			err:      errors.New("open data/database.json: read-only file system"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Ошибка сохранения"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
