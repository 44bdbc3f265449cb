package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		wantStatus int
	}{
		{
			name:       "parâmetro obrigatório",
			code:       ErrMissingRequiredData,
			message:    "from_date and to_date are required",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "erro de banco",
			code:       ErrDatabaseOperation,
			message:    "failed to load report",
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "código desconhecido",
			code:       "XXX_999",
			message:    "boom",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, tt.message)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"error":"`+tt.message+`"}`, rec.Body.String())
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, APIError{Code: ErrInvalidFormat, Message: "bad date"}, FromError(errors.New("bad date"), ErrInvalidFormat))
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrInvalidFormat).Code)
}
