package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "intervalo inválido", code: ErrInvalidDateRange, wantStatus: http.StatusBadRequest},
		{name: "esquema divergente", code: ErrSchemaMismatch, wantStatus: http.StatusInternalServerError},
		{name: "banco indisponível", code: ErrDatabaseOperation, wantStatus: http.StatusServiceUnavailable},
		{name: "sessão", code: ErrSessionNotFound, wantStatus: http.StatusNotFound},
		{name: "código desconhecido", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "start_date"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
			assert.Equal(t, map[string]any{"campo": "start_date"}, body.Details)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, APIError{Code: ErrInternalServer, Message: "Erro desconhecido"}, FromError(nil, ErrInvalidRequest))
	assert.Equal(t, APIError{Code: ErrInvalidRequest, Message: "boom"}, FromError(errors.New("boom"), ErrInvalidRequest))
}
