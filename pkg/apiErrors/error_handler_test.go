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
		name   string
		code   string
		status int
	}{
		{"Banco inacessível", ErrDatabaseOffline, http.StatusInternalServerError},
		{"Rota inexistente", ErrNotFound, http.StatusNotFound},
		{"Código desconhecido", "XYZ_999", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "Database error: connection refused")

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Database error: connection refused", body.Detail)
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, APIError{Code: ErrDatabaseOperation, Detail: "boom"}, FromError(errors.New("boom"), ErrDatabaseOperation))
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrDatabaseOperation).Code)
}
