package apiErrors

import (
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
		{"Intervalo inválido", ErrInvalidRange, http.StatusUnprocessableEntity},
		{"Formato inválido", ErrInvalidFormat, http.StatusBadRequest},
		{"Corpo acima do limite", ErrBodyTooLarge, http.StatusRequestEntityTooLarge},
		{"Série grande demais", ErrRangeTooLarge, http.StatusUnprocessableEntity},
		{"Código desconhecido vira 500", "XYZ_999", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "start"})

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}
