package middleware

import (
	"mime"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/pkg/apiErrors"
)

// DefaultMaxBodyBytes limita o corpo das requisições de análise (vendas, estoque e contas)
const DefaultMaxBodyBytes int64 = 32 << 20

// JSONBody exige Content-Type application/json e limita o tamanho do corpo.
// maxBytes <= 0 usa DefaultMaxBodyBytes.
func JSONBody(maxBytes int64) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil || mediaType != "application/json" {
				logrus.WithField("content_type", r.Header.Get("Content-Type")).Warn("Requisição sem corpo JSON")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Content-Type deve ser application/json", nil)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
