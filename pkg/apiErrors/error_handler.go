package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrBodyTooLarge        = "VAL_004" // Corpo da requisição acima do limite

	// Erros de análise (3000-3999)
	ErrInvalidRange  = "ANL_001" // Intervalo de datas invertido em modo estrito
	ErrUnknownWidget = "ANL_002" // Widget inexistente
	ErrRangeTooLarge = "ANL_003" // Série com buckets demais

	// Erros do servidor (5000-5999)
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrCacheOperation  = "SRV_002" // Erro de operação no cache
	ErrServiceDisabled = "SRV_003" // Serviço desabilitado por configuração
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrBodyTooLarge:        http.StatusRequestEntityTooLarge,
	ErrInvalidRange:        http.StatusUnprocessableEntity,
	ErrUnknownWidget:       http.StatusNotFound,
	ErrRangeTooLarge:       http.StatusUnprocessableEntity,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrCacheOperation:      http.StatusInternalServerError,
	ErrServiceDisabled:     http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP de um código; códigos desconhecidos viram 500
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}
