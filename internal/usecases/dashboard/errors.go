package dashboard

import (
	"errors"
	"fmt"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/pkg/apiErrors"
)

// Erros específicos do contexto de análises
var (
	// Erros de validação
	ErrMissingRange  = errors.New("date range is required")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidPolicy = errors.New("invalid zero division policy")

	// Erros de análise
	ErrInvalidRange  = domain.ErrInvalidRange
	ErrRangeTooLarge = errors.New("range exceeds the bucket limit")

	// Erros de infraestrutura
	ErrGenerateID = errors.New("error generating report ID")
	ErrCachePurge = errors.New("error purging report cache")
)

// AnalyticsError é um erro com contexto adicional do widget
type AnalyticsError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Widget  string // Widget que falhou (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AnalyticsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

func NewAnalyticsError(err error, code string, widget string, details string) *AnalyticsError {
	return &AnalyticsError{
		Err:     err,
		Code:    code,
		Widget:  widget,
		Details: details,
	}
}

func invalidDate(widget, field, value string) *AnalyticsError {
	return NewAnalyticsError(ErrInvalidDate, apiErrors.ErrInvalidFormat, widget,
		fmt.Sprintf("campo %s com valor %q não é uma data válida", field, value))
}

func missingRange(widget string) *AnalyticsError {
	return NewAnalyticsError(ErrMissingRange, apiErrors.ErrMissingRequiredData, widget,
		"start_date e end_date são obrigatórios")
}

func invalidRange(widget string, err *domain.RangeError) *AnalyticsError {
	return NewAnalyticsError(err, apiErrors.ErrInvalidRange, widget, "")
}

func rangeTooLarge(widget string, units, limit int) *AnalyticsError {
	return NewAnalyticsError(ErrRangeTooLarge, apiErrors.ErrRangeTooLarge, widget,
		fmt.Sprintf("intervalo com %d buckets excede o limite de %d", units, limit))
}
