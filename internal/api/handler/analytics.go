package handler

import (
	"context"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/dashboard"
	"github.com/vfg2006/retail-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/retail-analytics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// analyticsHandler decodifica o corpo, chama o widget e devolve o relatório
func analyticsHandler[Req any, Resp any](widget string, call func(ctx context.Context, request *Req) (Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("widget", widget)
		logger.Debug("INIT - Analytics")

		request := new(Req)
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			var maxBytesErr *http.MaxBytesError
			switch {
			case errors.Is(err, io.EOF):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Corpo da requisição vazio", widgetDetails(widget))
			case errors.As(err, &maxBytesErr):
				apiErrors.WriteError(w, apiErrors.ErrBodyTooLarge, "Corpo da requisição acima do limite", widgetDetails(widget))
			default:
				logger.WithError(err).Warn("Corpo da requisição inválido")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "JSON inválido", widgetDetails(widget))
			}
			return
		}

		response, err := call(r.Context(), request)
		if err != nil {
			writeAnalyticsError(w, logger, widget, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta do relatório")
		}
	}
}

func widgetDetails(widget string) any {
	if widget == "" {
		return nil
	}
	return map[string]string{"widget": widget}
}

func writeAnalyticsError(w http.ResponseWriter, logger log.Logger, widget string, err error) {
	var analyticsErr *dashboard.AnalyticsError
	if errors.As(err, &analyticsErr) {
		if analyticsErr.Widget != "" {
			widget = analyticsErr.Widget
		}
		logger.WithError(err).WithField("code", analyticsErr.Code).Warn("Relatório rejeitado")
		apiErrors.WriteError(w, analyticsErr.Code, analyticsErr.Error(), widgetDetails(widget))
		return
	}

	logger.WithError(err).Error("Erro ao montar relatório")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar relatório", widgetDetails(widget))
}

// InvalidateCache apaga os relatórios em cache
func InvalidateCache(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - InvalidateCache")

		deleted, err := service.InvalidateCache(r.Context())
		if err != nil {
			writeAnalyticsError(w, log.ForContext(r.Context()), "", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message":       "Cache de relatórios limpo com sucesso",
			"deleted_count": deleted,
		})
	}
}
