package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/scheduler"
)

// purgeStub evita chamadas ao mock depois do fim do teste, já que a limpeza manual roda em goroutine
type purgeStub struct{}

func (purgeStub) InvalidateCache(ctx context.Context) (int, error) {
	return 0, nil
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name           string
		cronType       string
		withService    bool
		expectedStatus int
	}{
		{
			name:           "Limpeza do cache",
			cronType:       CronJobTypeCachePurge,
			withService:    true,
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "Todas as crons",
			cronType:       CronJobTypeAll,
			withService:    true,
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "Serviço indisponível",
			cronType:       CronJobTypeCachePurge,
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "Tipo inválido",
			cronType:       "meta",
			withService:    true,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := CronJobServices{}
			if tt.withService {
				services.CachePurgeService = scheduler.NewCachePurgeService(purgeStub{}, &config.Config{})
			}

			rt := router.New(router.WithRoutes(CronJobs(services)...))
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/"+tt.cronType+"/run", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	cfg := &config.Config{CachePurge: config.CachePurge{CronSchedule: "0 3 * * *"}}
	services := CronJobServices{CachePurgeService: scheduler.NewCachePurgeService(purgeStub{}, cfg)}
	rt := router.New(router.WithRoutes(CronJobs(services)...))

	t.Run("Status de uma cron", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/cache-purge/status", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "0 3 * * *", body["sync_cron"])
		assert.Equal(t, false, body["sync_running"])
	})

	t.Run("Status de todas", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/all/status", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "0 3 * * *", body[CronJobTypeCachePurge]["sync_cron"])
	})

	t.Run("Tipo inválido", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/meta/status", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealthcheckHandler(t *testing.T) {
	rt := router.New(router.WithRoutes(Healthcheck()...))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["time"])
}
