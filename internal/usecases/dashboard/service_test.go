package dashboard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-analytics-api/infrastructure/cache"
	"github.com/vfg2006/retail-analytics-api/infrastructure/cache/mocks"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

// Data de referência dos testes: 15 de março de 2024, meio-dia
var referenceNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		App: config.App{Timezone: "UTC"},
		Analytics: config.Analytics{
			BonusFullRate:          0.05,
			BonusHalfRate:          0.025,
			GoalThreshold:          100,
			SlowTurnoverThreshold:  10,
			TurnoverWindowDays:     30,
			StaleDays:              30,
			InventoryEvolutionDays: 30,
			CashFlowDays:           30,
			TopProductsLimit:       10,
			DefaultGranularity:     "day",
		},
		Cache: config.Cache{KeyPrefix: "analytics:"},
	}
}

func newTestService(reportCache cache.ReportCache) *Service {
	return NewServiceWithClock(testConfig(), reportCache, func() time.Time { return referenceNow })
}

func sale(id, timestamp, seller string, total int64) domain.SaleRecord {
	return domain.SaleRecord{
		ID:            id,
		Timestamp:     timestamp,
		SellerRef:     seller,
		PaymentMethod: "pix",
		Total:         decimal.NewFromInt(total),
		Items: []domain.SaleLineItem{
			{ProductCode: "P1", Quantity: 1, UnitPrice: decimal.NewFromInt(total), Subtotal: decimal.NewFromInt(total)},
		},
	}
}

func salesOn(day string, count int, total int64, seller string) []domain.SaleRecord {
	sales := make([]domain.SaleRecord, 0, count)
	for i := 0; i < count; i++ {
		sales = append(sales, sale(fmt.Sprintf("%s-%s-%d", seller, day, i), day+"T10:00:00Z", seller, total))
	}
	return sales
}

func analyticsCode(t *testing.T, err error) string {
	t.Helper()
	var analyticsErr *AnalyticsError
	require.True(t, errors.As(err, &analyticsErr), "erro inesperado: %v", err)
	return analyticsErr.Code
}

func TestSalesEvolution_DezVendasEmTresDias(t *testing.T) {
	service := newTestService(cache.NoopReportCache{})

	sales := append(salesOn("2024-03-01", 4, 100, "S1"), salesOn("2024-03-03", 3, 50, "S1")...)
	sales = append(sales, salesOn("2024-03-05", 3, 200, "S1")...)
	// Fora do intervalo e com data inválida
	sales = append(sales, sale("X1", "2024-03-06T10:00:00Z", "S1", 999), sale("X2", "ontem", "S1", 999))

	report, err := service.SalesEvolution(context.Background(), &SalesEvolutionRequest{
		Sales: sales,
		Range: DateRange{Start: "2024-03-01", End: "2024-03-05"},
	})

	require.NoError(t, err)
	assert.Equal(t, WidgetSalesEvolution, report.Widget)
	assert.Len(t, report.ReportID, 10)
	require.Len(t, report.Rows, 5)

	expectedEntries := []int{4, 0, 3, 0, 3}
	for i, row := range report.Rows {
		assert.Equal(t, expectedEntries[i], row["entries"], "bucket %d", i)
	}

	assert.Equal(t, "2024-03-01", report.Rows[0]["label"])
	assert.Equal(t, 400.0, report.Rows[0][domain.MetricRevenue])
	assert.Equal(t, 100.0, report.Rows[0][domain.MetricAverageTicket])
	assert.Equal(t, 0.0, report.Rows[1][domain.MetricRevenue])
	assert.Equal(t, 0.0, report.Rows[1][domain.MetricAverageTicket])

	assert.Equal(t, 10, report.Summary[domain.MetricSales])
	assert.Equal(t, 1150.0, report.Summary[domain.MetricRevenue])
	assert.Equal(t, 115.0, report.Summary[domain.MetricAverageTicket])
}

func TestSalesEvolution_Mensal(t *testing.T) {
	service := newTestService(cache.NoopReportCache{})

	sales := append(salesOn("2024-01-10", 2, 100, "S1"), salesOn("2024-03-02", 1, 50, "S1")...)

	report, err := service.SalesEvolution(context.Background(), &SalesEvolutionRequest{
		Sales:       sales,
		Range:       DateRange{Start: "2024-01-15", End: "2024-03-01"},
		Granularity: "month",
	})

	require.NoError(t, err)
	require.Len(t, report.Rows, 3)
	assert.Equal(t, "01-2024", report.Rows[0]["label"])
	assert.Equal(t, "03-2024", report.Rows[2]["label"])
	// Em granularidade mensal o intervalo vale por meses inteiros
	assert.Equal(t, 2, report.Rows[0]["entries"])
	assert.Equal(t, 0, report.Rows[1]["entries"])
	assert.Equal(t, 1, report.Rows[2]["entries"])
	assert.Equal(t, 3, report.Summary[domain.MetricSales])
}

func TestSalesEvolution_Erros(t *testing.T) {
	strict := true

	tests := []struct {
		name    string
		request *SalesEvolutionRequest
		code    string
		target  error
	}{
		{
			name:    "Intervalo invertido em modo estrito",
			request: &SalesEvolutionRequest{Range: DateRange{Start: "2024-03-10", End: "2024-03-01"}, Strict: &strict},
			code:    apiErrors.ErrInvalidRange,
			target:  domain.ErrInvalidRange,
		},
		{
			name:    "Intervalo ausente",
			request: &SalesEvolutionRequest{},
			code:    apiErrors.ErrMissingRequiredData,
			target:  ErrMissingRange,
		},
		{
			name:    "Somente início informado",
			request: &SalesEvolutionRequest{Range: DateRange{Start: "2024-03-01"}},
			code:    apiErrors.ErrMissingRequiredData,
			target:  ErrMissingRange,
		},
		{
			name:    "Data inválida",
			request: &SalesEvolutionRequest{Range: DateRange{Start: "primeiro de março", End: "2024-03-01"}},
			code:    apiErrors.ErrInvalidFormat,
			target:  ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(cache.NoopReportCache{})

			report, err := service.SalesEvolution(context.Background(), tt.request)

			assert.Nil(t, report)
			assert.Equal(t, tt.code, analyticsCode(t, err))
			assert.True(t, errors.Is(err, tt.target))
		})
	}
}

func TestSalesEvolution_IntervaloInvertidoSemModoEstrito(t *testing.T) {
	service := newTestService(cache.NoopReportCache{})

	report, err := service.SalesEvolution(context.Background(), &SalesEvolutionRequest{
		Sales: salesOn("2024-03-05", 2, 100, "S1"),
		Range: DateRange{Start: "2024-03-10", End: "2024-03-01"},
	})

	require.NoError(t, err)
	assert.Empty(t, report.Rows)
}

func TestReport_Cache(t *testing.T) {
	request := &SalesEvolutionRequest{
		Sales: salesOn("2024-03-01", 1, 100, "S1"),
		Range: DateRange{Start: "2024-03-01", End: "2024-03-02"},
	}

	tests := []struct {
		name     string
		setup    func(mock *mocks.MockReportCache)
		validate func(t *testing.T, report *domain.Report)
	}{
		{
			name: "Relatório encontrado no cache",
			setup: func(mock *mocks.MockReportCache) {
				mock.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(&domain.Report{ReportID: "cached", Widget: WidgetSalesEvolution}, true, nil)
			},
			validate: func(t *testing.T, report *domain.Report) {
				assert.Equal(t, "cached", report.ReportID)
			},
		},
		{
			name: "Relatório calculado e gravado no cache",
			setup: func(mock *mocks.MockReportCache) {
				mock.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
				mock.EXPECT().
					Set(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, key string, report *domain.Report) error {
						assert.Contains(t, key, "analytics:sales-evolution:")
						assert.Len(t, report.Rows, 2)
						return nil
					})
			},
			validate: func(t *testing.T, report *domain.Report) {
				assert.Len(t, report.Rows, 2)
			},
		},
		{
			name: "Falha no cache não interrompe o cálculo",
			setup: func(mock *mocks.MockReportCache) {
				mock.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("connection refused"))
				mock.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			validate: func(t *testing.T, report *domain.Report) {
				assert.Len(t, report.Rows, 2)
				assert.Equal(t, referenceNow, report.GeneratedAt)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCache := mocks.NewMockReportCache(ctrl)
			tt.setup(mockCache)

			report, err := newTestService(mockCache).SalesEvolution(context.Background(), request)

			require.NoError(t, err)
			tt.validate(t, report)
		})
	}
}

func TestReport_ErroDeValidacaoNaoGravaCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockReportCache(ctrl)
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)

	_, err := newTestService(mockCache).SalesEvolution(context.Background(), &SalesEvolutionRequest{})

	assert.Error(t, err)
}

func TestInvalidateCache(t *testing.T) {
	t.Run("Deve retornar a quantidade de chaves removidas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := mocks.NewMockReportCache(ctrl)
		mockCache.EXPECT().Invalidate(gomock.Any()).Return(3, nil)

		deleted, err := newTestService(mockCache).InvalidateCache(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 3, deleted)
	})

	t.Run("Deve retornar erro de cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := mocks.NewMockReportCache(ctrl)
		mockCache.EXPECT().Invalidate(gomock.Any()).Return(1, errors.New("scan falhou"))

		_, err := newTestService(mockCache).InvalidateCache(context.Background())

		assert.Equal(t, apiErrors.ErrCacheOperation, analyticsCode(t, err))
		assert.True(t, errors.Is(err, ErrCachePurge))
	})
}

func TestNewService_SemCache(t *testing.T) {
	service := NewService(testConfig(), nil)
	assert.IsType(t, cache.NoopReportCache{}, service.cache)
}
