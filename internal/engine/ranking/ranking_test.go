package ranking

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

type store struct {
	name    string
	revenue float64
	ticket  float64
}

func names(ranked []Ranked[store]) []string {
	result := make([]string, 0, len(ranked))
	for _, r := range ranked {
		result = append(result, r.Item.name)
	}
	return result
}

func byRevenue(s store) float64 { return s.revenue }
func byTicket(s store) float64  { return s.ticket }

func TestRank(t *testing.T) {
	tests := []struct {
		name     string
		input    []store
		tieBreak func(store) float64
		expected []string
	}{
		{
			name:     "Deve ordenar por métrica decrescente",
			input:    []store{{"A", 100, 0}, {"B", 300, 0}, {"C", 200, 0}},
			expected: []string{"B", "C", "A"},
		},
		{
			name:     "Empate resolvido pelo critério secundário",
			input:    []store{{"A", 100, 10}, {"B", 100, 30}, {"C", 100, 20}},
			tieBreak: byTicket,
			expected: []string{"B", "C", "A"},
		},
		{
			name:     "Empate sem critério secundário mantém a ordem original",
			input:    []store{{"A", 100, 10}, {"B", 100, 30}, {"C", 200, 20}},
			expected: []string{"C", "A", "B"},
		},
		{
			name:     "Lista vazia",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := Rank(tt.input, byRevenue, tt.tieBreak)
			assert.Equal(t, tt.expected, names(ranked))
			for i, r := range ranked {
				assert.Equal(t, i+1, r.Rank)
			}
		})
	}
}

func TestRank_Estabilidade(t *testing.T) {
	input := []store{{"X", 50, 0}, {"A", 10, 0}, {"B", 10, 0}, {"Y", 70, 0}, {"C", 10, 0}}
	reordered := []store{{"Y", 70, 0}, {"A", 10, 0}, {"X", 50, 0}, {"B", 10, 0}, {"C", 10, 0}}

	first := Rank(input, byRevenue, nil)
	second := Rank(input, byRevenue, nil)
	assert.Equal(t, first, second)

	// a ordem relativa dos empatados acompanha a entrada
	assert.Equal(t, []string{"A", "B", "C"}, names(first)[2:])
	assert.Equal(t, []string{"A", "B", "C"}, names(Rank(reordered, byRevenue, nil))[2:])
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		achieved float64
		goal     float64
		expected float64
	}{
		{"Metade da meta", 25, 50, 50},
		{"Acima da meta é limitado a 100", 60, 50, 100},
		{"Meta zero conta como batida", 0, 0, 100},
		{"Arredonda em duas casas", 1, 3, 33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Progress(tt.achieved, tt.goal))
		})
	}
}

func TestOverallProgress_LimitaAntesDaMedia(t *testing.T) {
	// 300% de uma meta não compensa 20% da outra
	assert.Equal(t, 60.0, OverallProgress(300, 20))
	assert.Equal(t, 0.0, OverallProgress())
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, domain.BonusTierNone, TierFor(0, 2))
	assert.Equal(t, domain.BonusTierHalf, TierFor(1, 2))
	assert.Equal(t, domain.BonusTierFull, TierFor(2, 2))
	assert.Equal(t, domain.BonusTierNone, TierFor(0, 0))
}

var policy = domain.BonusPolicy{FullRate: 0.05, HalfRate: 0.025, GoalThreshold: 100}

func salesFor(seller string, count int, total decimal.Decimal) []domain.SaleRecord {
	sales := make([]domain.SaleRecord, 0, count)
	for i := 0; i < count; i++ {
		sales = append(sales, domain.SaleRecord{
			ID:        fmt.Sprintf("%s-%d", seller, i),
			SellerRef: seller,
			Total:     total,
		})
	}
	return sales
}

func TestSellerLeaderboard(t *testing.T) {
	goals := FixedGoals(domain.Goals{Sales: 50, Revenue: decimal.NewFromInt(50000)})
	sellers := []domain.Seller{{Code: "V1", Name: "Ana"}, {Code: "V2", Name: "Bruno"}, {Code: "V3", Name: "Carla"}}

	tests := []struct {
		name     string
		sales    []domain.SaleRecord
		validate func(t *testing.T, entries []domain.LeaderboardEntry)
	}{
		{
			name:  "Vendedor com 60 vendas e 60 mil bate as duas metas",
			sales: salesFor("V1", 60, decimal.NewFromInt(1000)),
			validate: func(t *testing.T, entries []domain.LeaderboardEntry) {
				require.Len(t, entries, 3)
				top := entries[0]
				assert.Equal(t, "V1", top.SellerCode)
				assert.Equal(t, 1, top.Rank)
				assert.Equal(t, 100.0, top.SalesProgress)
				assert.Equal(t, 100.0, top.RevenueProgress)
				assert.Equal(t, 100.0, top.OverallProgress)
				assert.Equal(t, domain.BonusTierFull, top.Tier)
				assert.Equal(t, "3000", top.Bonus.String())
				assert.Equal(t, "1000", top.AverageTicket.String())
			},
		},
		{
			name:  "Apenas uma meta batida gera meio bônus",
			sales: salesFor("V2", 10, decimal.NewFromInt(6000)),
			validate: func(t *testing.T, entries []domain.LeaderboardEntry) {
				assert.Equal(t, "V2", entries[0].SellerCode)
				assert.Equal(t, 20.0, entries[0].SalesProgress)
				assert.Equal(t, 100.0, entries[0].RevenueProgress)
				assert.Equal(t, 60.0, entries[0].OverallProgress)
				assert.Equal(t, domain.BonusTierHalf, entries[0].Tier)
				assert.Equal(t, "1500", entries[0].Bonus.String())
			},
		},
		{
			name:  "Vendedores sem vendas aparecem zerados na ordem de cadastro",
			sales: nil,
			validate: func(t *testing.T, entries []domain.LeaderboardEntry) {
				require.Len(t, entries, 3)
				assert.Equal(t, []string{"V1", "V2", "V3"}, []string{entries[0].SellerCode, entries[1].SellerCode, entries[2].SellerCode})
				for _, entry := range entries {
					assert.Equal(t, domain.BonusTierNone, entry.Tier)
					assert.True(t, entry.Bonus.IsZero())
				}
			},
		},
		{
			name: "Vendedor desconhecido entra como Unknown",
			sales: append(salesFor("V9", 1, decimal.NewFromInt(10)),
				salesFor("V3", 1, decimal.NewFromInt(5))...),
			validate: func(t *testing.T, entries []domain.LeaderboardEntry) {
				require.Len(t, entries, 4)
				assert.Equal(t, "V9", entries[0].SellerCode)
				assert.Equal(t, domain.Unknown, entries[0].SellerName)
				assert.Equal(t, "V3", entries[1].SellerCode)
			},
		},
		{
			name: "Empate no faturamento é decidido pelo ticket médio",
			sales: append(salesFor("V1", 4, decimal.NewFromInt(250)),
				salesFor("V2", 2, decimal.NewFromInt(500))...),
			validate: func(t *testing.T, entries []domain.LeaderboardEntry) {
				assert.Equal(t, "V2", entries[0].SellerCode)
				assert.Equal(t, "V1", entries[1].SellerCode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, SellerLeaderboard(sellers, tt.sales, goals, policy))
		})
	}
}

func TestApplyPreviousPositions(t *testing.T) {
	entries := []domain.LeaderboardEntry{
		{SellerCode: "V1", Rank: 1},
		{SellerCode: "V2", Rank: 2},
		{SellerCode: "V3", Rank: 3},
	}

	ApplyPreviousPositions(entries, map[string]int{"V1": 3, "V2": 2})

	assert.Equal(t, 2, entries[0].PositionChange)
	assert.Equal(t, 3, entries[0].PreviousRank)
	assert.Equal(t, 0, entries[1].PositionChange)
	assert.Equal(t, 0, entries[2].PreviousRank) // sem posição anterior
}
