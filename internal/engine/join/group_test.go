package join

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

func groupFixture() ([]domain.SaleRecord, []domain.Product) {
	products := []domain.Product{
		{Code: "TEN", Name: "Tênis", Category: domain.NameRef("Calçados")},
		{Code: "BOT", Name: "Bota", Category: domain.NameRef("Calçados")},
		{Code: "CAM", Name: "Camiseta", Category: domain.NameRef("Roupas")},
	}

	sales := []domain.SaleRecord{
		{
			ID:            "V1",
			Timestamp:     "2024-01-01T10:00:00Z",
			PaymentMethod: "pix",
			Total:         decimal.NewFromInt(300),
			Items: []domain.SaleLineItem{
				{ProductCode: "TEN", Quantity: 1, Subtotal: decimal.NewFromInt(200)},
				{ProductCode: "BOT", Quantity: 1, Subtotal: decimal.NewFromInt(100)},
			},
		},
		{
			ID:            "V2",
			Timestamp:     "2024-01-02T10:00:00Z",
			PaymentMethod: "",
			Total:         decimal.NewFromInt(120),
			Items: []domain.SaleLineItem{
				{ProductCode: "CAM", Quantity: 2, Subtotal: decimal.NewFromInt(80)},
				{ProductCode: "XXX", Quantity: 1, Subtotal: decimal.NewFromInt(40)},
			},
		},
		{
			ID:            "V3",
			Timestamp:     "2024-01-03T10:00:00Z",
			PaymentMethod: "pix",
			Total:         decimal.NewFromInt(200),
			Items: []domain.SaleLineItem{
				{ProductCode: "TEN", Quantity: 1, Subtotal: decimal.NewFromInt(200)},
			},
		},
	}

	return sales, products
}

func TestGroupLines_PorCategoria(t *testing.T) {
	sales, products := groupFixture()

	groups := GroupLines(SaleLines(sales, products), ByLineCategory)

	require.Len(t, groups, 3)
	assert.Equal(t, "Calçados", groups[0].Key)
	assert.Equal(t, 3.0, groups[0].Quantity)
	assert.Equal(t, "500", groups[0].Revenue.String())
	// V1 tem dois itens da mesma categoria e conta uma vez
	assert.Equal(t, 2, groups[0].Count)

	assert.Equal(t, "Roupas", groups[1].Key)
	assert.Equal(t, domain.Uncategorized, groups[2].Key)
	assert.Equal(t, "40", groups[2].Revenue.String())
}

func TestGroupLines_PorProduto(t *testing.T) {
	sales, products := groupFixture()

	groups := GroupLines(SaleLines(sales, products), ByLineProduct)

	labels := make(map[string]string)
	for _, g := range groups {
		labels[g.Key] = g.Label
	}
	assert.Equal(t, "Tênis", labels["TEN"])
	// Produto sem cadastro é exibido pelo código
	assert.Equal(t, "XXX", labels["XXX"])
}

func TestGroupLines_VendasSemID(t *testing.T) {
	_, products := groupFixture()
	tenis := func() domain.SaleRecord {
		return domain.SaleRecord{
			Timestamp: "2024-01-01T10:00:00Z",
			Total:     decimal.NewFromInt(200),
			Items: []domain.SaleLineItem{
				{ProductCode: "TEN", Quantity: 1, Subtotal: decimal.NewFromInt(200)},
			},
		}
	}

	tests := []struct {
		name     string
		sales    []domain.SaleRecord
		count    int
		quantity float64
	}{
		{
			name:     "Três vendas sem ID contam três vezes",
			sales:    []domain.SaleRecord{tenis(), tenis(), tenis()},
			count:    3,
			quantity: 3,
		},
		{
			name: "Venda sem ID com dois itens do produto conta uma vez",
			sales: []domain.SaleRecord{{
				Items: []domain.SaleLineItem{
					{ProductCode: "TEN", Quantity: 1, Subtotal: decimal.NewFromInt(200)},
					{ProductCode: "TEN", Quantity: 2, Subtotal: decimal.NewFromInt(400)},
				},
			}},
			count:    1,
			quantity: 3,
		},
		{
			name: "ID repetido continua contando uma venda",
			sales: func() []domain.SaleRecord {
				first, second := tenis(), tenis()
				first.ID, second.ID = "V9", "V9"
				return []domain.SaleRecord{first, second, tenis()}
			}(),
			count:    2,
			quantity: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := GroupLines(SaleLines(tt.sales, products), ByLineProduct)

			require.Len(t, groups, 1)
			assert.Equal(t, "TEN", groups[0].Key)
			assert.Equal(t, tt.count, groups[0].Count)
			assert.Equal(t, tt.quantity, groups[0].Quantity)
		})
	}
}

func TestGroupSales_PorFormaDePagamento(t *testing.T) {
	sales, _ := groupFixture()

	groups := GroupSales(sales, ByPaymentMethod)

	require.Len(t, groups, 2)
	assert.Equal(t, "pix", groups[0].Key)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, "500", groups[0].Revenue.String())
	assert.Equal(t, 3.0, groups[0].Quantity)
	assert.Equal(t, domain.Unknown, groups[1].Key)
	assert.Equal(t, 3.0, groups[1].Quantity)
}
