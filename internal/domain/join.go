package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NormalizedRow é um item de estoque enriquecido com produto e vendas.
// Product é nil quando o código não existe no cadastro.
type NormalizedRow struct {
	ProductCode string
	Product     *Product
	Name        string
	Category    string
	Supplier    string
	OnHand      float64
	CostPrice   decimal.Decimal
	SalePrice   decimal.Decimal
	UnitsSold   float64
	Revenue     decimal.Decimal
	SalesCount  int
	LastSaleAt  *time.Time
}

// SaleLine é um item de venda achatado junto com a venda e o produto
type SaleLine struct {
	SaleID        string
	// SaleIndex é a posição da venda na entrada; identifica vendas sem ID
	SaleIndex     int
	SellerRef     string
	PaymentMethod string
	Timestamp     time.Time
	HasTimestamp  bool
	Item          SaleLineItem
	Product       *Product
	Category      string
}

// SaleKey identifica a venda de origem do item
type SaleKey struct {
	ID    string
	Index int
}

// Sale devolve a chave da venda: o ID quando informado, senão a posição na entrada
func (l SaleLine) Sale() SaleKey {
	if l.SaleID != "" {
		return SaleKey{ID: l.SaleID, Index: -1}
	}
	return SaleKey{Index: l.SaleIndex}
}

// Breakdown é uma linha de agrupamento genérico (categoria, produto, forma de pagamento)
type Breakdown struct {
	Key      string          `json:"key"`
	Label    string          `json:"label"`
	Quantity float64         `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
	Count    int             `json:"count"`
	Rank     int             `json:"rank"`
}
