package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

type MovementType string

const (
	MovementInbound  MovementType = "inbound"
	MovementOutbound MovementType = "outbound"
)

// ParseMovementType aceita também os termos usados nas telas de estoque
func ParseMovementType(value string) (MovementType, bool) {
	switch value {
	case "inbound", "in", "entrada", "entradas":
		return MovementInbound, true
	case "outbound", "out", "saida", "saída", "saidas", "saídas":
		return MovementOutbound, true
	default:
		return "", false
	}
}

// UnmarshalJSON normaliza os sinônimos; tipos desconhecidos são mantidos e não movimentam saldo
func (t *MovementType) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	if parsed, ok := ParseMovementType(strings.ToLower(strings.TrimSpace(value))); ok {
		*t = parsed
		return nil
	}

	*t = MovementType(value)
	return nil
}

// StockMovement é uma entrada no log de movimentações de um item de estoque
type StockMovement struct {
	ProductCode string       `json:"product_code"`
	Colorway    string       `json:"colorway"`
	Size        string       `json:"size"`
	Type        MovementType `json:"type"`
	Quantity    float64      `json:"quantity"`
	Timestamp   string       `json:"timestamp"`
	Supplier    *NamedRef    `json:"supplier,omitempty"`
	Observation string       `json:"observation,omitempty"`
}

func (m StockMovement) TimeIn(loc *time.Location) (time.Time, bool) {
	return utils.ParseFlexible(m.Timestamp, loc)
}

// Signed retorna a quantidade com sinal: positiva para entradas, negativa para saídas
func (m StockMovement) Signed() float64 {
	switch m.Type {
	case MovementInbound:
		return m.Quantity
	case MovementOutbound:
		return -m.Quantity
	default:
		return 0
	}
}

// StockItem agrega as quantidades de um produto e é dono do seu log de movimentações
type StockItem struct {
	ProductCode string          `json:"product_code"`
	Quantity    float64         `json:"quantity"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	Movements   []StockMovement `json:"movements,omitempty"`
}

// ImmobilizedValue é o valor parado em estoque (quantidade x preço de venda).
// Saldo zerado ou negativo não imobiliza nada.
func ImmobilizedValue(quantity float64, salePrice decimal.Decimal) decimal.Decimal {
	if quantity <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(quantity).Mul(salePrice)
}
