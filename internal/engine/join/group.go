package join

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// KeyFunc devolve a chave de agrupamento e o rótulo exibido
type KeyFunc[T any] func(T) (key, label string)

// GroupLines agrupa itens de venda somando quantidade e subtotal. Count é o número de
// vendas distintas do grupo; vendas sem ID contam pela posição na entrada.
// Os grupos saem na ordem da primeira aparição.
func GroupLines(lines []domain.SaleLine, keyOf KeyFunc[domain.SaleLine]) []domain.Breakdown {
	groups := make([]domain.Breakdown, 0)
	positions := make(map[string]int)
	seen := make(map[string]map[domain.SaleKey]struct{})

	for _, line := range lines {
		key, label := keyOf(line)
		i, ok := positions[key]
		if !ok {
			i = len(groups)
			positions[key] = i
			seen[key] = make(map[domain.SaleKey]struct{})
			groups = append(groups, domain.Breakdown{Key: key, Label: label, Revenue: decimal.Zero})
		}

		groups[i].Quantity += line.Item.Quantity
		groups[i].Revenue = groups[i].Revenue.Add(line.Item.Subtotal)
		sale := line.Sale()
		if _, counted := seen[key][sale]; !counted {
			seen[key][sale] = struct{}{}
			groups[i].Count++
		}
	}

	return groups
}

// GroupSales agrupa vendas inteiras somando o total, a quantidade de itens e o número de vendas
func GroupSales(sales []domain.SaleRecord, keyOf KeyFunc[domain.SaleRecord]) []domain.Breakdown {
	groups := make([]domain.Breakdown, 0)
	positions := make(map[string]int)

	for _, sale := range sales {
		key, label := keyOf(sale)
		i, ok := positions[key]
		if !ok {
			i = len(groups)
			positions[key] = i
			groups = append(groups, domain.Breakdown{Key: key, Label: label, Revenue: decimal.Zero})
		}

		groups[i].Quantity += sale.Quantity()
		groups[i].Revenue = groups[i].Revenue.Add(sale.Total)
		groups[i].Count++
	}

	return groups
}

// ByLineCategory agrupa pela categoria resolvida do produto
func ByLineCategory(line domain.SaleLine) (string, string) {
	return line.Category, line.Category
}

// ByLineProduct agrupa pelo código do produto, exibindo o nome quando cadastrado
func ByLineProduct(line domain.SaleLine) (string, string) {
	code := line.Item.ProductCode
	if line.Product == nil || line.Product.Name == "" {
		return code, code
	}
	return code, line.Product.Name
}

// ByPaymentMethod agrupa pela forma de pagamento; vazio vira Unknown
func ByPaymentMethod(sale domain.SaleRecord) (string, string) {
	if sale.PaymentMethod == "" {
		return domain.Unknown, domain.Unknown
	}
	return sale.PaymentMethod, sale.PaymentMethod
}
