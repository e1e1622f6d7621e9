package join

import (
	"strings"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// Predicate decide se um item permanece após o filtro
type Predicate[T any] func(T) bool

// Filter mantém os itens aceitos por todos os predicados, preservando a ordem
func Filter[T any](items []T, predicates ...Predicate[T]) []T {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if acceptAll(item, predicates) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func acceptAll[T any](item T, predicates []Predicate[T]) bool {
	for _, predicate := range predicates {
		if predicate != nil && !predicate(item) {
			return false
		}
	}
	return true
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// ByCategory filtra linhas normalizadas pela categoria resolvida
func ByCategory(category string) Predicate[domain.NormalizedRow] {
	return func(row domain.NormalizedRow) bool {
		return sameName(row.Category, category)
	}
}

func BySupplier(supplier string) Predicate[domain.NormalizedRow] {
	return func(row domain.NormalizedRow) bool {
		return sameName(row.Supplier, supplier)
	}
}

func ByProductCode(code string) Predicate[domain.NormalizedRow] {
	return func(row domain.NormalizedRow) bool {
		return row.ProductCode == code
	}
}

func MovementsOfType(movementType domain.MovementType) Predicate[domain.StockMovement] {
	return func(movement domain.StockMovement) bool {
		return movement.Type == movementType
	}
}

// MovementsBySupplier aceita movimentações do fornecedor; sem fornecedor conta como Unknown
func MovementsBySupplier(supplier string) Predicate[domain.StockMovement] {
	return func(movement domain.StockMovement) bool {
		return sameName(movement.Supplier.Resolve(domain.Unknown), supplier)
	}
}

func MovementsOfColorway(colorway string) Predicate[domain.StockMovement] {
	return func(movement domain.StockMovement) bool {
		return sameName(movement.Colorway, colorway)
	}
}

func LinesInCategory(category string) Predicate[domain.SaleLine] {
	return func(line domain.SaleLine) bool {
		return sameName(line.Category, category)
	}
}
