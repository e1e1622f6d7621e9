package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

// PromotionPeriod é uma entrada do histórico de promoções do produto
type PromotionPeriod struct {
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date,omitempty"`
	PromoPrice decimal.Decimal `json:"promo_price"`
	Active     bool            `json:"active"`
}

type Product struct {
	Code             string            `json:"code"`
	Name             string            `json:"name"`
	Category         *NamedRef         `json:"category,omitempty"`
	CostPrice        decimal.Decimal   `json:"cost_price"`
	SalePrice        decimal.Decimal   `json:"sale_price"`
	PromotionalPrice decimal.Decimal   `json:"promotional_price"`
	OnPromotion      bool              `json:"on_promotion"`
	Promotions       []PromotionPeriod `json:"promotions,omitempty"`
}

func (p *Product) CategoryName() string {
	if p == nil {
		return Uncategorized
	}
	return p.Category.Resolve(Uncategorized)
}

// PromotionStart escolhe o início de promoção relevante em now: a promoção ativa
// mais recente e, na falta dela, a última que já começou
func (p Product) PromotionStart(now time.Time) (time.Time, bool) {
	var (
		active, latest       time.Time
		hasActive, hasLatest bool
	)

	for _, promo := range p.Promotions {
		start, ok := utils.ParseFlexible(promo.StartDate, now.Location())
		if !ok || start.After(now) {
			continue
		}

		if !hasLatest || start.After(latest) {
			latest, hasLatest = start, true
		}

		if promo.Active && (!hasActive || start.After(active)) {
			active, hasActive = start, true
		}
	}

	if hasActive {
		return active, true
	}
	return latest, hasLatest
}
