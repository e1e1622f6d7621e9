package domain

import "github.com/shopspring/decimal"

type BonusTier string

const (
	BonusTierNone BonusTier = "none"
	BonusTierHalf BonusTier = "half"
	BonusTierFull BonusTier = "full"
)

// Goals são as metas de quantidade de vendas e de faturamento de um vendedor
type Goals struct {
	Sales   float64         `json:"sales"`
	Revenue decimal.Decimal `json:"revenue"`
}

// BonusPolicy parametriza o cálculo de bonificação
type BonusPolicy struct {
	FullRate      float64 `json:"full_rate"`
	HalfRate      float64 `json:"half_rate"`
	GoalThreshold float64 `json:"goal_threshold"` // progresso (%) a partir do qual a meta conta como batida
}

// Rate retorna a alíquota do nível
func (p BonusPolicy) Rate(tier BonusTier) float64 {
	switch tier {
	case BonusTierFull:
		return p.FullRate
	case BonusTierHalf:
		return p.HalfRate
	default:
		return 0
	}
}

type LeaderboardEntry struct {
	SellerCode      string          `json:"seller_code"`
	SellerName      string          `json:"seller_name"`
	SalesCount      int             `json:"sales_count"`
	Revenue         decimal.Decimal `json:"revenue"`
	AverageTicket   decimal.Decimal `json:"average_ticket"`
	Rank            int             `json:"rank"`
	PreviousRank    int             `json:"previous_rank"`
	PositionChange  int             `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	SalesProgress   float64         `json:"sales_progress"`
	RevenueProgress float64         `json:"revenue_progress"`
	OverallProgress float64         `json:"overall_progress"`
	Tier            BonusTier       `json:"tier"`
	Bonus           decimal.Decimal `json:"bonus"`
}
