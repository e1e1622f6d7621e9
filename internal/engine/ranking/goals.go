package ranking

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

const maxProgress = 100.0

// Progress calcula min(achieved/goal*100, 100). Meta menor ou igual a zero conta como batida.
func Progress(achieved, goal float64) float64 {
	if goal <= 0 {
		return maxProgress
	}

	progress := achieved / goal * 100
	if progress > maxProgress {
		return maxProgress
	}
	if progress < 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(progress)
}

// OverallProgress é a média dos progressos, cada um limitado a 100 antes da média
func OverallProgress(progress ...float64) float64 {
	if len(progress) == 0 {
		return 0
	}

	sum := 0.0
	for _, p := range progress {
		if p > maxProgress {
			p = maxProgress
		}
		sum += p
	}
	return utils.RoundWithTwoDecimalPlace(sum / float64(len(progress)))
}

// GoalMet indica se o progresso atinge o limiar configurado
func GoalMet(progress float64, policy domain.BonusPolicy) bool {
	threshold := policy.GoalThreshold
	if threshold <= 0 || threshold > maxProgress {
		threshold = maxProgress
	}
	return progress >= threshold
}

// TierFor define o nível de bônus: nenhuma meta batida, todas ou parte delas
func TierFor(met, tracked int) domain.BonusTier {
	switch {
	case met <= 0 || tracked <= 0:
		return domain.BonusTierNone
	case met >= tracked:
		return domain.BonusTierFull
	default:
		return domain.BonusTierHalf
	}
}

// Bonus calcula faturamento x alíquota do nível
func Bonus(revenue decimal.Decimal, tier domain.BonusTier, policy domain.BonusPolicy) decimal.Decimal {
	rate := policy.Rate(tier)
	if rate <= 0 || revenue.IsNegative() {
		return decimal.Zero
	}
	return revenue.Mul(decimal.NewFromFloat(rate)).Round(2)
}
