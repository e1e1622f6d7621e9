package dashboard

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// DateRange são datas em texto; qualquer layout aceito por utils.ParseFlexible vale
type DateRange struct {
	Start string `json:"start_date"`
	End   string `json:"end_date"`
}

func (r DateRange) Empty() bool {
	return r.Start == "" && r.End == ""
}

type SalesEvolutionRequest struct {
	Sales       []domain.SaleRecord `json:"sales"`
	Range       DateRange           `json:"range"`
	Granularity string              `json:"granularity,omitempty"`
	Strict      *bool               `json:"strict,omitempty"`
}

type InventoryEvolutionRequest struct {
	Stock    []domain.StockItem `json:"stock"`
	Products []domain.Product   `json:"products"`
	Days     int                `json:"days,omitempty"`
	// EndDate é o último dia da janela; vazio usa hoje
	EndDate         string   `json:"end_date,omitempty"`
	Category        string   `json:"category,omitempty"`
	Supplier        string   `json:"supplier,omitempty"`
	ProductCode     string   `json:"product_code,omitempty"`
	OpeningQuantity *float64 `json:"opening_quantity,omitempty"`
}

type CashFlowRequest struct {
	Accounts       []domain.Account `json:"accounts"`
	Days           int              `json:"days,omitempty"`
	OpeningBalance decimal.Decimal  `json:"opening_balance"`
	Now            string           `json:"now,omitempty"`
}

type AccountsSummaryRequest struct {
	Accounts []domain.Account `json:"accounts"`
	Now      string           `json:"now,omitempty"`
}

// BreakdownRequest atende os agrupamentos por categoria, produto e forma de pagamento
type BreakdownRequest struct {
	Sales    []domain.SaleRecord `json:"sales"`
	Products []domain.Product    `json:"products,omitempty"`
	Range    DateRange           `json:"range"`
	OrderBy  string              `json:"order_by,omitempty"`
	Limit    int                 `json:"limit,omitempty"`
}

type LeaderboardRequest struct {
	Sellers           []domain.Seller         `json:"sellers"`
	Sales             []domain.SaleRecord     `json:"sales"`
	Range             DateRange               `json:"range"`
	Goals             domain.Goals            `json:"goals"`
	SellerGoals       map[string]domain.Goals `json:"seller_goals,omitempty"`
	PreviousPositions map[string]int          `json:"previous_positions,omitempty"`
}

type PeriodComparisonRequest struct {
	Sales   []domain.SaleRecord `json:"sales"`
	Period1 DateRange           `json:"period1"`
	Period2 DateRange           `json:"period2"`
	// Policies sobrescreve a política por métrica ("zero" ou "full")
	Policies map[string]string `json:"policies,omitempty"`
}

type TurnoverRequest struct {
	Stock         []domain.StockItem  `json:"stock"`
	Products      []domain.Product    `json:"products"`
	Sales         []domain.SaleRecord `json:"sales"`
	WindowDays    int                 `json:"window_days,omitempty"`
	SlowThreshold *float64            `json:"slow_threshold,omitempty"`
	Now           string              `json:"now,omitempty"`
}

type StaleProductsRequest struct {
	Stock     []domain.StockItem  `json:"stock"`
	Products  []domain.Product    `json:"products"`
	Sales     []domain.SaleRecord `json:"sales"`
	StaleDays int                 `json:"stale_days,omitempty"`
	Now       string              `json:"now,omitempty"`
}

type PromotionRequest struct {
	Products     []domain.Product    `json:"products"`
	Sales        []domain.SaleRecord `json:"sales"`
	ProductCodes []string            `json:"product_codes,omitempty"`
	// PromoStart fixa o início da promoção para todos os produtos
	PromoStart string `json:"promo_start,omitempty"`
	Now        string `json:"now,omitempty"`
}

// OverviewRequest reúne os dados de todos os widgets do painel principal
type OverviewRequest struct {
	Sales          []domain.SaleRecord     `json:"sales"`
	Sellers        []domain.Seller         `json:"sellers"`
	Stock          []domain.StockItem      `json:"stock"`
	Products       []domain.Product        `json:"products"`
	Accounts       []domain.Account        `json:"accounts"`
	Range          DateRange               `json:"range"`
	Granularity    string                  `json:"granularity,omitempty"`
	Goals          domain.Goals            `json:"goals"`
	SellerGoals    map[string]domain.Goals `json:"seller_goals,omitempty"`
	OpeningBalance decimal.Decimal         `json:"opening_balance"`
	Now            string                  `json:"now,omitempty"`
}
