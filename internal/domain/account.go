package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

type AccountKind string

const (
	AccountPayable    AccountKind = "payable"
	AccountReceivable AccountKind = "receivable"
)

type AccountStatus string

const (
	AccountStatusPending  AccountStatus = "Pending"
	AccountStatusPartial  AccountStatus = "Partial"
	AccountStatusPaid     AccountStatus = "Paid"
	AccountStatusReceived AccountStatus = "Received"
	AccountStatusOverdue  AccountStatus = "Overdue"
)

// AccountStatusOrder define a ordem de exibição dos status nos resumos
var AccountStatusOrder = []AccountStatus{
	AccountStatusPending,
	AccountStatusPartial,
	AccountStatusOverdue,
	AccountStatusPaid,
	AccountStatusReceived,
}

// Installment identifica a parcela dentro de um parcelamento
type Installment struct {
	Number int `json:"installment_number"`
	Total  int `json:"total_installments"`
}

// Account é uma conta a pagar ou a receber
type Account struct {
	DocumentNumber string          `json:"document_number"`
	Description    string          `json:"description"`
	Kind           AccountKind     `json:"kind"`
	Category       *NamedRef       `json:"category,omitempty"`
	DueDate        string          `json:"due_date"`
	Value          decimal.Decimal `json:"value"`
	PaidValue      decimal.Decimal `json:"paid_value"`
	Status         AccountStatus   `json:"status"`
	Installment    *Installment    `json:"installment,omitempty"`
}

func (a Account) DueTime(loc *time.Location) (time.Time, bool) {
	return utils.ParseFlexible(a.DueDate, loc)
}

// Settled indica conta paga ou recebida
func (a Account) Settled() bool {
	return a.Status == AccountStatusPaid || a.Status == AccountStatusReceived
}

// Remaining é o valor ainda em aberto; contas quitadas não têm saldo
func (a Account) Remaining() decimal.Decimal {
	if a.Settled() {
		return decimal.Zero
	}

	remaining := a.Value.Sub(a.PaidValue)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// EffectiveStatus considera vencida toda conta em aberto com vencimento anterior a hoje
func (a Account) EffectiveStatus(now time.Time) AccountStatus {
	if a.Settled() || a.Status == AccountStatusOverdue {
		return a.Status
	}

	due, ok := a.DueTime(now.Location())
	if ok && utils.StartOfDay(due).Before(utils.StartOfDay(now)) {
		return AccountStatusOverdue
	}

	if a.Status == "" {
		return AccountStatusPending
	}
	return a.Status
}

// AccountSummary consolida as contas de um tipo e status efetivo
type AccountSummary struct {
	Kind      AccountKind     `json:"kind"`
	Status    AccountStatus   `json:"status"`
	Count     int             `json:"count"`
	Value     decimal.Decimal `json:"value"`
	Remaining decimal.Decimal `json:"remaining"`
}
