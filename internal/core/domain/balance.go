package domain

import "github.com/shopspring/decimal"

// AccountBalance holds per-account, per-fiscal-period running totals.
// Rows are created lazily on first posting touching the period and are
// only ever mutated by the posting engine. All fields use exact decimal
// arithmetic; closing sides reflect net position, not gross.
type AccountBalance struct {
	AccountID      string          `json:"accountID"`
	FiscalYear     int             `json:"fiscalYear"`
	FiscalPeriod   FiscalPeriod    `json:"fiscalPeriod"`
	OpeningDebit   decimal.Decimal `json:"openingDebit"`
	OpeningCredit  decimal.Decimal `json:"openingCredit"`
	DebitTurnover  decimal.Decimal `json:"debitTurnover"`
	CreditTurnover decimal.Decimal `json:"creditTurnover"`
	ClosingDebit   decimal.Decimal `json:"closingDebit"`
	ClosingCredit  decimal.Decimal `json:"closingCredit"`
}

// ZeroBalance returns an all-zero balance row for an untouched
// (account, year, period). Queries for untouched periods never fail.
func ZeroBalance(accountID string, fiscalYear int, fiscalPeriod FiscalPeriod) AccountBalance {
	return AccountBalance{
		AccountID:      accountID,
		FiscalYear:     fiscalYear,
		FiscalPeriod:   fiscalPeriod,
		OpeningDebit:   decimal.Zero,
		OpeningCredit:  decimal.Zero,
		DebitTurnover:  decimal.Zero,
		CreditTurnover: decimal.Zero,
		ClosingDebit:   decimal.Zero,
		ClosingCredit:  decimal.Zero,
	}
}

// BalanceDelta accumulates the turnover a posting adds to one
// (account, year, period) balance row.
type BalanceDelta struct {
	AccountID    string
	FiscalYear   int
	FiscalPeriod FiscalPeriod
	Debit        decimal.Decimal
	Credit       decimal.Decimal
}

// Apply adds the delta's turnover to the balance and recomputes the
// closing sides as opening + own turnover - opposite turnover.
func (b AccountBalance) Apply(delta BalanceDelta) AccountBalance {
	b.DebitTurnover = b.DebitTurnover.Add(delta.Debit)
	b.CreditTurnover = b.CreditTurnover.Add(delta.Credit)
	b.ClosingDebit = b.OpeningDebit.Add(b.DebitTurnover).Sub(b.CreditTurnover)
	b.ClosingCredit = b.OpeningCredit.Add(b.CreditTurnover).Sub(b.DebitTurnover)
	return b
}

// AccumulateDeltas folds an entry's lines into one delta per account for
// the entry's fiscal year and period.
func AccumulateDeltas(entry JournalEntry) []BalanceDelta {
	byAccount := make(map[string]*BalanceDelta)
	order := make([]string, 0, len(entry.Lines))
	for _, line := range entry.Lines {
		d, ok := byAccount[line.AccountID]
		if !ok {
			d = &BalanceDelta{
				AccountID:    line.AccountID,
				FiscalYear:   entry.FiscalYear,
				FiscalPeriod: entry.FiscalPeriod,
				Debit:        decimal.Zero,
				Credit:       decimal.Zero,
			}
			byAccount[line.AccountID] = d
			order = append(order, line.AccountID)
		}
		d.Debit = d.Debit.Add(line.Debit)
		d.Credit = d.Credit.Add(line.Credit)
	}
	deltas := make([]BalanceDelta, 0, len(order))
	for _, accountID := range order {
		deltas = append(deltas, *byAccount[accountID])
	}
	return deltas
}
