package domain_test

import (
	"testing"
	"time"

	"github.com/accubooks/ledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestJournalEntryLine_Validate(t *testing.T) {
	tests := []struct {
		name   string
		debit  string
		credit string
		want   bool
	}{
		{name: "debit only", debit: "100.00", credit: "0", want: true},
		{name: "credit only", debit: "0", credit: "100.00", want: true},
		{name: "both sides set", debit: "100.00", credit: "100.00", want: false},
		{name: "both sides zero", debit: "0", credit: "0", want: false},
		{name: "negative debit", debit: "-5.00", credit: "0", want: false},
		{name: "negative credit", debit: "0", credit: "-5.00", want: false},
		{name: "fractional debit", debit: "0.01", credit: "0", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := domain.JournalEntryLine{
				Debit:  decimal.RequireFromString(tt.debit),
				Credit: decimal.RequireFromString(tt.credit),
			}
			assert.Equal(t, tt.want, line.Validate())
		})
	}
}

func TestEntryStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   domain.EntryStatus
		to     domain.EntryStatus
		want   bool
	}{
		{name: "draft to posted", from: domain.Draft, to: domain.Posted, want: true},
		{name: "posted to approved", from: domain.Posted, to: domain.Approved, want: true},
		{name: "draft to approved skips post", from: domain.Draft, to: domain.Approved, want: false},
		{name: "posted back to draft", from: domain.Posted, to: domain.Draft, want: false},
		{name: "approved back to draft", from: domain.Approved, to: domain.Draft, want: false},
		{name: "approved back to posted", from: domain.Approved, to: domain.Posted, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestFiscalPeriodFromDate(t *testing.T) {
	assert.Equal(t, domain.January, domain.FiscalPeriodFromDate(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, domain.June, domain.FiscalPeriodFromDate(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, domain.December, domain.FiscalPeriodFromDate(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFiscalPeriod_Valid(t *testing.T) {
	assert.True(t, domain.FiscalPeriod("MARCH").Valid())
	assert.False(t, domain.FiscalPeriod("Q1").Valid())
	assert.False(t, domain.FiscalPeriod("").Valid())
}

func TestAccountType_NormalSide(t *testing.T) {
	assert.Equal(t, domain.DebitSide, domain.Asset.NormalSide())
	assert.Equal(t, domain.DebitSide, domain.Expense.NormalSide())
	assert.Equal(t, domain.CreditSide, domain.Liability.NormalSide())
	assert.Equal(t, domain.CreditSide, domain.Equity.NormalSide())
	assert.Equal(t, domain.CreditSide, domain.Revenue.NormalSide())
}
