package domain_test

import (
	"testing"

	"github.com/accubooks/ledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAccountBalance_Apply(t *testing.T) {
	balance := domain.ZeroBalance("acc-1", 2025, domain.January)

	balance = balance.Apply(domain.BalanceDelta{
		AccountID:    "acc-1",
		FiscalYear:   2025,
		FiscalPeriod: domain.January,
		Debit:        dec("100.00"),
		Credit:       dec("0"),
	})

	assert.True(t, balance.DebitTurnover.Equal(dec("100.00")))
	assert.True(t, balance.ClosingDebit.Equal(dec("100.00")))
	assert.True(t, balance.ClosingCredit.Equal(dec("-100.00")))

	// Applying the mirror-image delta nets the closing sides back to zero.
	balance = balance.Apply(domain.BalanceDelta{
		AccountID:    "acc-1",
		FiscalYear:   2025,
		FiscalPeriod: domain.January,
		Debit:        dec("0"),
		Credit:       dec("100.00"),
	})

	assert.True(t, balance.DebitTurnover.Equal(dec("100.00")))
	assert.True(t, balance.CreditTurnover.Equal(dec("100.00")))
	assert.True(t, balance.ClosingDebit.IsZero())
	assert.True(t, balance.ClosingCredit.IsZero())
}

func TestAccountBalance_Apply_WithOpening(t *testing.T) {
	balance := domain.ZeroBalance("acc-1", 2025, domain.February)
	balance.OpeningDebit = dec("50.00")

	balance = balance.Apply(domain.BalanceDelta{Debit: dec("30.00"), Credit: dec("10.00")})

	// closing = opening + own turnover - opposite turnover
	assert.True(t, balance.ClosingDebit.Equal(dec("70.00")))
	assert.True(t, balance.ClosingCredit.Equal(dec("-70.00")))
}

func TestAccountBalance_Apply_ExactDecimalAccumulation(t *testing.T) {
	// 0.1 added ten times must be exactly 1, not a float approximation.
	balance := domain.ZeroBalance("acc-1", 2025, domain.March)
	for i := 0; i < 10; i++ {
		balance = balance.Apply(domain.BalanceDelta{Debit: dec("0.10"), Credit: decimal.Zero})
	}
	assert.True(t, balance.DebitTurnover.Equal(dec("1.00")))
	assert.True(t, balance.ClosingDebit.Equal(dec("1.00")))
}

func TestAccumulateDeltas(t *testing.T) {
	entry := domain.JournalEntry{
		FiscalYear:   2025,
		FiscalPeriod: domain.January,
		Lines: []domain.JournalEntryLine{
			{AccountID: "cash", LineNumber: 1, Debit: dec("100.00"), Credit: decimal.Zero},
			{AccountID: "revenue", LineNumber: 2, Debit: decimal.Zero, Credit: dec("60.00")},
			{AccountID: "revenue", LineNumber: 3, Debit: decimal.Zero, Credit: dec("40.00")},
		},
	}

	deltas := domain.AccumulateDeltas(entry)
	require.Len(t, deltas, 2)

	assert.Equal(t, "cash", deltas[0].AccountID)
	assert.True(t, deltas[0].Debit.Equal(dec("100.00")))
	assert.True(t, deltas[0].Credit.IsZero())
	assert.Equal(t, 2025, deltas[0].FiscalYear)
	assert.Equal(t, domain.January, deltas[0].FiscalPeriod)

	assert.Equal(t, "revenue", deltas[1].AccountID)
	assert.True(t, deltas[1].Credit.Equal(dec("100.00")))
}

func TestZeroBalance(t *testing.T) {
	b := domain.ZeroBalance("acc-9", 2024, domain.December)
	assert.Equal(t, "acc-9", b.AccountID)
	assert.True(t, b.OpeningDebit.IsZero())
	assert.True(t, b.OpeningCredit.IsZero())
	assert.True(t, b.DebitTurnover.IsZero())
	assert.True(t, b.CreditTurnover.IsZero())
	assert.True(t, b.ClosingDebit.IsZero())
	assert.True(t, b.ClosingCredit.IsZero())
}
