package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single account row of a trial balance for
// one fiscal period, read straight from the account balance ledger.
type TrialBalanceRow struct {
	AccountID      string          `json:"accountID"`
	AccountCode    string          `json:"accountCode"`
	AccountName    string          `json:"accountName"`
	AccountType    AccountType     `json:"accountType"`
	OpeningDebit   decimal.Decimal `json:"openingDebit"`
	OpeningCredit  decimal.Decimal `json:"openingCredit"`
	DebitTurnover  decimal.Decimal `json:"debitTurnover"`
	CreditTurnover decimal.Decimal `json:"creditTurnover"`
	ClosingDebit   decimal.Decimal `json:"closingDebit"`
	ClosingCredit  decimal.Decimal `json:"closingCredit"`
}

// TrialBalanceReport is the per-period trial balance with grand totals.
// Debit and credit turnover totals are equal for a ledger that only ever
// accepted balanced entries.
type TrialBalanceReport struct {
	CompanyID           string          `json:"companyID"`
	FiscalYear          int             `json:"fiscalYear"`
	FiscalPeriod        FiscalPeriod    `json:"fiscalPeriod"`
	Rows                []TrialBalanceRow `json:"rows"`
	TotalDebitTurnover  decimal.Decimal `json:"totalDebitTurnover"`
	TotalCreditTurnover decimal.Decimal `json:"totalCreditTurnover"`
}
