package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// BalanceSide names the side of the ledger an account normally carries
// its balance on.
type BalanceSide string

const (
	DebitSide  BalanceSide = "DEBIT"
	CreditSide BalanceSide = "CREDIT"
)

// NormalSide returns the normal balance side for the account type:
// ASSET/EXPENSE accounts normally carry a debit balance, the rest credit.
func (t AccountType) NormalSide() BalanceSide {
	switch t {
	case Asset, Expense:
		return DebitSide
	default:
		return CreditSide
	}
}

// Valid reports whether the account type is one of the five known types.
func (t AccountType) Valid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account represents one node of a company's chart of accounts.
// Accounts are read-only to the posting engine; they are managed by the
// chart-of-accounts service.
type Account struct {
	AccountID          string      `json:"accountID"` // Primary key (UUID)
	CompanyID          string      `json:"companyID"`
	Code               string      `json:"code"` // All-digit code, unique per company
	Name               string      `json:"name"`
	AccountType        AccountType `json:"accountType"`
	ParentAccountID    *string     `json:"parentAccountID,omitempty"` // Nullable, self-referencing
	RequiresCostCenter bool        `json:"requiresCostCenter"`
	RequiresPartner    bool        `json:"requiresPartner"`
	IsActive           bool        `json:"isActive"`
	AuditFields
}
