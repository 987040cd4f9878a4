package dto

import (
	"time"

	"github.com/accubooks/ledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code               string             `json:"code" binding:"required"`
	Name               string             `json:"name" binding:"required"`
	AccountType        domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	ParentAccountID    *string            `json:"parentAccountID"`
	RequiresCostCenter bool               `json:"requiresCostCenter"`
	RequiresPartner    bool               `json:"requiresPartner"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateAccountRequest struct {
	Name               *string `json:"name"`
	RequiresCostCenter *bool   `json:"requiresCostCenter"`
	RequiresPartner    *bool   `json:"requiresPartner"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID          string             `json:"accountID"`
	CompanyID          string             `json:"companyID"`
	Code               string             `json:"code"`
	Name               string             `json:"name"`
	AccountType        domain.AccountType `json:"accountType"`
	ParentAccountID    *string            `json:"parentAccountID,omitempty"`
	RequiresCostCenter bool               `json:"requiresCostCenter"`
	RequiresPartner    bool               `json:"requiresPartner"`
	IsActive           bool               `json:"isActive"`
	CreatedAt          time.Time          `json:"createdAt"`
	CreatedBy          string             `json:"createdBy"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// AccountBalanceResponse defines the data returned for a balance query.
type AccountBalanceResponse struct {
	AccountID      string              `json:"accountID"`
	FiscalYear     int                 `json:"fiscalYear"`
	FiscalPeriod   domain.FiscalPeriod `json:"fiscalPeriod"`
	OpeningDebit   decimal.Decimal     `json:"openingDebit"`
	OpeningCredit  decimal.Decimal     `json:"openingCredit"`
	DebitTurnover  decimal.Decimal     `json:"debitTurnover"`
	CreditTurnover decimal.Decimal     `json:"creditTurnover"`
	ClosingDebit   decimal.Decimal     `json:"closingDebit"`
	ClosingCredit  decimal.Decimal     `json:"closingCredit"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:          acc.AccountID,
		CompanyID:          acc.CompanyID,
		Code:               acc.Code,
		Name:               acc.Name,
		AccountType:        acc.AccountType,
		ParentAccountID:    acc.ParentAccountID,
		RequiresCostCenter: acc.RequiresCostCenter,
		RequiresPartner:    acc.RequiresPartner,
		IsActive:           acc.IsActive,
		CreatedAt:          acc.CreatedAt,
		CreatedBy:          acc.CreatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ToAccountBalanceResponse converts a domain.AccountBalance to its DTO.
func ToAccountBalanceResponse(b *domain.AccountBalance) AccountBalanceResponse {
	return AccountBalanceResponse{
		AccountID:      b.AccountID,
		FiscalYear:     b.FiscalYear,
		FiscalPeriod:   b.FiscalPeriod,
		OpeningDebit:   b.OpeningDebit,
		OpeningCredit:  b.OpeningCredit,
		DebitTurnover:  b.DebitTurnover,
		CreditTurnover: b.CreditTurnover,
		ClosingDebit:   b.ClosingDebit,
		ClosingCredit:  b.ClosingCredit,
	}
}
