package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry.
// The machine is DRAFT -> POSTED -> APPROVED; no transition ever returns
// an entry to DRAFT, and only DRAFT entries may be deleted.
type EntryStatus string

const (
	Draft    EntryStatus = "DRAFT"
	Posted   EntryStatus = "POSTED"
	Approved EntryStatus = "APPROVED"
)

// DocumentType classifies the external document a journal entry books.
type DocumentType string

const (
	DocGeneral DocumentType = "GENERAL"
	DocInvoice DocumentType = "INVOICE"
	DocPayment DocumentType = "PAYMENT"
	DocPayroll DocumentType = "PAYROLL"
)

// JournalEntry represents a single balanced accounting transaction
// composed of two or more lines. Entry numbers are unique per
// (company, fiscal year) and formatted JE-<year>-<seq>.
type JournalEntry struct {
	EntryID        string       `json:"entryID"` // Primary key (UUID)
	CompanyID      string       `json:"companyID"`
	EntryNumber    string       `json:"entryNumber"`
	EntryDate      time.Time    `json:"entryDate"`
	PostingDate    time.Time    `json:"postingDate"`
	Description    string       `json:"description"`
	DocumentNumber *string      `json:"documentNumber,omitempty"`
	DocumentType   DocumentType `json:"documentType"`
	Status         EntryStatus  `json:"status"`
	FiscalYear     int          `json:"fiscalYear"`
	FiscalPeriod   FiscalPeriod `json:"fiscalPeriod"`
	ApprovedBy     *string      `json:"approvedBy,omitempty"` // UserID reference
	ApprovedAt     *time.Time   `json:"approvedAt,omitempty"`
	IsReversal     bool         `json:"isReversal"`
	ReversalOfID   *string      `json:"reversalOfID,omitempty"` // Set on the reversing entry
	ReversedByID   *string      `json:"reversedByID,omitempty"` // Back-link set on the original
	AuditFields
	Lines []JournalEntryLine `json:"lines,omitempty"`
}

// JournalEntryLine is one debit-or-credit movement against one account.
// Exactly one of Debit/Credit is positive, the other zero. Lines are
// immutable once the parent entry leaves DRAFT.
type JournalEntryLine struct {
	LineID            string          `json:"lineID"` // Primary key (UUID)
	EntryID           string          `json:"entryID"`
	AccountID         string          `json:"accountID"`
	LineNumber        int             `json:"lineNumber"` // 1-based, preserves input order
	Debit             decimal.Decimal `json:"debit"`
	Credit            decimal.Decimal `json:"credit"`
	Description       *string         `json:"description,omitempty"`
	CostCenterID      *string         `json:"costCenterID,omitempty"`
	PartnerID         *string         `json:"partnerID,omitempty"`
	AnalyticalAccount *string         `json:"analyticalAccount,omitempty"`
}

// Validate checks that the line is a pure single-sided movement: one side
// strictly positive, the other exactly zero.
func (l JournalEntryLine) Validate() bool {
	debitSet := l.Debit.IsPositive()
	creditSet := l.Credit.IsPositive()
	if l.Debit.IsNegative() || l.Credit.IsNegative() {
		return false
	}
	return debitSet != creditSet
}

// CanTransitionTo reports whether the entry status machine permits moving
// from the current status to the target.
func (s EntryStatus) CanTransitionTo(target EntryStatus) bool {
	switch s {
	case Draft:
		return target == Posted
	case Posted:
		return target == Approved
	default:
		return false
	}
}
