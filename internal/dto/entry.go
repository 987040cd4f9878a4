package dto

import (
	"time"

	"github.com/accubooks/ledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryLineRequest defines one line of a new journal entry.
// Exactly one of debit/credit must be positive; the other must be zero.
type CreateEntryLineRequest struct {
	AccountID         string          `json:"accountID" binding:"required"`
	Debit             decimal.Decimal `json:"debit"`
	Credit            decimal.Decimal `json:"credit"`
	Description       *string         `json:"description"`
	CostCenterID      *string         `json:"costCenterID"`
	PartnerID         *string         `json:"partnerID"`
	AnalyticalAccount *string         `json:"analyticalAccount"`
}

// CreateJournalEntryRequest defines the data needed to create a new
// journal entry in DRAFT status.
type CreateJournalEntryRequest struct {
	EntryDate      time.Time           `json:"entryDate" binding:"required"`
	PostingDate    time.Time           `json:"postingDate" binding:"required"`
	Description    string              `json:"description" binding:"required"`
	DocumentNumber *string             `json:"documentNumber"`
	DocumentType   domain.DocumentType `json:"documentType" binding:"omitempty,oneof=GENERAL INVOICE PAYMENT PAYROLL"`
	FiscalYear     int                 `json:"fiscalYear" binding:"required"`
	FiscalPeriod   domain.FiscalPeriod `json:"fiscalPeriod" binding:"required,fiscalperiod"`
	Lines          []CreateEntryLineRequest `json:"lines" binding:"required"`
}

// ReverseJournalEntryRequest carries the reversal date; fiscal year and
// period of the reversal are derived from it.
type ReverseJournalEntryRequest struct {
	ReversalDate time.Time `json:"reversalDate" binding:"required"`
}

// ListEntriesParams defines query parameters for listing journal entries.
type ListEntriesParams struct {
	FiscalYear   *int                 `form:"fiscalYear"`
	FiscalPeriod *domain.FiscalPeriod `form:"fiscalPeriod"`
	Status       *domain.EntryStatus  `form:"status"`
	AccountID    *string              `form:"accountID"`
	DateFrom     *time.Time           `form:"dateFrom" time_format:"2006-01-02"`
	DateTo       *time.Time           `form:"dateTo" time_format:"2006-01-02"`
	Limit        int                  `form:"limit,default=50"`
	Offset       int                  `form:"offset,default=0"`
}

// EntryLineResponse defines the data returned for a journal entry line.
type EntryLineResponse struct {
	LineID            string          `json:"lineID"`
	AccountID         string          `json:"accountID"`
	LineNumber        int             `json:"lineNumber"`
	Debit             decimal.Decimal `json:"debit"`
	Credit            decimal.Decimal `json:"credit"`
	Description       *string         `json:"description,omitempty"`
	CostCenterID      *string         `json:"costCenterID,omitempty"`
	PartnerID         *string         `json:"partnerID,omitempty"`
	AnalyticalAccount *string         `json:"analyticalAccount,omitempty"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID        string              `json:"entryID"`
	CompanyID      string              `json:"companyID"`
	EntryNumber    string              `json:"entryNumber"`
	EntryDate      time.Time           `json:"entryDate"`
	PostingDate    time.Time           `json:"postingDate"`
	Description    string              `json:"description"`
	DocumentNumber *string             `json:"documentNumber,omitempty"`
	DocumentType   domain.DocumentType `json:"documentType"`
	Status         domain.EntryStatus  `json:"status"`
	FiscalYear     int                 `json:"fiscalYear"`
	FiscalPeriod   domain.FiscalPeriod `json:"fiscalPeriod"`
	ApprovedBy     *string             `json:"approvedBy,omitempty"`
	ApprovedAt     *time.Time          `json:"approvedAt,omitempty"`
	IsReversal     bool                `json:"isReversal"`
	ReversalOfID   *string             `json:"reversalOfID,omitempty"`
	ReversedByID   *string             `json:"reversedByID,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	CreatedBy      string              `json:"createdBy"`
	Lines          []EntryLineResponse `json:"lines,omitempty"`
}

// ListEntriesResponse wraps a page of entries with the total match count.
type ListEntriesResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
	Total   int64                  `json:"total"`
	Limit   int                    `json:"limit"`
	Offset  int                    `json:"offset"`
}

// ToEntryLineResponse converts a domain line to its DTO.
func ToEntryLineResponse(l *domain.JournalEntryLine) EntryLineResponse {
	return EntryLineResponse{
		LineID:            l.LineID,
		AccountID:         l.AccountID,
		LineNumber:        l.LineNumber,
		Debit:             l.Debit,
		Credit:            l.Credit,
		Description:       l.Description,
		CostCenterID:      l.CostCenterID,
		PartnerID:         l.PartnerID,
		AnalyticalAccount: l.AnalyticalAccount,
	}
}

// ToJournalEntryResponse converts a domain entry (with lines, if loaded)
// to its DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:        e.EntryID,
		CompanyID:      e.CompanyID,
		EntryNumber:    e.EntryNumber,
		EntryDate:      e.EntryDate,
		PostingDate:    e.PostingDate,
		Description:    e.Description,
		DocumentNumber: e.DocumentNumber,
		DocumentType:   e.DocumentType,
		Status:         e.Status,
		FiscalYear:     e.FiscalYear,
		FiscalPeriod:   e.FiscalPeriod,
		ApprovedBy:     e.ApprovedBy,
		ApprovedAt:     e.ApprovedAt,
		IsReversal:     e.IsReversal,
		ReversalOfID:   e.ReversalOfID,
		ReversedByID:   e.ReversedByID,
		CreatedAt:      e.CreatedAt,
		CreatedBy:      e.CreatedBy,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]EntryLineResponse, len(e.Lines))
		for i := range e.Lines {
			resp.Lines[i] = ToEntryLineResponse(&e.Lines[i])
		}
	}
	return resp
}
