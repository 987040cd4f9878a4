package services

import (
	"context"
	"time"

	"github.com/accubooks/ledger_backend/internal/core/domain"
	"github.com/accubooks/ledger_backend/internal/dto"
)

// LedgerReaderSvc defines read operations over journal entries and balances.
type LedgerReaderSvc interface {
	// GetJournalEntry retrieves an entry with its lines within a company.
	GetJournalEntry(ctx context.Context, companyID string, entryID string) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves a filtered, paginated list of entries.
	ListJournalEntries(ctx context.Context, companyID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)

	// GetAccountBalance returns the balance row for (account, year, period),
	// or an all-zero row when the period is untouched. Never errors for
	// untouched periods.
	GetAccountBalance(ctx context.Context, companyID string, accountID string, fiscalYear int, fiscalPeriod domain.FiscalPeriod) (*domain.AccountBalance, error)
}

// LedgerWriterSvc defines the posting engine operations.
type LedgerWriterSvc interface {
	// CreateJournalEntry validates and persists a new DRAFT entry.
	CreateJournalEntry(ctx context.Context, companyID string, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error)

	// PostJournalEntry transitions DRAFT to POSTED and applies balances atomically.
	PostJournalEntry(ctx context.Context, companyID string, entryID string, userID string) (*domain.JournalEntry, error)

	// ApproveJournalEntry transitions POSTED to APPROVED.
	ApproveJournalEntry(ctx context.Context, companyID string, entryID string, approverID string) (*domain.JournalEntry, error)

	// ReverseJournalEntry creates and auto-posts a compensating entry for a
	// POSTED or APPROVED original.
	ReverseJournalEntry(ctx context.Context, companyID string, entryID string, userID string, reversalDate time.Time) (*domain.JournalEntry, error)

	// DeleteJournalEntry removes a DRAFT entry and its lines.
	DeleteJournalEntry(ctx context.Context, companyID string, entryID string) error
}

// LedgerSvcFacade combines all posting engine service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
