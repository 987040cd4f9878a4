package repositories

import (
	"context"
	"time"

	"github.com/accubooks/ledger_backend/internal/core/domain"
)

// EntryFilter narrows ListEntries results. Nil fields are ignored.
type EntryFilter struct {
	FiscalYear   *int
	FiscalPeriod *domain.FiscalPeriod
	Status       *domain.EntryStatus
	AccountID    *string
	DateFrom     *time.Time
	DateTo       *time.Time
	Limit        int
	Offset       int
}

// EntryReader defines read operations for journal entry data.
type EntryReader interface {
	// FindEntryByID retrieves a journal entry header by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves all lines of an entry ordered by line number.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error)

	// ListEntries retrieves entry headers for a company matching the filter,
	// newest entry date first, together with the total match count.
	ListEntries(ctx context.Context, companyID string, filter EntryFilter) ([]domain.JournalEntry, int64, error)
}

// EntryWriter defines write operations for journal entry data.
type EntryWriter interface {
	// SaveEntry allocates the next entry number for (company, fiscal year)
	// and persists the entry with its lines in one transaction. The
	// returned copy carries the allocated entry number.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error)

	// MarkEntryPosted flips DRAFT to POSTED and applies the balance deltas
	// in a single transaction; either both happen or neither does. It
	// returns ErrInvalidStateTransition if the entry is no longer DRAFT.
	MarkEntryPosted(ctx context.Context, entryID string, userID string, now time.Time, deltas []domain.BalanceDelta) error

	// MarkEntryApproved flips POSTED to APPROVED recording the approver.
	MarkEntryApproved(ctx context.Context, entryID string, approverID string, now time.Time) error

	// MarkEntryReversed links the reversing entry to the original. It
	// returns ErrAlreadyReversed if the original already has a reversal.
	MarkEntryReversed(ctx context.Context, originalEntryID string, reversingEntryID string, userID string, now time.Time) error

	// DeleteEntry removes a DRAFT entry and its lines.
	DeleteEntry(ctx context.Context, entryID string) error
}

// EntryRepositoryFacade combines all journal-entry repository interfaces.
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}

// EntryRepositoryWithTx extends EntryRepositoryFacade with transaction capabilities.
type EntryRepositoryWithTx interface {
	EntryRepositoryFacade
	TransactionManager
}
