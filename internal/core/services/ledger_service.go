package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/accubooks/ledger_backend/internal/apperrors"
	"github.com/accubooks/ledger_backend/internal/core/domain"
	portsrepo "github.com/accubooks/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/accubooks/ledger_backend/internal/core/ports/services"
	"github.com/accubooks/ledger_backend/internal/dto"
	"github.com/accubooks/ledger_backend/internal/middleware"
)

// ledgerService is the posting engine: it validates, creates, posts,
// approves, reverses and deletes journal entries, and drives the balance
// ledger. Accounts and period locks are consulted, never mutated.
type ledgerService struct {
	entryRepo     portsrepo.EntryRepositoryWithTx
	balanceRepo   portsrepo.BalanceReader
	accountSvc    portssvc.AccountReaderSvc
	periodLockSvc portssvc.PeriodLockSvcFacade
}

// NewLedgerService creates a new posting engine service.
func NewLedgerService(entryRepo portsrepo.EntryRepositoryWithTx, balanceRepo portsrepo.BalanceReader, accountSvc portssvc.AccountReaderSvc, periodLockSvc portssvc.PeriodLockSvcFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		entryRepo:     entryRepo,
		balanceRepo:   balanceRepo,
		accountSvc:    accountSvc,
		periodLockSvc: periodLockSvc,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CreateJournalEntry validates and persists a new DRAFT entry.
func (s *ledgerService) CreateJournalEntry(ctx context.Context, companyID string, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	return s.createEntry(ctx, companyID, req, creatorUserID, false, nil)
}

// createEntry is the shared create path for regular and reversal entries.
func (s *ledgerService) createEntry(ctx context.Context, companyID string, req dto.CreateJournalEntryRequest, creatorUserID string, isReversal bool, reversalOfID *string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Each line must be a pure single-sided movement.
	for i, line := range req.Lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return nil, fmt.Errorf("%w: line %d has a negative amount", apperrors.ErrInvalidLine, i+1)
		}
		if line.Debit.IsPositive() == line.Credit.IsPositive() {
			return nil, fmt.Errorf("%w: line %d must have exactly one of debit or credit set", apperrors.ErrInvalidLine, i+1)
		}
	}

	// Double-entry check: debits must equal credits exactly, no epsilon.
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, line := range req.Lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}
	if !totalDebit.Equal(totalCredit) {
		return nil, fmt.Errorf("%w: debit total is %s, credit total is %s", apperrors.ErrUnbalanced, totalDebit.String(), totalCredit.String())
	}

	if len(req.Lines) < 2 {
		return nil, apperrors.ErrInsufficientLines
	}

	locked, err := s.periodLockSvc.IsPeriodLocked(ctx, companyID, req.FiscalYear, req.FiscalPeriod)
	if err != nil {
		logger.Error("Failed to check period lock", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to check period lock: %w", err)
	}
	if locked {
		return nil, fmt.Errorf("%w: %s %d", apperrors.ErrPeriodLocked, req.FiscalPeriod, req.FiscalYear)
	}

	// Fetch all referenced accounts in one batch; accounts outside the
	// company are simply absent from the map.
	accountIDs := make([]string, 0, len(req.Lines))
	for _, line := range req.Lines {
		accountIDs = append(accountIDs, line.AccountID)
	}
	accountsMap, err := s.accountSvc.GetAccountsByIDs(ctx, companyID, uniqueStrings(accountIDs))
	if err != nil {
		logger.Error("Failed to fetch accounts for entry creation", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	for i, line := range req.Lines {
		acc, found := accountsMap[line.AccountID]
		if !found {
			return nil, fmt.Errorf("%w: line %d references account %s", apperrors.ErrAccountNotFound, i+1, line.AccountID)
		}
		if acc.RequiresCostCenter && line.CostCenterID == nil {
			return nil, fmt.Errorf("%w: line %d, account %s", apperrors.ErrCostCenterRequired, i+1, acc.Code)
		}
		if acc.RequiresPartner && line.PartnerID == nil {
			return nil, fmt.Errorf("%w: line %d, account %s", apperrors.ErrPartnerRequired, i+1, acc.Code)
		}
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()

	documentType := req.DocumentType
	if documentType == "" {
		documentType = domain.DocGeneral
	}

	lines := make([]domain.JournalEntryLine, len(req.Lines))
	for i, lineReq := range req.Lines {
		lines[i] = domain.JournalEntryLine{
			LineID:            uuid.NewString(),
			EntryID:           entryID,
			AccountID:         lineReq.AccountID,
			LineNumber:        i + 1,
			Debit:             lineReq.Debit,
			Credit:            lineReq.Credit,
			Description:       lineReq.Description,
			CostCenterID:      lineReq.CostCenterID,
			PartnerID:         lineReq.PartnerID,
			AnalyticalAccount: lineReq.AnalyticalAccount,
		}
	}

	entry := domain.JournalEntry{
		EntryID:        entryID,
		CompanyID:      companyID,
		EntryDate:      req.EntryDate,
		PostingDate:    req.PostingDate,
		Description:    req.Description,
		DocumentNumber: req.DocumentNumber,
		DocumentType:   documentType,
		Status:         domain.Draft,
		FiscalYear:     req.FiscalYear,
		FiscalPeriod:   req.FiscalPeriod,
		IsReversal:     isReversal,
		ReversalOfID:   reversalOfID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
		Lines: lines,
	}

	saved, err := s.entryRepo.SaveEntry(ctx, entry)
	if err != nil {
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	logger.Info("Journal entry created",
		slog.String("entry_id", saved.EntryID),
		slog.String("entry_number", saved.EntryNumber),
		slog.String("company_id", companyID))
	return saved, nil
}

// PostJournalEntry transitions a DRAFT entry to POSTED and applies its
// balance deltas. The status flip and every balance increment commit in
// one storage transaction or not at all.
func (s *ledgerService) PostJournalEntry(ctx context.Context, companyID string, entryID string, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.getEntryForCompany(ctx, companyID, entryID)
	if err != nil {
		return nil, err
	}

	if entry.Status != domain.Draft {
		return nil, fmt.Errorf("%w: cannot post entry with status %s", apperrors.ErrInvalidStateTransition, entry.Status)
	}

	// Locks can be applied after draft creation, so re-check at post time.
	locked, err := s.periodLockSvc.IsPeriodLocked(ctx, companyID, entry.FiscalYear, entry.FiscalPeriod)
	if err != nil {
		logger.Error("Failed to check period lock at post time", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to check period lock: %w", err)
	}
	if locked {
		return nil, fmt.Errorf("%w: %s %d", apperrors.ErrPeriodLocked, entry.FiscalPeriod, entry.FiscalYear)
	}

	lines, err := s.entryRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		logger.Error("Failed to fetch lines for posting", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to fetch entry lines: %w", err)
	}
	entry.Lines = lines

	now := time.Now().UTC()
	deltas := domain.AccumulateDeltas(*entry)
	if err := s.entryRepo.MarkEntryPosted(ctx, entryID, userID, now, deltas); err != nil {
		logger.Error("Failed to post journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, err
	}

	entry.Status = domain.Posted
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID

	logger.Info("Journal entry posted", slog.String("entry_id", entryID), slog.String("entry_number", entry.EntryNumber))
	return entry, nil
}

// ApproveJournalEntry transitions a POSTED entry to APPROVED and records
// the approver. No balance mutation.
func (s *ledgerService) ApproveJournalEntry(ctx context.Context, companyID string, entryID string, approverID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.getEntryForCompany(ctx, companyID, entryID)
	if err != nil {
		return nil, err
	}

	if entry.Status != domain.Posted {
		return nil, fmt.Errorf("%w: only posted entries can be approved, status is %s", apperrors.ErrInvalidStateTransition, entry.Status)
	}

	now := time.Now().UTC()
	if err := s.entryRepo.MarkEntryApproved(ctx, entryID, approverID, now); err != nil {
		logger.Error("Failed to approve journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, err
	}

	entry.Status = domain.Approved
	entry.ApprovedBy = &approverID
	entry.ApprovedAt = &now
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = approverID

	logger.Info("Journal entry approved", slog.String("entry_id", entryID), slog.String("approver_id", approverID))
	return entry, nil
}

// ReverseJournalEntry creates a compensating entry with debits and
// credits swapped per line, links it to the original, and auto-posts it.
// The original keeps its status; only the reversal back-link is recorded,
// which also rejects a second reversal of the same original.
func (s *ledgerService) ReverseJournalEntry(ctx context.Context, companyID string, entryID string, userID string, reversalDate time.Time) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	original, err := s.getEntryForCompany(ctx, companyID, entryID)
	if err != nil {
		return nil, err
	}

	if original.Status != domain.Posted && original.Status != domain.Approved {
		return nil, fmt.Errorf("%w: can only reverse posted or approved entries, status is %s", apperrors.ErrInvalidStateTransition, original.Status)
	}
	if original.ReversedByID != nil {
		return nil, fmt.Errorf("%w: entry %s", apperrors.ErrAlreadyReversed, original.EntryNumber)
	}

	originalLines, err := s.entryRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		logger.Error("Failed to fetch original lines for reversal", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to fetch original entry lines: %w", err)
	}

	reversalLines := make([]dto.CreateEntryLineRequest, len(originalLines))
	for i, line := range originalLines {
		var lineDesc *string
		if line.Description != nil {
			d := "Storno: " + *line.Description
			lineDesc = &d
		}
		reversalLines[i] = dto.CreateEntryLineRequest{
			AccountID:         line.AccountID,
			Debit:             line.Credit,
			Credit:            line.Debit,
			Description:       lineDesc,
			CostCenterID:      line.CostCenterID,
			PartnerID:         line.PartnerID,
			AnalyticalAccount: line.AnalyticalAccount,
		}
	}

	reversalReq := dto.CreateJournalEntryRequest{
		EntryDate:      reversalDate,
		PostingDate:    reversalDate,
		Description:    "STORNO: " + original.Description,
		DocumentNumber: original.DocumentNumber,
		DocumentType:   original.DocumentType,
		FiscalYear:     reversalDate.Year(),
		FiscalPeriod:   domain.FiscalPeriodFromDate(reversalDate),
		Lines:          reversalLines,
	}

	// The reversal goes through the full create path so it is
	// independently validated against locks and account flags.
	reversal, err := s.createEntry(ctx, companyID, reversalReq, userID, true, &original.EntryID)
	if err != nil {
		return nil, err
	}

	// Claim the original before posting; a concurrent second reversal
	// fails here instead of double-counting balances.
	now := time.Now().UTC()
	if err := s.entryRepo.MarkEntryReversed(ctx, original.EntryID, reversal.EntryID, userID, now); err != nil {
		logger.Error("Failed to link reversal to original", slog.String("error", err.Error()), slog.String("entry_id", entryID), slog.String("reversal_id", reversal.EntryID))
		return nil, err
	}

	posted, err := s.PostJournalEntry(ctx, companyID, reversal.EntryID, userID)
	if err != nil {
		logger.Error("Failed to auto-post reversal entry", slog.String("error", err.Error()), slog.String("reversal_id", reversal.EntryID))
		return nil, fmt.Errorf("failed to post reversal entry: %w", err)
	}

	logger.Info("Journal entry reversed",
		slog.String("entry_id", entryID),
		slog.String("reversal_id", posted.EntryID),
		slog.String("reversal_number", posted.EntryNumber))
	return posted, nil
}

// DeleteJournalEntry removes a DRAFT entry and its lines. Posted history
// is immutable; anything past DRAFT cannot be deleted.
func (s *ledgerService) DeleteJournalEntry(ctx context.Context, companyID string, entryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.getEntryForCompany(ctx, companyID, entryID)
	if err != nil {
		return err
	}

	if entry.Status != domain.Draft {
		return fmt.Errorf("%w: can only delete draft entries, status is %s", apperrors.ErrInvalidStateTransition, entry.Status)
	}

	if err := s.entryRepo.DeleteEntry(ctx, entryID); err != nil {
		logger.Error("Failed to delete journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return err
	}

	logger.Info("Journal entry deleted", slog.String("entry_id", entryID), slog.String("entry_number", entry.EntryNumber))
	return nil
}

// GetJournalEntry retrieves an entry with its lines within a company.
func (s *ledgerService) GetJournalEntry(ctx context.Context, companyID string, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.getEntryForCompany(ctx, companyID, entryID)
	if err != nil {
		return nil, err
	}

	lines, err := s.entryRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entry lines: %w", err)
	}
	entry.Lines = lines
	return entry, nil
}

// ListJournalEntries retrieves a filtered, paginated list of entries.
func (s *ledgerService) ListJournalEntries(ctx context.Context, companyID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}

	filter := portsrepo.EntryFilter{
		FiscalYear:   params.FiscalYear,
		FiscalPeriod: params.FiscalPeriod,
		Status:       params.Status,
		AccountID:    params.AccountID,
		DateFrom:     params.DateFrom,
		DateTo:       params.DateTo,
		Limit:        limit,
		Offset:       params.Offset,
	}

	entries, total, err := s.entryRepo.ListEntries(ctx, companyID, filter)
	if err != nil {
		logger.Error("Failed to list journal entries", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	responses := make([]dto.JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = dto.ToJournalEntryResponse(&entries[i])
	}

	return &dto.ListEntriesResponse{
		Entries: responses,
		Total:   total,
		Limit:   limit,
		Offset:  params.Offset,
	}, nil
}

// GetAccountBalance returns the stored balance row for the tuple, or an
// all-zero row when no posting has touched the period yet.
func (s *ledgerService) GetAccountBalance(ctx context.Context, companyID string, accountID string, fiscalYear int, fiscalPeriod domain.FiscalPeriod) (*domain.AccountBalance, error) {
	// The account must resolve within the company before its balances
	// are visible.
	if _, err := s.accountSvc.GetAccountByID(ctx, companyID, accountID); err != nil {
		return nil, err
	}

	balance, err := s.balanceRepo.FindBalance(ctx, accountID, fiscalYear, fiscalPeriod)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			zero := domain.ZeroBalance(accountID, fiscalYear, fiscalPeriod)
			return &zero, nil
		}
		return nil, fmt.Errorf("failed to fetch account balance: %w", err)
	}
	return balance, nil
}

// getEntryForCompany fetches an entry and hides entries of other
// companies behind ErrNotFound.
func (s *ledgerService) getEntryForCompany(ctx context.Context, companyID string, entryID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}
	if entry.CompanyID != companyID {
		logger.Warn("Journal entry belongs to a different company",
			slog.String("entry_id", entryID),
			slog.String("entry_company", entry.CompanyID),
			slog.String("requested_company", companyID))
		return nil, apperrors.ErrNotFound
	}
	return entry, nil
}

// uniqueStrings returns a slice containing only the unique strings from the input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
