package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/accubooks/ledger_backend/internal/apperrors"
	"github.com/accubooks/ledger_backend/internal/core/domain"
	portsrepo "github.com/accubooks/ledger_backend/internal/core/ports/repositories"
	"github.com/accubooks/ledger_backend/internal/utils/accounting"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxEntryRepository persists journal entries and their lines. Posting
// runs as one transaction together with the balance upserts, so the
// balance writer is a collaborator here.
type PgxEntryRepository struct {
	BaseRepository
	balanceTx        portsrepo.BalanceTransactionSupport
	entryNumberWidth int
}

func newPgxEntryRepository(pool *pgxpool.Pool, balanceTx portsrepo.BalanceTransactionSupport, entryNumberWidth int) portsrepo.EntryRepositoryWithTx {
	return &PgxEntryRepository{
		BaseRepository:   BaseRepository{Pool: pool},
		balanceTx:        balanceTx,
		entryNumberWidth: entryNumberWidth,
	}
}

var _ portsrepo.EntryRepositoryWithTx = (*PgxEntryRepository)(nil)

const entryColumns = `entry_id, company_id, entry_number, entry_date, posting_date, description,
		document_number, document_type, status, fiscal_year, fiscal_period,
		approved_by, approved_at, is_reversal, reversal_of_id, reversed_by_id,
		created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, entry_id, account_id, line_number, debit, credit,
		description, cost_center_id, partner_id, analytical_account`

func scanEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var e domain.JournalEntry
	err := row.Scan(
		&e.EntryID,
		&e.CompanyID,
		&e.EntryNumber,
		&e.EntryDate,
		&e.PostingDate,
		&e.Description,
		&e.DocumentNumber,
		&e.DocumentType,
		&e.Status,
		&e.FiscalYear,
		&e.FiscalPeriod,
		&e.ApprovedBy,
		&e.ApprovedAt,
		&e.IsReversal,
		&e.ReversalOfID,
		&e.ReversedByID,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan journal entry", err)
	}
	return &e, nil
}

func scanLine(row pgx.Row) (*domain.JournalEntryLine, error) {
	var l domain.JournalEntryLine
	err := row.Scan(
		&l.LineID,
		&l.EntryID,
		&l.AccountID,
		&l.LineNumber,
		&l.Debit,
		&l.Credit,
		&l.Description,
		&l.CostCenterID,
		&l.PartnerID,
		&l.AnalyticalAccount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan journal entry line", err)
	}
	return &l, nil
}

// FindEntryByID retrieves a journal entry header by its unique identifier.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`
	return scanEntry(r.Pool.QueryRow(ctx, query, entryID))
}

// FindLinesByEntryID retrieves all lines of an entry ordered by line number.
func (r *PgxEntryRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error) {
	query := `SELECT ` + lineColumns + ` FROM journal_entry_lines WHERE entry_id = $1 ORDER BY line_number ASC;`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entry lines", err)
	}
	defer rows.Close()

	var lines []domain.JournalEntryLine
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, err
		}
		lines = append(lines, *line)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate entry lines", err)
	}
	return lines, nil
}

// ListEntries retrieves entry headers for a company matching the filter,
// newest entry date first, together with the total match count.
func (r *PgxEntryRepository) ListEntries(ctx context.Context, companyID string, filter portsrepo.EntryFilter) ([]domain.JournalEntry, int64, error) {
	conditions := []string{"company_id = $1"}
	args := []interface{}{companyID}

	addCondition := func(clause string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.FiscalYear != nil {
		addCondition("fiscal_year = $%d", *filter.FiscalYear)
	}
	if filter.FiscalPeriod != nil {
		addCondition("fiscal_period = $%d", *filter.FiscalPeriod)
	}
	if filter.Status != nil {
		addCondition("status = $%d", *filter.Status)
	}
	if filter.DateFrom != nil {
		addCondition("entry_date >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		addCondition("entry_date <= $%d", *filter.DateTo)
	}
	if filter.AccountID != nil {
		addCondition("EXISTS (SELECT 1 FROM journal_entry_lines l WHERE l.entry_id = journal_entries.entry_id AND l.account_id = $%d)", *filter.AccountID)
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM journal_entries WHERE ` + where + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count journal entries", err)
	}

	listQuery := `SELECT ` + entryColumns + ` FROM journal_entries WHERE ` + where +
		` ORDER BY entry_date DESC, entry_number DESC` +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2) + `;`
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to list journal entries", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to iterate journal entries", err)
	}
	return entries, total, nil
}

// SaveEntry allocates the next entry number for (company, fiscal year)
// and persists the entry with its lines in one transaction. The sequence
// allocation is a single atomic upsert, so concurrent saves never observe
// the same value.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	sequenceQuery := `
		INSERT INTO entry_sequences (company_id, fiscal_year, next_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (company_id, fiscal_year)
		DO UPDATE SET next_value = entry_sequences.next_value + 1
		RETURNING next_value;
	`
	var sequence int64
	if err := tx.QueryRow(ctx, sequenceQuery, entry.CompanyID, entry.FiscalYear).Scan(&sequence); err != nil {
		return nil, apperrors.NewAppError(500, "failed to allocate entry number", err)
	}
	entry.EntryNumber = accounting.FormatEntryNumber(entry.FiscalYear, sequence, r.entryNumberWidth)

	entryQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err = tx.Exec(ctx, entryQuery,
		entry.EntryID,
		entry.CompanyID,
		entry.EntryNumber,
		entry.EntryDate,
		entry.PostingDate,
		entry.Description,
		entry.DocumentNumber,
		entry.DocumentType,
		entry.Status,
		entry.FiscalYear,
		entry.FiscalPeriod,
		entry.ApprovedBy,
		entry.ApprovedAt,
		entry.IsReversal,
		entry.ReversalOfID,
		entry.ReversedByID,
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert journal entry "+entry.EntryID, err)
	}

	lineQuery := `
		INSERT INTO journal_entry_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, line := range entry.Lines {
		_, err = tx.Exec(ctx, lineQuery,
			line.LineID,
			line.EntryID,
			line.AccountID,
			line.LineNumber,
			line.Debit,
			line.Credit,
			line.Description,
			line.CostCenterID,
			line.PartnerID,
			line.AnalyticalAccount,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to insert journal entry line "+line.LineID, err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &entry, nil
}

// MarkEntryPosted flips DRAFT to POSTED and applies the balance deltas in
// a single transaction. The status guard is in the WHERE clause; zero
// rows means another caller won the race or the entry was never DRAFT.
func (r *PgxEntryRepository) MarkEntryPosted(ctx context.Context, entryID string, userID string, now time.Time, deltas []domain.BalanceDelta) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		UPDATE journal_entries
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE entry_id = $1 AND status = $5;
	`
	tag, err := tx.Exec(ctx, query, entryID, domain.Posted, now, userID, domain.Draft)
	if err != nil {
		return apperrors.NewAppError(500, "failed to post journal entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInvalidStateTransition
	}

	if err := r.balanceTx.UpsertBalancesInTx(ctx, tx, deltas); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// MarkEntryApproved flips POSTED to APPROVED recording the approver.
func (r *PgxEntryRepository) MarkEntryApproved(ctx context.Context, entryID string, approverID string, now time.Time) error {
	query := `
		UPDATE journal_entries
		SET status = $2, approved_by = $3, approved_at = $4, last_updated_at = $4, last_updated_by = $3
		WHERE entry_id = $1 AND status = $5;
	`
	tag, err := r.Pool.Exec(ctx, query, entryID, domain.Approved, approverID, now, domain.Posted)
	if err != nil {
		return apperrors.NewAppError(500, "failed to approve journal entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInvalidStateTransition
	}
	return nil
}

// MarkEntryReversed links the reversing entry to the original. The
// reversed_by_id IS NULL guard makes the claim exclusive, so only one
// reversal can ever attach.
func (r *PgxEntryRepository) MarkEntryReversed(ctx context.Context, originalEntryID string, reversingEntryID string, userID string, now time.Time) error {
	query := `
		UPDATE journal_entries
		SET reversed_by_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE entry_id = $1 AND reversed_by_id IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, originalEntryID, reversingEntryID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark journal entry reversed "+originalEntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAlreadyReversed
	}
	return nil
}

// DeleteEntry removes a DRAFT entry; lines go with it via cascade.
func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	query := `DELETE FROM journal_entries WHERE entry_id = $1 AND status = $2;`
	tag, err := r.Pool.Exec(ctx, query, entryID, domain.Draft)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete journal entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInvalidStateTransition
	}
	return nil
}
