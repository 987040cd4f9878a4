package pgsql

import (
	"context"

	"github.com/accubooks/ledger_backend/internal/apperrors"
	"github.com/accubooks/ledger_backend/internal/core/domain"
	portsrepo "github.com/accubooks/ledger_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReportingRepository reads aggregated balance data for reports.
type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetTrialBalanceData retrieves per-account balance rows for a company
// and fiscal period, ordered by account code.
func (r *PgxReportingRepository) GetTrialBalanceData(ctx context.Context, companyID string, fiscalYear int, fiscalPeriod domain.FiscalPeriod) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT a.account_id, a.code, a.name, a.account_type,
		       b.opening_debit, b.opening_credit, b.debit_turnover, b.credit_turnover,
		       b.closing_debit, b.closing_credit
		FROM account_balances b
		JOIN accounts a ON a.account_id = b.account_id
		WHERE a.company_id = $1 AND b.fiscal_year = $2 AND b.fiscal_period = $3
		ORDER BY a.code ASC;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, fiscalYear, fiscalPeriod)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trial balance data", err)
	}
	defer rows.Close()

	var result []domain.TrialBalanceRow
	for rows.Next() {
		var row domain.TrialBalanceRow
		err := rows.Scan(
			&row.AccountID,
			&row.AccountCode,
			&row.AccountName,
			&row.AccountType,
			&row.OpeningDebit,
			&row.OpeningCredit,
			&row.DebitTurnover,
			&row.CreditTurnover,
			&row.ClosingDebit,
			&row.ClosingCredit,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan trial balance row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate trial balance rows", err)
	}
	return result, nil
}
