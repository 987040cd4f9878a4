package pgsql

import (
	"context"
	"errors"

	"github.com/accubooks/ledger_backend/internal/apperrors"
	"github.com/accubooks/ledger_backend/internal/core/domain"
	portsrepo "github.com/accubooks/ledger_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBalanceRepository persists per-period account balance rows. All
// mutation happens inside posting transactions owned by the entry
// repository.
type PgxBalanceRepository struct {
	BaseRepository
}

func newPgxBalanceRepository(pool *pgxpool.Pool) portsrepo.BalanceRepositoryFacade {
	return &PgxBalanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BalanceRepositoryFacade = (*PgxBalanceRepository)(nil)

// FindBalance retrieves the stored balance row for (account, year, period).
func (r *PgxBalanceRepository) FindBalance(ctx context.Context, accountID string, fiscalYear int, fiscalPeriod domain.FiscalPeriod) (*domain.AccountBalance, error) {
	query := `
		SELECT account_id, fiscal_year, fiscal_period,
		       opening_debit, opening_credit, debit_turnover, credit_turnover,
		       closing_debit, closing_credit
		FROM account_balances
		WHERE account_id = $1 AND fiscal_year = $2 AND fiscal_period = $3;
	`
	var b domain.AccountBalance
	err := r.Pool.QueryRow(ctx, query, accountID, fiscalYear, fiscalPeriod).Scan(
		&b.AccountID,
		&b.FiscalYear,
		&b.FiscalPeriod,
		&b.OpeningDebit,
		&b.OpeningCredit,
		&b.DebitTurnover,
		&b.CreditTurnover,
		&b.ClosingDebit,
		&b.ClosingCredit,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to fetch account balance", err)
	}
	return &b, nil
}

// UpsertBalancesInTx applies turnover deltas as atomic arithmetic
// increments. Each statement creates the row if missing and recomputes
// both closing sides from opening plus accumulated turnover, so
// concurrent postings compose instead of clobbering each other.
func (r *PgxBalanceRepository) UpsertBalancesInTx(ctx context.Context, tx pgx.Tx, deltas []domain.BalanceDelta) error {
	query := `
		INSERT INTO account_balances (
			account_id, fiscal_year, fiscal_period,
			opening_debit, opening_credit, debit_turnover, credit_turnover,
			closing_debit, closing_credit
		)
		VALUES ($1, $2, $3, 0, 0, $4, $5, $4 - $5, $5 - $4)
		ON CONFLICT (account_id, fiscal_year, fiscal_period)
		DO UPDATE SET
			debit_turnover = account_balances.debit_turnover + EXCLUDED.debit_turnover,
			credit_turnover = account_balances.credit_turnover + EXCLUDED.credit_turnover,
			closing_debit = account_balances.opening_debit
				+ account_balances.debit_turnover + EXCLUDED.debit_turnover
				- account_balances.credit_turnover - EXCLUDED.credit_turnover,
			closing_credit = account_balances.opening_credit
				+ account_balances.credit_turnover + EXCLUDED.credit_turnover
				- account_balances.debit_turnover - EXCLUDED.debit_turnover;
	`
	for _, delta := range deltas {
		_, err := tx.Exec(ctx, query,
			delta.AccountID,
			delta.FiscalYear,
			delta.FiscalPeriod,
			delta.Debit,
			delta.Credit,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to upsert balance for account "+delta.AccountID, err)
		}
	}
	return nil
}
