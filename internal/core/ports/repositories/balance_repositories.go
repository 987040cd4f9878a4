package repositories

import (
	"context"

	"github.com/accubooks/ledger_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// BalanceReader defines read operations for account balance data.
type BalanceReader interface {
	// FindBalance retrieves the stored balance row for (account, year, period).
	// Returns apperrors.ErrNotFound for untouched periods; callers map that
	// to an all-zero row.
	FindBalance(ctx context.Context, accountID string, fiscalYear int, fiscalPeriod domain.FiscalPeriod) (*domain.AccountBalance, error)
}

// BalanceTransactionSupport defines balance mutations that run inside a
// caller-owned posting transaction.
type BalanceTransactionSupport interface {
	// UpsertBalancesInTx applies turnover deltas as atomic arithmetic
	// increments, creating rows lazily and recomputing closing sides in
	// the same statement.
	UpsertBalancesInTx(ctx context.Context, tx pgx.Tx, deltas []domain.BalanceDelta) error
}

// BalanceRepositoryFacade combines all balance repository interfaces.
type BalanceRepositoryFacade interface {
	BalanceReader
	BalanceTransactionSupport
}
