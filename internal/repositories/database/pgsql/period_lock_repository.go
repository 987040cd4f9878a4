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

// PgxPeriodLockRepository persists fiscal period locks.
type PgxPeriodLockRepository struct {
	BaseRepository
}

func newPgxPeriodLockRepository(pool *pgxpool.Pool) portsrepo.PeriodLockRepositoryFacade {
	return &PgxPeriodLockRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PeriodLockRepositoryFacade = (*PgxPeriodLockRepository)(nil)

// FindLock retrieves the lock row for (company, year, period).
func (r *PgxPeriodLockRepository) FindLock(ctx context.Context, companyID string, fiscalYear int, fiscalPeriod domain.FiscalPeriod) (*domain.FiscalPeriodLock, error) {
	query := `
		SELECT lock_id, company_id, fiscal_year, fiscal_period, is_locked, locked_at, locked_by
		FROM fiscal_period_locks
		WHERE company_id = $1 AND fiscal_year = $2 AND fiscal_period = $3;
	`
	var lock domain.FiscalPeriodLock
	err := r.Pool.QueryRow(ctx, query, companyID, fiscalYear, fiscalPeriod).Scan(
		&lock.LockID,
		&lock.CompanyID,
		&lock.FiscalYear,
		&lock.FiscalPeriod,
		&lock.IsLocked,
		&lock.LockedAt,
		&lock.LockedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to fetch period lock", err)
	}
	return &lock, nil
}

// UpsertLock creates or updates the lock row for its identity tuple.
func (r *PgxPeriodLockRepository) UpsertLock(ctx context.Context, lock domain.FiscalPeriodLock) error {
	query := `
		INSERT INTO fiscal_period_locks (lock_id, company_id, fiscal_year, fiscal_period, is_locked, locked_at, locked_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (company_id, fiscal_year, fiscal_period)
		DO UPDATE SET is_locked = EXCLUDED.is_locked, locked_at = EXCLUDED.locked_at, locked_by = EXCLUDED.locked_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		lock.LockID,
		lock.CompanyID,
		lock.FiscalYear,
		lock.FiscalPeriod,
		lock.IsLocked,
		lock.LockedAt,
		lock.LockedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert period lock", err)
	}
	return nil
}
