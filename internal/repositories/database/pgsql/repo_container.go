package pgsql

import (
	portsrepo "github.com/accubooks/ledger_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool, entryNumberWidth int) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	balanceRepo := newPgxBalanceRepository(dbPool)
	entryRepo := newPgxEntryRepository(dbPool, balanceRepo, entryNumberWidth)
	periodLockRepo := newPgxPeriodLockRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:    accountRepo,
		EntryRepo:      entryRepo,
		BalanceRepo:    balanceRepo,
		PeriodLockRepo: periodLockRepo,
		ReportingRepo:  reportingRepo,
	}
}
