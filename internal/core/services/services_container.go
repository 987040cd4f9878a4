package services

import (
	portsrepo "github.com/accubooks/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/accubooks/ledger_backend/internal/core/ports/services"
	"github.com/accubooks/ledger_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo, cfg.AccountCodeLength)
	container.PeriodLock = NewPeriodLockService(repos.PeriodLockRepo)
	container.Ledger = NewLedgerService(repos.EntryRepo, repos.BalanceRepo, container.Account, container.PeriodLock)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}

// Compile-time interface implementation checks.
var (
	_ portssvc.AccountSvcFacade    = (*accountService)(nil)
	_ portssvc.LedgerSvcFacade     = (*ledgerService)(nil)
	_ portssvc.PeriodLockSvcFacade = (*periodLockService)(nil)
	_ portssvc.ReportingSvcFacade  = (*reportingService)(nil)
)
