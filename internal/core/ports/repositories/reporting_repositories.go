package repositories

import (
	"context"

	"github.com/accubooks/ledger_backend/internal/core/domain"
)

// ReportingRepository defines read-only operations over the balance
// ledger for report generation.
type ReportingRepository interface {
	// GetTrialBalanceData retrieves per-account balance rows for a company
	// and fiscal period, ordered by account code.
	GetTrialBalanceData(ctx context.Context, companyID string, fiscalYear int, fiscalPeriod domain.FiscalPeriod) ([]domain.TrialBalanceRow, error)
}
