package services

import (
	"context"

	"github.com/accubooks/ledger_backend/internal/core/domain"
)

// ReportingSvcFacade defines read-only report generation over the
// balance ledger.
type ReportingSvcFacade interface {
	// GetTrialBalance builds the per-period trial balance for a company.
	GetTrialBalance(ctx context.Context, companyID string, fiscalYear int, fiscalPeriod domain.FiscalPeriod) (*domain.TrialBalanceReport, error)
}
