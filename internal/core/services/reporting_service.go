package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/accubooks/ledger_backend/internal/core/domain"
	portsrepo "github.com/accubooks/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/accubooks/ledger_backend/internal/core/ports/services"
	"github.com/accubooks/ledger_backend/internal/middleware"
)

// reportingService builds read-only reports over the balance ledger.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetTrialBalance builds the per-period trial balance for a company.
func (s *reportingService) GetTrialBalance(ctx context.Context, companyID string, fiscalYear int, fiscalPeriod domain.FiscalPeriod) (*domain.TrialBalanceReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, companyID, fiscalYear, fiscalPeriod)
	if err != nil {
		logger.Error("Failed to fetch trial balance data", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to fetch trial balance data: %w", err)
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, row := range rows {
		totalDebit = totalDebit.Add(row.DebitTurnover)
		totalCredit = totalCredit.Add(row.CreditTurnover)
	}

	return &domain.TrialBalanceReport{
		CompanyID:           companyID,
		FiscalYear:          fiscalYear,
		FiscalPeriod:        fiscalPeriod,
		Rows:                rows,
		TotalDebitTurnover:  totalDebit,
		TotalCreditTurnover: totalCredit,
	}, nil
}
