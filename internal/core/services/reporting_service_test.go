package services_test

import (
	"context"
	"testing"

	"github.com/accubooks/ledger_backend/internal/core/domain"
	portsrepo "github.com/accubooks/ledger_backend/internal/core/ports/repositories"
	"github.com/accubooks/ledger_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetTrialBalanceData(ctx context.Context, companyID string, fiscalYear int, fiscalPeriod domain.FiscalPeriod) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, companyID, fiscalYear, fiscalPeriod)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

func TestGetTrialBalance_TotalsBalance(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	mockRepo := new(MockReportingRepository)
	svc := services.NewReportingService(mockRepo)

	rows := []domain.TrialBalanceRow{
		{AccountCode: "100100", DebitTurnover: decimal.NewFromInt(150), CreditTurnover: decimal.NewFromInt(50)},
		{AccountCode: "400100", DebitTurnover: decimal.NewFromInt(50), CreditTurnover: decimal.NewFromInt(150)},
	}
	mockRepo.On("GetTrialBalanceData", ctx, companyID, 2025, domain.March).Return(rows, nil).Once()

	report, err := svc.GetTrialBalance(ctx, companyID, 2025, domain.March)

	require.NoError(t, err)
	require.Len(t, report.Rows, 2)
	require.True(t, report.TotalDebitTurnover.Equal(decimal.NewFromInt(200)))
	require.True(t, report.TotalCreditTurnover.Equal(decimal.NewFromInt(200)))
	require.True(t, report.TotalDebitTurnover.Equal(report.TotalCreditTurnover))
}

func TestGetTrialBalance_EmptyPeriod(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	mockRepo := new(MockReportingRepository)
	svc := services.NewReportingService(mockRepo)

	mockRepo.On("GetTrialBalanceData", ctx, companyID, 2025, domain.January).Return([]domain.TrialBalanceRow{}, nil).Once()

	report, err := svc.GetTrialBalance(ctx, companyID, 2025, domain.January)

	require.NoError(t, err)
	require.Empty(t, report.Rows)
	require.True(t, report.TotalDebitTurnover.IsZero())
	require.True(t, report.TotalCreditTurnover.IsZero())
}
