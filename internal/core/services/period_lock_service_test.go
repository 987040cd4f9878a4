package services_test

import (
	"context"
	"testing"

	"github.com/accubooks/ledger_backend/internal/apperrors"
	"github.com/accubooks/ledger_backend/internal/core/domain"
	portsrepo "github.com/accubooks/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/accubooks/ledger_backend/internal/core/ports/services"
	"github.com/accubooks/ledger_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PeriodLockRepository ---
type MockPeriodLockRepository struct {
	mock.Mock
}

var _ portsrepo.PeriodLockRepositoryFacade = (*MockPeriodLockRepository)(nil)

func (m *MockPeriodLockRepository) FindLock(ctx context.Context, companyID string, fiscalYear int, fiscalPeriod domain.FiscalPeriod) (*domain.FiscalPeriodLock, error) {
	args := m.Called(ctx, companyID, fiscalYear, fiscalPeriod)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriodLock), args.Error(1)
}

func (m *MockPeriodLockRepository) UpsertLock(ctx context.Context, lock domain.FiscalPeriodLock) error {
	args := m.Called(ctx, lock)
	return args.Error(0)
}

// --- Test Suite Setup ---
type PeriodLockServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockPeriodLockRepository
	service   portssvc.PeriodLockSvcFacade
	companyID string
	userID    string
}

func (suite *PeriodLockServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPeriodLockRepository)
	suite.service = services.NewPeriodLockService(suite.mockRepo)
	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *PeriodLockServiceTestSuite) TestIsPeriodLocked_NoRowMeansOpen() {
	ctx := context.Background()

	suite.mockRepo.On("FindLock", ctx, suite.companyID, 2025, domain.March).Return(nil, apperrors.ErrNotFound).Once()

	locked, err := suite.service.IsPeriodLocked(ctx, suite.companyID, 2025, domain.March)

	suite.Require().NoError(err)
	suite.False(locked)
}

func (suite *PeriodLockServiceTestSuite) TestIsPeriodLocked_LockedRow() {
	ctx := context.Background()
	lock := domain.FiscalPeriodLock{
		LockID:       uuid.NewString(),
		CompanyID:    suite.companyID,
		FiscalYear:   2025,
		FiscalPeriod: domain.March,
		IsLocked:     true,
	}

	suite.mockRepo.On("FindLock", ctx, suite.companyID, 2025, domain.March).Return(&lock, nil).Once()

	locked, err := suite.service.IsPeriodLocked(ctx, suite.companyID, 2025, domain.March)

	suite.Require().NoError(err)
	suite.True(locked)
}

func (suite *PeriodLockServiceTestSuite) TestIsPeriodLocked_UnlockedRow() {
	ctx := context.Background()
	lock := domain.FiscalPeriodLock{
		LockID:       uuid.NewString(),
		CompanyID:    suite.companyID,
		FiscalYear:   2025,
		FiscalPeriod: domain.March,
		IsLocked:     false,
	}

	suite.mockRepo.On("FindLock", ctx, suite.companyID, 2025, domain.March).Return(&lock, nil).Once()

	locked, err := suite.service.IsPeriodLocked(ctx, suite.companyID, 2025, domain.March)

	suite.Require().NoError(err)
	suite.False(locked)
}

func (suite *PeriodLockServiceTestSuite) TestLockPeriod_Success() {
	ctx := context.Background()

	suite.mockRepo.On("UpsertLock", ctx, mock.MatchedBy(func(lock domain.FiscalPeriodLock) bool {
		return lock.CompanyID == suite.companyID &&
			lock.FiscalYear == 2025 &&
			lock.FiscalPeriod == domain.March &&
			lock.IsLocked &&
			lock.LockedBy != nil && *lock.LockedBy == suite.userID
	})).Return(nil).Once()

	err := suite.service.LockPeriod(ctx, suite.companyID, 2025, domain.March, suite.userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PeriodLockServiceTestSuite) TestUnlockPeriod_Success() {
	ctx := context.Background()

	suite.mockRepo.On("UpsertLock", ctx, mock.MatchedBy(func(lock domain.FiscalPeriodLock) bool {
		return !lock.IsLocked && lock.FiscalPeriod == domain.March
	})).Return(nil).Once()

	err := suite.service.UnlockPeriod(ctx, suite.companyID, 2025, domain.March, suite.userID)

	suite.Require().NoError(err)
}

func (suite *PeriodLockServiceTestSuite) TestLockPeriod_InvalidPeriod() {
	ctx := context.Background()

	err := suite.service.LockPeriod(ctx, suite.companyID, 2025, domain.FiscalPeriod("SMARCH"), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertLock", mock.Anything, mock.Anything)
}

func TestPeriodLockServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodLockServiceTestSuite))
}
