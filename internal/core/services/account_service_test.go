package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/accubooks/ledger_backend/internal/apperrors"
	"github.com/accubooks/ledger_backend/internal/core/domain"
	portsrepo "github.com/accubooks/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/accubooks/ledger_backend/internal/core/ports/services"
	"github.com/accubooks/ledger_backend/internal/core/services"
	"github.com/accubooks/ledger_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, companyID string, code string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

// --- Test Suite Setup ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockAccountRepository
	service   portssvc.AccountSvcFacade
	companyID string
	userID    string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo, 6)
	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "100100",
		Name:        "Cash",
		AccountType: domain.Asset,
	}

	suite.mockRepo.On("FindAccountByCode", ctx, suite.companyID, "100100").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.Equal("100100", account.Code)
	suite.Equal(domain.Asset, account.AccountType)
	suite.True(account.IsActive)
	suite.Equal(suite.userID, account.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_BadCode() {
	ctx := context.Background()

	for _, code := range []string{"123", "12345678", "12345a", ""} {
		req := dto.CreateAccountRequest{Code: code, Name: "Bad", AccountType: domain.Asset}
		_, err := suite.service.CreateAccount(ctx, suite.companyID, req, suite.userID)
		suite.Require().Error(err, "code %q should be rejected", code)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: "100100", Name: "Cash", AccountType: domain.Asset}
	existing := domain.Account{AccountID: uuid.NewString(), CompanyID: suite.companyID, Code: "100100"}

	suite.mockRepo.On("FindAccountByCode", ctx, suite.companyID, "100100").Return(&existing, nil).Once()

	_, err := suite.service.CreateAccount(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ParentInOtherCompany() {
	ctx := context.Background()
	parentID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Code:            "100110",
		Name:            "Petty cash",
		AccountType:     domain.Asset,
		ParentAccountID: &parentID,
	}
	foreignParent := domain.Account{AccountID: parentID, CompanyID: uuid.NewString(), Code: "100100"}

	suite.mockRepo.On("FindAccountByCode", ctx, suite.companyID, "100110").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindAccountByID", ctx, parentID).Return(&foreignParent, nil).Once()

	_, err := suite.service.CreateAccount(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAccountNotFound)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_OtherCompanyHidden() {
	ctx := context.Background()
	account := domain.Account{AccountID: uuid.NewString(), CompanyID: uuid.NewString()}

	suite.mockRepo.On("FindAccountByID", ctx, account.AccountID).Return(&account, nil).Once()

	_, err := suite.service.GetAccountByID(ctx, suite.companyID, account.AccountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestGetAccountsByIDs_FiltersForeignAccounts() {
	ctx := context.Background()
	mine := domain.Account{AccountID: uuid.NewString(), CompanyID: suite.companyID}
	foreign := domain.Account{AccountID: uuid.NewString(), CompanyID: uuid.NewString()}
	ids := []string{mine.AccountID, foreign.AccountID}

	suite.mockRepo.On("FindAccountsByIDs", ctx, ids).Return(map[string]domain.Account{
		mine.AccountID:    mine,
		foreign.AccountID: foreign,
	}, nil).Once()

	accounts, err := suite.service.GetAccountsByIDs(ctx, suite.companyID, ids)

	suite.Require().NoError(err)
	suite.Len(accounts, 1)
	suite.Contains(accounts, mine.AccountID)
	suite.NotContains(accounts, foreign.AccountID)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PartialUpdate() {
	ctx := context.Background()
	account := domain.Account{
		AccountID: uuid.NewString(),
		CompanyID: suite.companyID,
		Name:      "Old name",
	}
	newName := "New name"

	suite.mockRepo.On("FindAccountByID", ctx, account.AccountID).Return(&account, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == newName && a.LastUpdatedBy == suite.userID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, suite.companyID, account.AccountID, dto.UpdateAccountRequest{Name: &newName}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NoFieldsIsNoop() {
	ctx := context.Background()
	account := domain.Account{AccountID: uuid.NewString(), CompanyID: suite.companyID, Name: "Unchanged"}

	suite.mockRepo.On("FindAccountByID", ctx, account.AccountID).Return(&account, nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, suite.companyID, account.AccountID, dto.UpdateAccountRequest{}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Unchanged", updated.Name)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	ctx := context.Background()
	account := domain.Account{AccountID: uuid.NewString(), CompanyID: suite.companyID}

	suite.mockRepo.On("FindAccountByID", ctx, account.AccountID).Return(&account, nil).Once()
	suite.mockRepo.On("DeactivateAccount", ctx, account.AccountID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, suite.companyID, account.AccountID, suite.userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_DefaultLimit() {
	ctx := context.Background()

	suite.mockRepo.On("ListAccounts", ctx, suite.companyID, 50, 0).Return([]domain.Account{}, nil).Once()

	_, err := suite.service.ListAccounts(ctx, suite.companyID, 0, 0)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
