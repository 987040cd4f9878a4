package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/accubooks/ledger_backend/internal/apperrors"
	"github.com/accubooks/ledger_backend/internal/core/domain"
	portssvc "github.com/accubooks/ledger_backend/internal/core/ports/services"
	"github.com/accubooks/ledger_backend/internal/dto"
	"github.com/accubooks/ledger_backend/internal/handlers"
	"github.com/accubooks/ledger_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateJournalEntry(ctx context.Context, companyID string, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockLedgerService) PostJournalEntry(ctx context.Context, companyID string, entryID string, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockLedgerService) ApproveJournalEntry(ctx context.Context, companyID string, entryID string, approverID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, entryID, approverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockLedgerService) ReverseJournalEntry(ctx context.Context, companyID string, entryID string, userID string, reversalDate time.Time) (*domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, entryID, userID, reversalDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockLedgerService) DeleteJournalEntry(ctx context.Context, companyID string, entryID string) error {
	args := m.Called(ctx, companyID, entryID)
	return args.Error(0)
}
func (m *MockLedgerService) GetJournalEntry(ctx context.Context, companyID string, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockLedgerService) ListJournalEntries(ctx context.Context, companyID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}
func (m *MockLedgerService) GetAccountBalance(ctx context.Context, companyID string, accountID string, fiscalYear int, fiscalPeriod domain.FiscalPeriod) (*domain.AccountBalance, error) {
	args := m.Called(ctx, companyID, accountID, fiscalYear, fiscalPeriod)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountBalance), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type EntryHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
	companyID         string
	userID            string
}

func (suite *EntryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.ActingUser())

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("fiscalperiod", func(fl validator.FieldLevel) bool {
			return domain.FiscalPeriod(fl.Field().String()).Valid()
		})
	}

	suite.mockLedgerService = new(MockLedgerService)
	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()

	company := suite.router.Group("/api/v1/companies/:company_id")
	handlers.RegisterEntryRoutes(company, suite.mockLedgerService)
}

func (suite *EntryHandlerTestSuite) serve(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", suite.userID)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_Success() {
	cashID := uuid.NewString()
	revenueID := uuid.NewString()
	entryDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	req := dto.CreateJournalEntryRequest{
		EntryDate:    entryDate,
		PostingDate:  entryDate,
		Description:  "Cash sale",
		FiscalYear:   2025,
		FiscalPeriod: domain.March,
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: cashID, Debit: decimal.NewFromInt(100)},
			{AccountID: revenueID, Credit: decimal.NewFromInt(100)},
		},
	}
	created := &domain.JournalEntry{
		EntryID:      uuid.NewString(),
		CompanyID:    suite.companyID,
		EntryNumber:  "JE-2025-0001",
		Description:  "Cash sale",
		Status:       domain.Draft,
		FiscalYear:   2025,
		FiscalPeriod: domain.March,
	}

	suite.mockLedgerService.On("CreateJournalEntry",
		mock.Anything,
		suite.companyID,
		mock.MatchedBy(func(r dto.CreateJournalEntryRequest) bool {
			return r.Description == "Cash sale" && len(r.Lines) == 2
		}),
		suite.userID,
	).Return(created, nil).Once()

	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/companies/%s/journal-entries", suite.companyID), req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("JE-2025-0001", resp.EntryNumber)
	suite.Equal(domain.Draft, resp.Status)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_UnbalancedIsBadRequest() {
	entryDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	req := dto.CreateJournalEntryRequest{
		EntryDate:    entryDate,
		PostingDate:  entryDate,
		Description:  "Lopsided",
		FiscalYear:   2025,
		FiscalPeriod: domain.March,
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: uuid.NewString(), Debit: decimal.NewFromInt(100)},
			{AccountID: uuid.NewString(), Credit: decimal.NewFromInt(90)},
		},
	}

	suite.mockLedgerService.On("CreateJournalEntry", mock.Anything, suite.companyID, mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("%w: debit total is 100, credit total is 90", apperrors.ErrUnbalanced)).Once()

	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/companies/%s/journal-entries", suite.companyID), req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_MissingUserIsUnauthorized() {
	entryDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	req := dto.CreateJournalEntryRequest{
		EntryDate:    entryDate,
		PostingDate:  entryDate,
		Description:  "No acting user",
		FiscalYear:   2025,
		FiscalPeriod: domain.March,
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: uuid.NewString(), Debit: decimal.NewFromInt(100)},
			{AccountID: uuid.NewString(), Credit: decimal.NewFromInt(100)},
		},
	}
	payload, err := json.Marshal(req)
	suite.Require().NoError(err)

	httpReq, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/companies/%s/journal-entries", suite.companyID), bytes.NewReader(payload))
	httpReq.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "CreateJournalEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryHandlerTestSuite) TestPostEntry_Success() {
	entryID := uuid.NewString()
	posted := &domain.JournalEntry{
		EntryID:     entryID,
		CompanyID:   suite.companyID,
		EntryNumber: "JE-2025-0007",
		Status:      domain.Posted,
	}

	suite.mockLedgerService.On("PostJournalEntry", mock.Anything, suite.companyID, entryID, suite.userID).
		Return(posted, nil).Once()

	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/companies/%s/journal-entries/%s/post", suite.companyID, entryID), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.Posted, resp.Status)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestPostEntry_PeriodLockedIsConflict() {
	entryID := uuid.NewString()

	suite.mockLedgerService.On("PostJournalEntry", mock.Anything, suite.companyID, entryID, suite.userID).
		Return(nil, fmt.Errorf("%w: MARCH 2025", apperrors.ErrPeriodLocked)).Once()

	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/companies/%s/journal-entries/%s/post", suite.companyID, entryID), nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *EntryHandlerTestSuite) TestGetEntry_NotFound() {
	entryID := uuid.NewString()

	suite.mockLedgerService.On("GetJournalEntry", mock.Anything, suite.companyID, entryID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, fmt.Sprintf("/api/v1/companies/%s/journal-entries/%s", suite.companyID, entryID), nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *EntryHandlerTestSuite) TestReverseEntry_AlreadyReversedIsConflict() {
	entryID := uuid.NewString()
	req := dto.ReverseJournalEntryRequest{ReversalDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)}

	suite.mockLedgerService.On("ReverseJournalEntry", mock.Anything, suite.companyID, entryID, suite.userID, req.ReversalDate).
		Return(nil, fmt.Errorf("%w: entry JE-2025-0003", apperrors.ErrAlreadyReversed)).Once()

	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/companies/%s/journal-entries/%s/reverse", suite.companyID, entryID), req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *EntryHandlerTestSuite) TestDeleteEntry_Success() {
	entryID := uuid.NewString()

	suite.mockLedgerService.On("DeleteJournalEntry", mock.Anything, suite.companyID, entryID).
		Return(nil).Once()

	w := suite.serve(http.MethodDelete, fmt.Sprintf("/api/v1/companies/%s/journal-entries/%s", suite.companyID, entryID), nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func TestEntryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EntryHandlerTestSuite))
}
