package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pesobank/pesobank/internal/apperrors"
	"github.com/pesobank/pesobank/internal/core/domain"
	portssvc "github.com/pesobank/pesobank/internal/core/ports/services"
	"github.com/pesobank/pesobank/internal/core/services"
	"github.com/pesobank/pesobank/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountBalance(ctx context.Context, name string, balance decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, name, balance, now)
	return args.Error(0)
}

// --- Mock ExchangeRateService ---
type MockExchangeRateReaderSvc struct {
	mock.Mock
}

func (m *MockExchangeRateReaderSvc) GetRate(ctx context.Context, currencyCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, currencyCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockExchangeRateReaderSvc) Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, amount, fromCode, toCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Test Suite ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockRateSvc     *MockExchangeRateReaderSvc
	service         portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockRateSvc = new(MockExchangeRateReaderSvc)
	suite.service = services.NewAccountService(suite.mockAccountRepo, services.NewCurrencyService(), suite.mockRateSvc)
}

func (suite *AccountServiceTestSuite) account(name string, balance decimal.Decimal) *domain.Account {
	return &domain.Account{
		AccountID:    "test-account-id",
		Name:         name,
		CurrencyCode: domain.HomeCurrencyCode,
		Balance:      balance,
	}
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestRegisterAccount_Success() {
	ctx := context.Background()

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(account domain.Account) bool {
		return account.Name == "Alice" &&
			account.CurrencyCode == domain.HomeCurrencyCode &&
			account.Balance.IsZero()
	})).Return(nil).Once()

	account, err := suite.service.RegisterAccount(ctx, dto.RegisterAccountRequest{Name: "  Alice  "})

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal("Alice", account.Name, "name is trimmed before registration")
	suite.NotEmpty(account.AccountID)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestRegisterAccount_EmptyName() {
	_, err := suite.service.RegisterAccount(context.Background(), dto.RegisterAccountRequest{Name: "   "})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestRegisterAccount_Duplicate() {
	ctx := context.Background()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(fmt.Errorf("%w: account with name %q already exists", apperrors.ErrDuplicate, "Alice")).Once()

	_, err := suite.service.RegisterAccount(ctx, dto.RegisterAccountRequest{Name: "Alice"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AccountServiceTestSuite) TestDeposit_HomeCurrency() {
	ctx := context.Background()
	amount := decimal.NewFromInt(100)

	suite.mockAccountRepo.On("FindAccountByName", ctx, "Bob").Return(suite.account("Bob", decimal.Zero), nil).Once()
	suite.mockRateSvc.On("Convert", ctx, amount, "PHP", "PHP").Return(amount, nil).Once()
	suite.mockAccountRepo.On("UpdateAccountBalance", ctx, "Bob", mock.MatchedBy(func(balance decimal.Decimal) bool {
		return balance.Equal(decimal.NewFromInt(100))
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()

	account, err := suite.service.Deposit(ctx, dto.DepositRequest{AccountName: "Bob", CurrencyCode: "PHP", Amount: amount})

	suite.Require().NoError(err)
	suite.True(account.Balance.Equal(decimal.NewFromInt(100)))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeposit_ForeignCurrencyConverts() {
	ctx := context.Background()
	amount := decimal.NewFromInt(10)
	converted := decimal.NewFromInt(550)

	suite.mockAccountRepo.On("FindAccountByName", ctx, "Dan").Return(suite.account("Dan", decimal.Zero), nil).Once()
	suite.mockRateSvc.On("Convert", ctx, amount, "USD", "PHP").Return(converted, nil).Once()
	suite.mockAccountRepo.On("UpdateAccountBalance", ctx, "Dan", mock.MatchedBy(func(balance decimal.Decimal) bool {
		return balance.Equal(converted)
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()

	account, err := suite.service.Deposit(ctx, dto.DepositRequest{AccountName: "Dan", CurrencyCode: "USD", Amount: amount})

	suite.Require().NoError(err)
	suite.True(account.Balance.Equal(converted))
}

func (suite *AccountServiceTestSuite) TestDeposit_UnknownCurrency() {
	_, err := suite.service.Deposit(context.Background(), dto.DepositRequest{AccountName: "Bob", CurrencyCode: "XYZ", Amount: decimal.NewFromInt(1)})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByName", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeposit_NonPositiveAmount() {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-200)} {
		_, err := suite.service.Deposit(context.Background(), dto.DepositRequest{AccountName: "Bob", CurrencyCode: "PHP", Amount: amount})

		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	}
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccountBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestWithdraw_Success() {
	ctx := context.Background()
	amount := decimal.NewFromInt(40)

	suite.mockAccountRepo.On("FindAccountByName", ctx, "Eve").Return(suite.account("Eve", decimal.NewFromInt(100)), nil).Once()
	suite.mockRateSvc.On("Convert", ctx, amount, "PHP", "PHP").Return(amount, nil).Once()
	suite.mockAccountRepo.On("UpdateAccountBalance", ctx, "Eve", mock.MatchedBy(func(balance decimal.Decimal) bool {
		return balance.Equal(decimal.NewFromInt(60))
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()

	account, err := suite.service.Withdraw(ctx, dto.WithdrawRequest{AccountName: "Eve", CurrencyCode: "PHP", Amount: amount})

	suite.Require().NoError(err)
	suite.True(account.Balance.Equal(decimal.NewFromInt(60)))
}

func (suite *AccountServiceTestSuite) TestWithdraw_InsufficientFundsIsNoOp() {
	ctx := context.Background()
	amount := decimal.NewFromInt(200)

	suite.mockAccountRepo.On("FindAccountByName", ctx, "Eve").Return(suite.account("Eve", decimal.NewFromInt(100)), nil).Once()
	suite.mockRateSvc.On("Convert", ctx, amount, "PHP", "PHP").Return(amount, nil).Once()

	_, err := suite.service.Withdraw(ctx, dto.WithdrawRequest{AccountName: "Eve", CurrencyCode: "PHP", Amount: amount})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccountBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestWithdraw_ExactBalanceSucceeds() {
	ctx := context.Background()
	amount := decimal.NewFromInt(100)

	suite.mockAccountRepo.On("FindAccountByName", ctx, "Eve").Return(suite.account("Eve", decimal.NewFromInt(100)), nil).Once()
	suite.mockRateSvc.On("Convert", ctx, amount, "PHP", "PHP").Return(amount, nil).Once()
	suite.mockAccountRepo.On("UpdateAccountBalance", ctx, "Eve", mock.MatchedBy(func(balance decimal.Decimal) bool {
		return balance.IsZero()
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()

	account, err := suite.service.Withdraw(ctx, dto.WithdrawRequest{AccountName: "Eve", CurrencyCode: "PHP", Amount: amount})

	suite.Require().NoError(err)
	suite.True(account.Balance.IsZero())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
