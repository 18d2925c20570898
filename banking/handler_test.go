//go:build unit

package banking_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/hellofresh/goledger"
	"github.com/hellofresh/goledger/banking"
	"github.com/hellofresh/goledger/driver/inmemory"
	"github.com/hellofresh/goledger/internal/test"
	"github.com/hellofresh/goledger/mocks"
)

type handlerTestSuite struct {
	test.Suite

	ctx     context.Context
	ctrl    *gomock.Controller
	metrics *mocks.Metrics
	bank    *banking.Bank
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerTestSuite))
}

func (s *handlerTestSuite) SetupTest() {
	s.Suite.SetupTest()

	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.metrics = mocks.NewMetrics(s.ctrl)
	s.metrics.EXPECT().StreamReplayed(gomock.Any(), gomock.Any()).AnyTimes()

	var err error
	s.bank, err = banking.NewBank("ACME", usd, inmemory.NewEventStore(nil), banking.NewEventRegistry(), s.GetLogger(), s.metrics)
	s.Require().NoError(err)
}

func (s *handlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
	s.Suite.TearDownTest()
}

func (s *handlerTestSuite) expectHandled(command string, err error) *gomock.Call {
	return s.metrics.EXPECT().CommandHandled(command, gomock.Any(), err).Times(1)
}

func (s *handlerTestSuite) TestHandle() {
	s.expectHandled("open_account", nil)
	s.Require().NoError(s.bank.Handle(s.ctx, banking.OpenAccountCommand{AccountNumber: "A", Holder: "Alice"}))
	s.expectHandled("open_account", nil)
	s.Require().NoError(s.bank.Handle(s.ctx, banking.OpenAccountCommand{AccountNumber: "B"}))

	s.expectHandled("set_overdraft_limit", nil)
	s.Require().NoError(s.bank.Handle(s.ctx, banking.SetOverdraftLimitCommand{AccountNumber: "A", Limit: 1000}))

	s.expectHandled("transfer_money", nil)
	s.Require().NoError(s.bank.Handle(s.ctx, banking.TransferMoneyCommand{From: "A", To: "B", Amount: 300}))

	s.expectHandled("block_account", nil)
	s.Require().NoError(s.bank.Handle(s.ctx, banking.BlockAccountCommand{AccountNumber: "B", Reason: "audit"}))

	s.expectHandled("unblock_account", nil)
	s.Require().NoError(s.bank.Handle(s.ctx, banking.UnblockAccountCommand{AccountNumber: "B"}))

	s.expectHandled("close_account", nil)
	s.Require().NoError(s.bank.Handle(s.ctx, banking.CloseAccountCommand{AccountNumber: "B"}))

	a, err := s.bank.FindAccount(s.ctx, "A")
	s.Require().NoError(err)
	balance, err := a.Balance(s.ctx)
	s.Require().NoError(err)
	s.Equal(banking.NewMonetaryAmount(-300, usd), balance)

	s.AssertNoLogsWithLevelOrHigher(logrus.InfoLevel)
	s.Contains(s.LogMessages(), "handled command")
}

func (s *handlerTestSuite) TestHandle_Rejected() {
	s.expectHandled("close_account", banking.ErrAccountNotFound)

	err := s.bank.Handle(s.ctx, banking.CloseAccountCommand{AccountNumber: "A"})

	s.Equal(banking.ErrAccountNotFound, err)
	s.Equal(http.StatusNotFound, banking.StatusCode(err))
	s.AssertNoLogsWithLevelOrHigher(logrus.WarnLevel)
	s.Contains(s.LogMessages(), "command was rejected")
}

func (s *handlerTestSuite) TestHandle_TransferInForeignCurrency() {
	s.expectHandled("open_account", nil).Times(2)
	s.Require().NoError(s.bank.Handle(s.ctx, banking.OpenAccountCommand{AccountNumber: "A"}))
	s.Require().NoError(s.bank.Handle(s.ctx, banking.OpenAccountCommand{AccountNumber: "B"}))

	s.expectHandled("transfer_money", banking.ErrCurrencyMismatch)

	err := s.bank.Handle(s.ctx, banking.TransferMoneyCommand{From: "A", To: "B", Amount: 1, Currency: "EUR"})

	s.Equal(banking.ErrCurrencyMismatch, err)
	s.Equal(http.StatusBadRequest, banking.StatusCode(err))
}

type unknownCommand struct{}

func (unknownCommand) CommandName() string { return "unknown" }

func (s *handlerTestSuite) TestHandle_UnknownCommand() {
	s.expectHandled("unknown", goledger.InvalidArgumentError("command"))

	err := s.bank.Handle(s.ctx, unknownCommand{})

	s.Equal(goledger.InvalidArgumentError("command"), err)
	s.Contains(s.LogMessages(), "failed to handle command")
}

func (s *handlerTestSuite) TestHandle_NilCommand() {
	err := s.bank.Handle(s.ctx, nil)

	s.Equal(goledger.InvalidArgumentError("command"), err)
}

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		err      error
		expected int
	}{
		{nil, http.StatusOK},
		{&banking.ValidationError{Field: "amount", Reason: "is required"}, http.StatusBadRequest},
		{banking.ErrCannotSendMoneyToSelf, http.StatusBadRequest},
		{banking.ErrCurrencyMismatch, http.StatusBadRequest},
		{banking.ErrAmountOutOfRange, http.StatusBadRequest},
		{banking.ErrAccountNotFound, http.StatusNotFound},
		{banking.ErrAccountIsBlocked, http.StatusForbidden},
		{banking.ErrOverdraftLimitExceeded, http.StatusForbidden},
		{banking.ErrAccountIsBankOwn, http.StatusForbidden},
		{banking.ErrAccountAlreadyExists, http.StatusConflict},
		{banking.ErrAccountAlreadyBlocked, http.StatusConflict},
		{banking.ErrAccountNotBlocked, http.StatusConflict},
		{errors.New("connection refused"), http.StatusInternalServerError},
		{banking.UnknownEventTypeError("x"), http.StatusInternalServerError},
		{&banking.InconsistentEventError{Reason: banking.ErrCurrencyMismatch}, http.StatusInternalServerError},
	}

	for _, testCase := range testCases {
		name := "nil"
		if testCase.err != nil {
			name = testCase.err.Error()
		}

		t.Run(name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, banking.StatusCode(testCase.err))
		})
	}
}

func TestIsDomainError(t *testing.T) {
	assert.True(t, banking.IsDomainError(banking.ErrOverdraftLimitExceeded))
	assert.True(t, banking.IsDomainError(&banking.ValidationError{Field: "limit"}))
	assert.True(t, banking.IsDomainError(banking.ErrAmountOutOfRange))
	assert.False(t, banking.IsDomainError(&banking.InconsistentEventError{Reason: banking.ErrCurrencyMismatch}))
	assert.False(t, banking.IsDomainError(nil))
	assert.False(t, banking.IsDomainError(errors.New("disk full")))
	assert.False(t, banking.IsDomainError(banking.UnknownEventTypeError("x")))
}

func TestFinancialDistrict(t *testing.T) {
	ctx := context.Background()
	registry := banking.NewEventRegistry()

	newBank := func(id string, store goledger.EventStore) *banking.Bank {
		bank, err := banking.NewBank(id, usd, store, registry, nil, nil)
		require.NoError(t, err)

		return bank
	}

	t.Run("find banks", func(t *testing.T) {
		district := banking.NewFinancialDistrict(
			newBank("ZETA", inmemory.NewEventStore(nil)),
			newBank("ACME", inmemory.NewEventStore(nil)),
		)

		bank, err := district.FindBank("ZETA")
		require.NoError(t, err)
		assert.Equal(t, "ZETA", bank.ID())

		_, err = district.FindBank("NOPE")
		assert.Equal(t, banking.ErrBankNotFound, err)

		banks := district.FindAllBanks()
		if assert.Len(t, banks, 2) {
			assert.Equal(t, "ACME", banks[0].ID())
			assert.Equal(t, "ZETA", banks[1].ID())
		}
	})

	t.Run("setup all banks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		acme := mocks.NewEventStore(ctrl)
		zeta := mocks.NewEventStore(ctrl)
		gomock.InOrder(
			acme.EXPECT().Setup(ctx).Return(nil),
			zeta.EXPECT().Setup(ctx).Return(nil),
		)

		district := banking.NewFinancialDistrict(newBank("ZETA", zeta), newBank("ACME", acme))

		assert.NoError(t, district.SetupAll(ctx))
	})

	t.Run("setup stops at the first failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		expectedErr := errors.New("permission denied")
		acme := mocks.NewEventStore(ctrl)
		acme.EXPECT().Setup(ctx).Return(expectedErr)

		district := banking.NewFinancialDistrict(newBank("ZETA", mocks.NewEventStore(ctrl)), newBank("ACME", acme))

		assert.Equal(t, expectedErr, district.SetupAll(ctx))
	})
}
