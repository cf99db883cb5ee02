// service/transaction_service_test.go
package service

import (
	"context"
	"go-bank-account/common"
	"go-bank-account/model"
	"go-bank-account/repository"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServices(t *testing.T, names ...string) (*AccountService, *TransactionService) {
	t.Helper()
	repo := repository.NewAccountRepository()
	accountService := NewAccountService(repo)
	require.NoError(t, accountService.OpenAccounts(names))
	return accountService, NewTransactionService(repo, accountService)
}

func TestTransactionService_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("deposit", func(t *testing.T) {
		acc := model.NewAccount()
		mockRepo := new(MockAccountRepository)
		mockRepo.On("GetAccountByName", "alice").Return(acc, nil).Once()

		svc := NewTransactionService(mockRepo, NewAccountService(mockRepo))
		ok, err := svc.Apply(ctx, model.Operation{Type: model.OperationDeposit, Account: "alice", Amount: 1000})

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1000.0, acc.Balance())
		mockRepo.AssertExpectations(t)
	})

	t.Run("withdraw rejected", func(t *testing.T) {
		acc := model.NewAccount()
		require.NoError(t, acc.Deposit(500))
		mockRepo := new(MockAccountRepository)
		mockRepo.On("GetAccountByName", "alice").Return(acc, nil).Once()

		svc := NewTransactionService(mockRepo, NewAccountService(mockRepo))
		ok, err := svc.Apply(ctx, model.Operation{Type: model.OperationWithdraw, Account: "alice", Amount: 600})

		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 500.0, acc.Balance())
		mockRepo.AssertExpectations(t)
	})

	t.Run("transfer", func(t *testing.T) {
		from := model.NewAccount()
		require.NoError(t, from.Deposit(1000))
		to := model.NewAccount()
		mockRepo := new(MockAccountRepository)
		mockRepo.On("GetAccountByName", "alice").Return(from, nil).Once()
		mockRepo.On("GetAccountByName", "bob").Return(to, nil).Once()

		svc := NewTransactionService(mockRepo, NewAccountService(mockRepo))
		ok, err := svc.Apply(ctx, model.Operation{Type: model.OperationTransfer, Account: "alice", ToAccount: "bob", Amount: 400})

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 600.0, from.Balance())
		assert.Equal(t, 400.0, to.Balance())
		mockRepo.AssertExpectations(t)
	})

	t.Run("negative amount is an invalid argument", func(t *testing.T) {
		acc := model.NewAccount()
		mockRepo := new(MockAccountRepository)
		mockRepo.On("GetAccountByName", "alice").Return(acc, nil).Once()

		svc := NewTransactionService(mockRepo, NewAccountService(mockRepo))
		ok, err := svc.Apply(ctx, model.Operation{Type: model.OperationDeposit, Account: "alice", Amount: -10})

		assert.ErrorIs(t, err, model.ErrInvalidArgument)
		assert.False(t, ok)
		assert.Equal(t, 0.0, acc.Balance())
	})

	t.Run("unknown destination", func(t *testing.T) {
		from := model.NewAccount()
		require.NoError(t, from.Deposit(50))
		mockRepo := new(MockAccountRepository)
		mockRepo.On("GetAccountByName", "alice").Return(from, nil).Once()
		mockRepo.On("GetAccountByName", "ghost").Return(nil, repository.ErrAccountNotFound).Once()

		svc := NewTransactionService(mockRepo, NewAccountService(mockRepo))
		ok, err := svc.Apply(ctx, model.Operation{Type: model.OperationTransfer, Account: "alice", ToAccount: "ghost", Amount: 10})

		assert.ErrorIs(t, err, repository.ErrAccountNotFound)
		assert.False(t, ok)
		assert.Equal(t, 50.0, from.Balance())
	})

	t.Run("malformed operation never reaches the repository", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		svc := NewTransactionService(mockRepo, NewAccountService(mockRepo))

		_, err := svc.Apply(ctx, model.Operation{Type: "borrow", Account: "alice", Amount: 1})
		assert.ErrorIs(t, err, ErrInvalidOperation)

		_, err = svc.Apply(ctx, model.Operation{Type: model.OperationTransfer, Account: "alice", Amount: 1})
		assert.ErrorIs(t, err, ErrInvalidOperation)

		mockRepo.AssertNotCalled(t, "GetAccountByName", mock.Anything)
	})

	t.Run("cancelled context", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		svc := NewTransactionService(mockRepo, NewAccountService(mockRepo))
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := svc.Apply(cancelled, model.Operation{Type: model.OperationDeposit, Account: "alice", Amount: 1})

		assert.ErrorIs(t, err, context.Canceled)
		mockRepo.AssertNotCalled(t, "GetAccountByName", mock.Anything)
	})
}

func TestTransactionService_RunScript(t *testing.T) {
	ctx := context.Background()

	t.Run("deposits, withdrawals and transfers in sequence", func(t *testing.T) {
		_, svc := newTestServices(t, "checking", "savings")
		ops := []model.Operation{
			{Type: model.OperationDeposit, Account: "checking", Amount: 1000},
			{Type: model.OperationWithdraw, Account: "checking", Amount: 500},
			{Type: model.OperationWithdraw, Account: "checking", Amount: 600},
			{Type: model.OperationTransfer, Account: "checking", ToAccount: "savings", Amount: 400},
			{Type: model.OperationTransfer, Account: "checking", ToAccount: "savings", Amount: 500},
		}

		report, err := svc.RunScript(ctx, ops, false)

		require.NoError(t, err)
		_, parseErr := uuid.Parse(report.RunID)
		assert.NoError(t, parseErr)
		require.Len(t, report.Steps, 5)
		accepted := make([]bool, 0, len(report.Steps))
		for i, step := range report.Steps {
			assert.Equal(t, i+1, step.Index)
			assert.Equal(t, ops[i], step.Operation)
			accepted = append(accepted, step.Accepted)
		}
		assert.Equal(t, []bool{true, true, false, true, false}, accepted)
		assert.Equal(t, map[string]float64{"checking": 100, "savings": 400}, report.Balances)
	})

	t.Run("invalid argument stops the run", func(t *testing.T) {
		_, svc := newTestServices(t, "a")
		ops := []model.Operation{
			{Type: model.OperationDeposit, Account: "a", Amount: 100},
			{Type: model.OperationWithdraw, Account: "a", Amount: -10},
			{Type: model.OperationDeposit, Account: "a", Amount: 5},
		}

		report, err := svc.RunScript(ctx, ops, false)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidArgument)
		var appErr *common.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 2, appErr.Step)
		assert.Len(t, report.Steps, 1)
		assert.Equal(t, map[string]float64{"a": 100}, report.Balances)
	})

	t.Run("stop on rejection", func(t *testing.T) {
		_, svc := newTestServices(t, "a", "b")
		ops := []model.Operation{
			{Type: model.OperationDeposit, Account: "a", Amount: 100},
			{Type: model.OperationTransfer, Account: "a", ToAccount: "b", Amount: 500},
			{Type: model.OperationDeposit, Account: "b", Amount: 5},
		}

		report, err := svc.RunScript(ctx, ops, true)

		assert.ErrorIs(t, err, ErrStepRejected)
		var appErr *common.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 2, appErr.Step)
		require.Len(t, report.Steps, 2)
		assert.False(t, report.Steps[1].Accepted)
		assert.Equal(t, map[string]float64{"a": 100, "b": 0}, report.Balances)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, svc := newTestServices(t, "a")
		ops := []model.Operation{{Type: model.OperationDeposit, Account: "nobody", Amount: 1}}

		report, err := svc.RunScript(ctx, ops, false)

		assert.ErrorIs(t, err, repository.ErrAccountNotFound)
		assert.Empty(t, report.Steps)
	})

	t.Run("empty script", func(t *testing.T) {
		_, svc := newTestServices(t, "a")

		report, err := svc.RunScript(ctx, nil, false)

		assert.NoError(t, err)
		assert.Empty(t, report.Steps)
		assert.Equal(t, map[string]float64{"a": 0}, report.Balances)
	})
}
