package service

import (
	"context"
	"errors"
	"fmt"
	"go-bank-account/common"
	"go-bank-account/logger"
	"go-bank-account/model"
	"go-bank-account/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidOperation = errors.New("invalid operation")
	ErrStepRejected     = errors.New("operation rejected: insufficient funds")
)

// TransactionService applies deposit, withdraw and transfer operations to
// named accounts.
type TransactionService struct {
	repo     repository.IAccountRepository
	accounts *AccountService
}

func NewTransactionService(repo repository.IAccountRepository, accounts *AccountService) *TransactionService {
	return &TransactionService{
		repo:     repo,
		accounts: accounts,
	}
}

// StepResult records the outcome of one completed step.
type StepResult struct {
	Index     int             `json:"index"`
	Operation model.Operation `json:"operation"`
	Accepted  bool            `json:"accepted"`
}

// Report summarizes a script run. Balances are taken when the run ends,
// including runs that stop early.
type Report struct {
	RunID    string             `json:"run_id"`
	Steps    []StepResult       `json:"steps"`
	Balances map[string]float64 `json:"balances"`
}

// Apply runs a single operation. The bool is false when the account rejects
// the operation for insufficient funds; that case returns a nil error.
// A negative amount surfaces as model.ErrInvalidArgument.
func (s *TransactionService) Apply(ctx context.Context, op model.Operation) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := common.Validate(op); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidOperation, err)
	}

	account, err := s.repo.GetAccountByName(op.Account)
	if err != nil {
		return false, fmt.Errorf("account %q: %w", op.Account, err)
	}

	switch op.Type {
	case model.OperationDeposit:
		if err := account.Deposit(op.Amount); err != nil {
			return false, err
		}
		return true, nil
	case model.OperationWithdraw:
		return account.Withdraw(op.Amount)
	case model.OperationTransfer:
		dest, err := s.repo.GetAccountByName(op.ToAccount)
		if err != nil {
			return false, fmt.Errorf("destination account %q: %w", op.ToAccount, err)
		}
		return account.Transfer(dest, op.Amount)
	}

	return false, fmt.Errorf("%w: unknown type %q", ErrInvalidOperation, op.Type)
}

// RunScript applies ops in order. Any error stops the run and is returned as a
// *common.AppError naming the 1-based step. A rejected step is recorded and the
// run continues, unless stopOnRejection is set.
func (s *TransactionService) RunScript(ctx context.Context, ops []model.Operation, stopOnRejection bool) (*Report, error) {
	report := &Report{
		RunID: uuid.NewString(),
		Steps: make([]StepResult, 0, len(ops)),
	}
	runLog := logger.Log.WithField("run_id", report.RunID)
	runLog.WithField("steps", len(ops)).Info("Starting script run")

	for i, op := range ops {
		step := i + 1
		log := runLog.WithFields(logrus.Fields{
			"step":      step,
			"operation": op.Type,
			"account":   op.Account,
			"amount":    common.FormatAmount(op.Amount),
		})
		if op.ToAccount != "" {
			log = log.WithField("to_account", op.ToAccount)
		}

		accepted, err := s.Apply(ctx, op)
		if err != nil {
			appErr := common.NewAppError(step, fmt.Sprintf("%s failed", op.Type), err)
			appErr.Log(log)
			report.Balances = s.accounts.Balances()
			return report, appErr
		}

		report.Steps = append(report.Steps, StepResult{Index: step, Operation: op, Accepted: accepted})

		if !accepted {
			log.Warn("Operation rejected: insufficient funds")
			if stopOnRejection {
				report.Balances = s.accounts.Balances()
				return report, common.NewAppError(step, "script stopped", ErrStepRejected)
			}
			continue
		}
		log.Debug("Operation applied")
	}

	report.Balances = s.accounts.Balances()
	runLog.Info("Script run completed")
	return report, nil
}
