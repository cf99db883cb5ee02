// file: service/account_service.go

package service

import (
	"fmt"
	"go-bank-account/common"
	"go-bank-account/logger"
	"go-bank-account/repository"
)

// AccountService opens accounts and reports their balances.
type AccountService struct {
	repo repository.IAccountRepository
}

func NewAccountService(repo repository.IAccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// OpenAccounts creates a zero-balance account for every name. It stops at the
// first name that cannot be created.
func (s *AccountService) OpenAccounts(names []string) error {
	if err := common.ValidateVar(names, "min=1,dive,required"); err != nil {
		return fmt.Errorf("invalid account names: %w", err)
	}

	for _, name := range names {
		if _, err := s.repo.CreateAccount(name); err != nil {
			return fmt.Errorf("could not open account %q: %w", name, err)
		}
	}

	logger.Log.WithField("count", len(names)).Info("Accounts opened")
	return nil
}

// Balance returns the balance of the named account.
func (s *AccountService) Balance(name string) (float64, error) {
	account, err := s.repo.GetAccountByName(name)
	if err != nil {
		return 0, err
	}
	return account.Balance(), nil
}

// Balances returns the balance of every account keyed by name.
func (s *AccountService) Balances() map[string]float64 {
	names := s.repo.ListAccountNames()
	balances := make(map[string]float64, len(names))
	for _, name := range names {
		// Accounts are never removed, so a listed name always resolves.
		if balance, err := s.Balance(name); err == nil {
			balances[name] = balance
		}
	}
	return balances
}
