package repository

import (
	"errors"
	"go-bank-account/logger"
	"go-bank-account/model"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	ErrAccountExists   = errors.New("account already exists")
	ErrAccountNotFound = errors.New("account not found")
)

// IAccountRepository defines the contract for looking up accounts by name.
type IAccountRepository interface {
	CreateAccount(name string) (*model.Account, error)
	GetAccountByName(name string) (*model.Account, error)
	ListAccountNames() []string
}

// AccountRepository keeps named accounts in memory. It holds no balances of its
// own; every *model.Account it returns is the live account.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*model.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]*model.Account)}
}

// CreateAccount opens a new zero-balance account under name.
func (r *AccountRepository) CreateAccount(name string) (*model.Account, error) {
	log := logger.Log.WithField("account", name)
	log.Debug("Creating account")

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[name]; ok {
		log.Warn("Account already exists")
		return nil, ErrAccountExists
	}

	account := model.NewAccount()
	r.accounts[name] = account
	log.Info("Account created")
	return account, nil
}

// GetAccountByName returns the account registered under name.
func (r *AccountRepository) GetAccountByName(name string) (*model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[name]
	if !ok {
		logger.Log.WithField("account", name).Debug("Account not found")
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// ListAccountNames returns all account names in sorted order.
func (r *AccountRepository) ListAccountNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.accounts))
	for name := range r.accounts {
		names = append(names, name)
	}
	sort.Strings(names)

	logger.Log.WithFields(logrus.Fields{"count": len(names)}).Debug("Listed accounts")
	return names
}
