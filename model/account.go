// file: model/account.go

package model

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// ErrInvalidArgument is returned for malformed input: a negative or non-finite
// amount, or a missing transfer destination. Insufficient funds is not an error.
var ErrInvalidArgument = errors.New("invalid argument")

// Account holds a non-negative balance. The zero value is not usable; create
// accounts with NewAccount.
//
// Each operation locks the account on its own. Transfer is a withdraw followed
// by a deposit and is not atomic across both accounts.
type Account struct {
	mu      sync.Mutex
	balance float64
}

// NewAccount returns an account with a zero balance.
func NewAccount() *Account {
	return &Account{}
}

// Balance returns the current balance.
func (a *Account) Balance() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Deposit adds amount to the balance.
func (a *Account) Deposit(amount float64) error {
	if err := checkAmount("deposit", amount); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance += amount
	return nil
}

// Withdraw subtracts amount if the balance covers it. It reports false, with a
// nil error, when funds are insufficient.
func (a *Account) Withdraw(amount float64) (bool, error) {
	if err := checkAmount("withdraw", amount); err != nil {
		return false, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.balance < amount {
		return false, nil
	}
	a.balance -= amount
	return true, nil
}

// Transfer withdraws amount from a and deposits it into dest. Nothing changes
// on either account when the withdrawal is rejected. Transferring to the same
// account is allowed and leaves the balance as it was.
func (a *Account) Transfer(dest *Account, amount float64) (bool, error) {
	if dest == nil {
		return false, fmt.Errorf("%w: transfer destination must not be nil", ErrInvalidArgument)
	}
	if err := checkAmount("transfer", amount); err != nil {
		return false, err
	}

	ok, err := a.Withdraw(amount)
	if err != nil || !ok {
		return false, err
	}
	if err := dest.Deposit(amount); err != nil {
		return false, err
	}
	return true, nil
}

func checkAmount(op string, amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("%w: %s amount must be a finite number", ErrInvalidArgument, op)
	}
	if amount < 0 {
		return fmt.Errorf("%w: %s amount must not be negative", ErrInvalidArgument, op)
	}
	return nil
}
