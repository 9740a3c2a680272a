package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyAccountID         = errors.New("account id is empty")
	ErrEmptyAccountName       = errors.New("account name is empty")
	ErrNegativeInitialBalance = errors.New("initial balance must be >= 0")
)

// BankAccount is a named money holder. Balance is a derived cache: it is
// written by the factory at creation time and afterwards only by balance
// recalculation, never by individual ledger writes.
type BankAccount struct {
	ID      AccountID       `json:"id" yaml:"id"`
	Name    string          `json:"name" yaml:"name"`
	Balance decimal.Decimal `json:"balance" yaml:"balance"`
}

func (a BankAccount) Validate() error {
	if strings.TrimSpace(string(a.ID)) == "" {
		return ErrEmptyAccountID
	}
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyAccountName
	}
	if a.Balance.IsNegative() {
		return ErrNegativeInitialBalance
	}
	return nil
}

func (a *BankAccount) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyAccountName
	}
	a.Name = name
	return nil
}
