package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyOperationID = errors.New("operation id is empty")
	ErrEmptyAccountRef  = errors.New("operation has no bank account id")
	ErrEmptyCategoryRef = errors.New("operation has no category id")
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrZeroDate         = errors.New("operation date is zero")
)

// Operation is a single income or expense record. Amount is always >= 0, the
// direction lives in Kind.
type Operation struct {
	ID          OperationID     `json:"id" yaml:"id"`
	Kind        OperationKind   `json:"type" yaml:"type"`
	BankAccount AccountID       `json:"bank_account_id" yaml:"bank_account_id"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Date        time.Time       `json:"date" yaml:"date"`
	Description string          `json:"description" yaml:"description"`
	Category    CategoryID      `json:"category_id" yaml:"category_id"`
}

func (o Operation) Validate() error {
	if strings.TrimSpace(string(o.ID)) == "" {
		return ErrEmptyOperationID
	}
	if !o.Kind.Valid() {
		return ErrInvalidKind
	}
	if strings.TrimSpace(string(o.BankAccount)) == "" {
		return ErrEmptyAccountRef
	}
	if strings.TrimSpace(string(o.Category)) == "" {
		return ErrEmptyCategoryRef
	}
	if o.Date.IsZero() {
		return ErrZeroDate
	}
	if o.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

func (o Operation) IsIncome() bool  { return o.Kind == KindIncome }
func (o Operation) IsExpense() bool { return o.Kind == KindExpense }

// Signed returns the amount with the kind applied as its sign.
func (o Operation) Signed() decimal.Decimal {
	if o.IsExpense() {
		return o.Amount.Neg()
	}
	return o.Amount
}
