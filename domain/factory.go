package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Factory builds entity values from requests with centralized validation.
// It never touches a store.
type Factory struct{}

func (Factory) NewBankAccount(req BankAccountRequest) (BankAccount, error) {
	if req.Balance.IsNegative() {
		return BankAccount{}, ErrNegativeInitialBalance
	}
	a := BankAccount{
		ID:      AccountID(uuid.NewString()),
		Name:    strings.TrimSpace(req.Name),
		Balance: req.Balance.Round(2),
	}
	return a, a.Validate()
}

func (Factory) NewCategory(req CategoryRequest) (Category, error) {
	id := req.ID
	if id == "" {
		id = CategoryID(uuid.NewString())
	}
	c := Category{
		ID:   id,
		Kind: req.Kind,
		Name: strings.TrimSpace(req.Name),
	}
	return c, c.Validate()
}

func (Factory) NewOperation(req OperationRequest) (Operation, error) {
	if req.Amount.IsNegative() {
		return Operation{}, ErrNegativeAmount
	}
	op := Operation{
		ID:          OperationID(uuid.NewString()),
		Kind:        req.Kind,
		BankAccount: req.BankAccount,
		Amount:      req.Amount.Round(2),
		Date:        time.Now(),
		Description: strings.TrimSpace(req.Description),
		Category:    req.Category,
	}
	return op, op.Validate()
}
