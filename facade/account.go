package facade

import (
	"github.com/shopspring/decimal"

	"finledger/domain"
	"finledger/repo"
)

// AccountFacade owns CRUD on bank accounts. Cross-entity rules (the bootstrap
// deposit, cascades) live one level up in Ledger.
type AccountFacade struct {
	factory  domain.Factory
	accounts *repo.AccountStore
}

func NewAccountFacade(f domain.Factory, accounts *repo.AccountStore) *AccountFacade {
	return &AccountFacade{factory: f, accounts: accounts}
}

func (f *AccountFacade) Create(req domain.BankAccountRequest) (domain.BankAccount, error) {
	acc, err := f.factory.NewBankAccount(req)
	if err != nil {
		return domain.BankAccount{}, err
	}
	return f.accounts.Create(acc), nil
}

func (f *AccountFacade) GetByID(id domain.AccountID) (domain.BankAccount, error) {
	if !f.accounts.Exists(id) {
		return domain.BankAccount{}, accountNotFound(id)
	}
	return f.accounts.GetByID(id)
}

func (f *AccountFacade) Edit(req domain.EditBankAccountRequest) (bool, error) {
	if !f.accounts.Exists(req.BankAccount) {
		return false, accountNotFound(req.BankAccount)
	}
	var renameErr error
	ok := f.accounts.Update(req.BankAccount, func(a *domain.BankAccount) {
		renameErr = a.Rename(req.Name)
	})
	if renameErr != nil {
		return false, renameErr
	}
	return ok, nil
}

func (f *AccountFacade) Delete(id domain.AccountID) (bool, error) {
	if !f.accounts.Exists(id) {
		return false, accountNotFound(id)
	}
	return f.accounts.Delete(id), nil
}

func (f *AccountFacade) GetAll() []domain.BankAccount {
	return f.accounts.GetAll()
}

func (f *AccountFacade) Exists(id domain.AccountID) bool {
	return f.accounts.Exists(id)
}

// writeBalance refreshes the cached balance. Reserved for recalculation,
// hence unexported.
func (f *AccountFacade) writeBalance(id domain.AccountID, balance decimal.Decimal) bool {
	return f.accounts.Update(id, func(a *domain.BankAccount) {
		a.Balance = balance
	})
}
