package repo

import (
	"finledger/domain"
)

type AccountStore = Store[domain.AccountID, domain.BankAccount]
type CategoryStore = Store[domain.CategoryID, domain.Category]
type OperationStore = Store[domain.OperationID, domain.Operation]

func NewAccountStore() *AccountStore {
	return NewStore(func(a domain.BankAccount) domain.AccountID { return a.ID })
}

func NewCategoryStore() *CategoryStore {
	return NewStore(func(c domain.Category) domain.CategoryID { return c.ID })
}

func NewOperationStore() *OperationStore {
	return NewStore(func(o domain.Operation) domain.OperationID { return o.ID })
}
