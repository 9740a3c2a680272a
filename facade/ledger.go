package facade

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"finledger/domain"
	"finledger/service"
)

// Ledger is the single entry point for external callers. It enforces the
// rules that relate the three entity types: an operation may only reference
// existing entities, its kind always comes from its category, deleting an
// account or category removes the operations hanging off it, and the cached
// account balance is written by recalculation only.
type Ledger struct {
	accounts   *AccountFacade
	categories *CategoryFacade
	operations *OperationFacade
	analytics  service.Analytics
	log        *logrus.Logger
}

func NewLedger(
	accounts *AccountFacade,
	categories *CategoryFacade,
	operations *OperationFacade,
	analytics service.Analytics,
	log *logrus.Logger,
) *Ledger {
	return &Ledger{
		accounts:   accounts,
		categories: categories,
		operations: operations,
		analytics:  analytics,
		log:        log,
	}
}

// CreateOperation checks both references, then derives the operation kind
// from the category. Whatever kind the request carries is discarded.
func (l *Ledger) CreateOperation(req domain.OperationRequest) (domain.Operation, error) {
	if !l.accounts.Exists(req.BankAccount) {
		return domain.Operation{}, accountNotFound(req.BankAccount)
	}
	cat, err := l.categories.GetByID(req.Category)
	if err != nil {
		return domain.Operation{}, err
	}
	req.Kind = cat.Kind
	op, err := l.operations.Create(req)
	if err != nil {
		return domain.Operation{}, err
	}
	l.log.WithFields(logrus.Fields{
		"operation": op.ID,
		"account":   op.BankAccount,
		"kind":      op.Kind.String(),
		"amount":    op.Amount.StringFixed(2),
	}).Info("operation created")
	return op, nil
}

func (l *Ledger) EditOperation(req domain.EditOperationRequest) (bool, error) {
	if !l.categories.Exists(req.Category) {
		return false, categoryNotFound(req.Category)
	}
	return l.operations.Edit(req), nil
}

func (l *Ledger) DeleteOperation(id domain.OperationID) bool {
	return l.operations.Delete(id)
}

func (l *Ledger) GetOperation(id domain.OperationID) (domain.Operation, error) {
	return l.operations.GetByID(id)
}

// CreateBankAccount creates the account, makes sure the well-known
// initial-balance category exists and books the opening deposit as an income
// operation, so a later recalculation reproduces the initial balance. The
// returned account still carries the balance the factory stamped; callers
// that want the cache in sync call RecalculateBalance.
func (l *Ledger) CreateBankAccount(req domain.BankAccountRequest) (domain.BankAccount, error) {
	acc, err := l.accounts.Create(req)
	if err != nil {
		return domain.BankAccount{}, err
	}
	if !l.categories.Exists(domain.InitialBalanceCategoryID) {
		if _, err := l.categories.Create(domain.CategoryRequest{
			ID:   domain.InitialBalanceCategoryID,
			Kind: domain.KindIncome,
			Name: "Initial balance",
		}); err != nil {
			return domain.BankAccount{}, err
		}
	}
	if _, err := l.operations.Create(domain.OperationRequest{
		Kind:        domain.KindIncome,
		BankAccount: acc.ID,
		Amount:      acc.Balance,
		Description: "initial balance",
		Category:    domain.InitialBalanceCategoryID,
	}); err != nil {
		return domain.BankAccount{}, err
	}
	l.log.WithFields(logrus.Fields{
		"account": acc.ID,
		"name":    acc.Name,
		"balance": acc.Balance.StringFixed(2),
	}).Info("bank account created")
	return acc, nil
}

func (l *Ledger) EditBankAccount(req domain.EditBankAccountRequest) (bool, error) {
	return l.accounts.Edit(req)
}

// DeleteBankAccount removes the account first, then its operations. The
// cascade is best-effort: dependents exist by construction, their deletion
// is not separately reported.
func (l *Ledger) DeleteBankAccount(id domain.AccountID) (bool, error) {
	ok, err := l.accounts.Delete(id)
	if err != nil {
		return false, err
	}
	removed := 0
	for _, op := range l.operations.GetByCondition(func(o domain.Operation) bool {
		return o.BankAccount == id
	}) {
		if l.operations.Delete(op.ID) {
			removed++
		}
	}
	l.log.WithFields(logrus.Fields{"account": id, "operations_removed": removed}).
		Info("bank account deleted")
	return ok, nil
}

func (l *Ledger) GetBankAccount(id domain.AccountID) (domain.BankAccount, error) {
	return l.accounts.GetByID(id)
}

func (l *Ledger) CreateCategory(req domain.CategoryRequest) (domain.Category, error) {
	cat, err := l.categories.Create(req)
	if err != nil {
		return domain.Category{}, err
	}
	l.log.WithFields(logrus.Fields{
		"category": cat.ID,
		"name":     cat.Name,
		"kind":     cat.Kind.String(),
	}).Info("category created")
	return cat, nil
}

func (l *Ledger) EditCategory(req domain.EditCategoryRequest) (bool, error) {
	return l.categories.Edit(req)
}

// DeleteCategory cascades to every operation labeled with the category.
func (l *Ledger) DeleteCategory(id domain.CategoryID) (bool, error) {
	ok, err := l.categories.Delete(id)
	if err != nil {
		return false, err
	}
	removed := 0
	for _, op := range l.operations.GetByCondition(func(o domain.Operation) bool {
		return o.Category == id
	}) {
		if l.operations.Delete(op.ID) {
			removed++
		}
	}
	l.log.WithFields(logrus.Fields{"category": id, "operations_removed": removed}).
		Info("category deleted")
	return ok, nil
}

func (l *Ledger) GetCategory(id domain.CategoryID) (domain.Category, error) {
	return l.categories.GetByID(id)
}

// RecalculateBalance folds the signed amounts of every operation on the
// account and writes the result into the cached balance. This is the only
// path that mutates BankAccount.Balance.
func (l *Ledger) RecalculateBalance(id domain.AccountID) (decimal.Decimal, error) {
	if !l.accounts.Exists(id) {
		return decimal.Zero, accountNotFound(id)
	}
	balance := decimal.Zero
	for _, op := range l.operations.GetByCondition(func(o domain.Operation) bool {
		return o.BankAccount == id
	}) {
		balance = balance.Add(op.Signed())
	}
	l.accounts.writeBalance(id, balance)
	l.log.WithFields(logrus.Fields{
		"account": id,
		"balance": balance.StringFixed(2),
	}).Info("balance recalculated")
	return balance, nil
}

func (l *Ledger) GetAllOperations() []domain.Operation { return l.operations.GetAll() }
func (l *Ledger) GetAllBankAccounts() []domain.BankAccount { return l.accounts.GetAll() }
func (l *Ledger) GetAllCategories() []domain.Category { return l.categories.GetAll() }

// Snapshot assembles the point-in-time view analytics functions work on.
func (l *Ledger) Snapshot() domain.FinancialData {
	return domain.FinancialData{
		BankAccounts: l.accounts.GetAll(),
		Categories:   l.categories.GetAll(),
		Operations:   l.operations.GetAll(),
	}
}

func (l *Ledger) BalanceDifference(data domain.FinancialData, start, end time.Time) decimal.Decimal {
	return l.analytics.BalanceDifference(data.Operations, start, end)
}

func (l *Ledger) GroupByCategory(data domain.FinancialData) map[domain.CategoryID][]domain.Operation {
	return l.analytics.GroupByCategory(data.Operations)
}
