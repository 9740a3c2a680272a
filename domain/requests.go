package domain

import (
	"github.com/shopspring/decimal"
)

// Creation requests. Field layout here is the wire format of the import and
// export files, so tags are shared between JSON and YAML.

type BankAccountRequest struct {
	Name    string          `json:"name" yaml:"name"`
	Balance decimal.Decimal `json:"balance" yaml:"balance"`
}

// CategoryRequest may carry an explicit ID; the factory reuses it, which is
// how well-known categories keep deterministic ids.
type CategoryRequest struct {
	ID   CategoryID `json:"id,omitempty" yaml:"id,omitempty"`
	Kind Kind       `json:"type" yaml:"type"`
	Name string     `json:"name" yaml:"name"`
}

// OperationRequest carries a Kind, but creation through the ledger always
// replaces it with the kind of the referenced category. The field only
// matters for files produced by third parties; it is never trusted.
type OperationRequest struct {
	Kind        OperationKind   `json:"type" yaml:"type"`
	BankAccount AccountID       `json:"bank_account_id" yaml:"bank_account_id"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Description string          `json:"description" yaml:"description"`
	Category    CategoryID      `json:"category_id" yaml:"category_id"`
}

// Edit requests. Only the listed fields are mutable after creation.

type EditBankAccountRequest struct {
	BankAccount AccountID
	Name        string
}

type EditCategoryRequest struct {
	Category CategoryID
	Name     string
}

type EditOperationRequest struct {
	Operation OperationID
	Category  CategoryID
}

// FinancialData is a point-in-time snapshot handed to analytics, decoupled
// from live store state.
type FinancialData struct {
	BankAccounts []BankAccount
	Categories   []Category
	Operations   []Operation
}
