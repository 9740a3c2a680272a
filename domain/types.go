package domain

type AccountID string
type CategoryID string
type OperationID string

// Kind encodes the direction of money flow. The numeric values double as the
// sign used when folding operations into a balance.
type Kind int

const (
	KindExpense Kind = -1
	KindIncome  Kind = 1
)

// Operations carry the same kind encoding as their category.
type OperationKind = Kind

func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

func (k Kind) String() string {
	switch k {
	case KindIncome:
		return "income"
	case KindExpense:
		return "expense"
	}
	return "unknown"
}

// InitialBalanceCategoryID is the well-known category that records the opening
// deposit of every account. It is created on demand with KindIncome so that
// recalculating a balance from operations reproduces the initial balance.
const InitialBalanceCategoryID CategoryID = "9f8b6a42-3c1d-4e7f-8a50-2b91c4d7e316"
