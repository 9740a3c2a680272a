package files

import (
	"finledger/domain"
)

// ExportVisitor captures entities of the closed set {BankAccount, Category,
// Operation} into an ordered buffer, then serializes the buffer as a whole.
// One Visit method per concrete type; the entity set is fixed, so no
// open-ended dispatch.
type ExportVisitor interface {
	VisitBankAccount(a domain.BankAccount)
	VisitCategory(c domain.Category)
	VisitOperation(o domain.Operation)
	SaveToFile(path string) error
}

type record struct {
	kind  string
	value any
}

// aggregate is the shared buffer embedded by every concrete exporter.
type aggregate struct {
	records []record
}

func (g *aggregate) VisitBankAccount(a domain.BankAccount) {
	g.records = append(g.records, record{kind: "BankAccount", value: a})
}

func (g *aggregate) VisitCategory(c domain.Category) {
	g.records = append(g.records, record{kind: "Category", value: c})
}

func (g *aggregate) VisitOperation(o domain.Operation) {
	g.records = append(g.records, record{kind: "Operation", value: o})
}

func (g *aggregate) values() []any {
	out := make([]any, len(g.records))
	for i, r := range g.records {
		out[i] = r.value
	}
	return out
}
