package service

import (
	"time"

	"github.com/shopspring/decimal"

	"finledger/domain"
)

// Analytics works on a caller-supplied snapshot of operations, never on live
// store state.
type Analytics interface {
	BalanceDifference(ops []domain.Operation, start, end time.Time) decimal.Decimal
	GroupByCategory(ops []domain.Operation) map[domain.CategoryID][]domain.Operation
}

type AnalyticsService struct{}

func NewAnalyticsService() AnalyticsService { return AnalyticsService{} }

// BalanceDifference is income minus expense over [start, end], both bounds
// inclusive. Zero when nothing falls into the window.
func (AnalyticsService) BalanceDifference(ops []domain.Operation, start, end time.Time) decimal.Decimal {
	diff := decimal.Zero
	for _, op := range ops {
		if op.Date.Before(start) || op.Date.After(end) {
			continue
		}
		diff = diff.Add(op.Signed())
	}
	return diff
}

// GroupByCategory partitions operations by category id. Within a group the
// snapshot order is preserved; a key exists only if at least one operation
// maps to it.
func (AnalyticsService) GroupByCategory(ops []domain.Operation) map[domain.CategoryID][]domain.Operation {
	groups := make(map[domain.CategoryID][]domain.Operation)
	for _, op := range ops {
		groups[op.Category] = append(groups[op.Category], op)
	}
	return groups
}
