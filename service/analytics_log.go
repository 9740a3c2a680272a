package service

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"finledger/domain"
)

// LoggedAnalytics wraps an Analytics implementation and reports how long each
// call took.
type LoggedAnalytics struct {
	inner Analytics
	log   *logrus.Logger
}

func NewLoggedAnalytics(inner Analytics, log *logrus.Logger) LoggedAnalytics {
	return LoggedAnalytics{inner: inner, log: log}
}

func (a LoggedAnalytics) BalanceDifference(ops []domain.Operation, start, end time.Time) decimal.Decimal {
	began := time.Now()
	result := a.inner.BalanceDifference(ops, start, end)
	a.log.WithFields(logrus.Fields{
		"method":     "BalanceDifference",
		"operations": len(ops),
		"duration":   time.Since(began).String(),
	}).Debug("analytics call finished")
	return result
}

func (a LoggedAnalytics) GroupByCategory(ops []domain.Operation) map[domain.CategoryID][]domain.Operation {
	began := time.Now()
	result := a.inner.GroupByCategory(ops)
	a.log.WithFields(logrus.Fields{
		"method":     "GroupByCategory",
		"operations": len(ops),
		"groups":     len(result),
		"duration":   time.Since(began).String(),
	}).Debug("analytics call finished")
	return result
}
