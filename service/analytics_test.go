package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"finledger/domain"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 12, 0, 0, 0, time.UTC)
}

func op(id string, kind domain.Kind, amount int64, date time.Time, cat domain.CategoryID) domain.Operation {
	return domain.Operation{
		ID:          domain.OperationID(id),
		Kind:        kind,
		BankAccount: "acc",
		Amount:      decimal.NewFromInt(amount),
		Date:        date,
		Category:    cat,
	}
}

func TestBalanceDifference(t *testing.T) {
	a := NewAnalyticsService()

	ops := []domain.Operation{
		op("1", domain.KindIncome, 100, day(1), "c1"),
		op("2", domain.KindExpense, 30, day(2), "c1"),
		op("3", domain.KindIncome, 50, day(10), "c2"),
	}

	cases := []struct {
		name       string
		start, end time.Time
		want       int64
	}{
		{"whole range", day(1), day(10), 120},
		{"first two only", day(1), day(2), 70},
		{"bounds are inclusive", day(2), day(2), -30},
		{"nothing in window", day(20), day(25), 0},
		{"inverted window", day(10), day(1), 0},
	}
	for _, tc := range cases {
		got := a.BalanceDifference(ops, tc.start, tc.end)
		if !got.Equal(decimal.NewFromInt(tc.want)) {
			t.Fatalf("%s: expected %d, got %s", tc.name, tc.want, got)
		}
	}

	if got := a.BalanceDifference(nil, day(1), day(10)); !got.IsZero() {
		t.Fatalf("empty snapshot: expected 0, got %s", got)
	}
}

func TestGroupByCategory(t *testing.T) {
	a := NewAnalyticsService()

	if got := a.GroupByCategory(nil); len(got) != 0 {
		t.Fatalf("empty snapshot must yield an empty mapping, got %d keys", len(got))
	}

	ops := []domain.Operation{
		op("1", domain.KindExpense, 5, day(1), "food"),
		op("2", domain.KindExpense, 7, day(2), "rent"),
		op("3", domain.KindExpense, 9, day(3), "food"),
	}
	groups := a.GroupByCategory(ops)

	if len(groups) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(groups))
	}
	if len(groups["food"]) != 2 || len(groups["rent"]) != 1 {
		t.Fatalf("unexpected group sizes: food=%d rent=%d", len(groups["food"]), len(groups["rent"]))
	}
	// relative order within a group follows the snapshot
	if groups["food"][0].ID != "1" || groups["food"][1].ID != "3" {
		t.Fatalf("group order not preserved: %+v", groups["food"])
	}
}
