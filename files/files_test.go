package files

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"finledger/domain"
)

var formats = []string{".json", ".csv", ".yaml", ".yml"}

func sampleCategories() []domain.Category {
	return []domain.Category{
		{ID: "cat-income", Kind: domain.KindIncome, Name: "Salary"},
		{ID: "cat-expense", Kind: domain.KindExpense, Name: "Food & drink"},
	}
}

func sampleAccounts() []domain.BankAccount {
	return []domain.BankAccount{
		{ID: "acc-1", Name: "Main", Balance: decimal.RequireFromString("1234.56")},
		{ID: "acc-2", Name: "Savings, long term", Balance: decimal.Zero},
	}
}

func sampleOperations() []domain.Operation {
	date := time.Date(2026, time.January, 15, 10, 30, 0, 0, time.UTC)
	return []domain.Operation{
		{
			ID:          "op-1",
			Kind:        domain.KindIncome,
			BankAccount: "acc-1",
			Amount:      decimal.RequireFromString("100.50"),
			Date:        date,
			Description: "salary, январь",
			Category:    "cat-income",
		},
		{
			ID:          "op-2",
			Kind:        domain.KindExpense,
			BankAccount: "acc-1",
			Amount:      decimal.RequireFromString("30.25"),
			Date:        date.AddDate(0, 0, 1),
			Description: `quoted "stuff"`,
			Category:    "cat-expense",
		},
	}
}

func TestRoundTripCategories(t *testing.T) {
	want := sampleCategories()
	for _, ext := range formats {
		path := filepath.Join(t.TempDir(), "categories"+ext)

		exp, err := NewExporter(path)
		if err != nil {
			t.Fatalf("%s: %v", ext, err)
		}
		for _, c := range want {
			exp.VisitCategory(c)
		}
		if err := exp.SaveToFile(path); err != nil {
			t.Fatalf("%s: save: %v", ext, err)
		}

		imp, err := NewImporter[domain.CategoryRequest](path)
		if err != nil {
			t.Fatalf("%s: %v", ext, err)
		}
		got, err := imp.Import(path)
		if err != nil {
			t.Fatalf("%s: import: %v", ext, err)
		}
		if len(got) != len(want) {
			t.Fatalf("%s: expected %d records, got %d", ext, len(want), len(got))
		}
		for i, c := range want {
			if got[i].ID != c.ID || got[i].Kind != c.Kind || got[i].Name != c.Name {
				t.Fatalf("%s: record %d differs: %+v vs %+v", ext, i, got[i], c)
			}
		}
	}
}

func TestRoundTripAccounts(t *testing.T) {
	want := sampleAccounts()
	for _, ext := range formats {
		path := filepath.Join(t.TempDir(), "accounts"+ext)

		exp, err := NewExporter(path)
		if err != nil {
			t.Fatalf("%s: %v", ext, err)
		}
		for _, a := range want {
			exp.VisitBankAccount(a)
		}
		if err := exp.SaveToFile(path); err != nil {
			t.Fatalf("%s: save: %v", ext, err)
		}

		imp, err := NewImporter[domain.BankAccountRequest](path)
		if err != nil {
			t.Fatalf("%s: %v", ext, err)
		}
		got, err := imp.Import(path)
		if err != nil {
			t.Fatalf("%s: import: %v", ext, err)
		}
		if len(got) != len(want) {
			t.Fatalf("%s: expected %d records, got %d", ext, len(want), len(got))
		}
		for i, a := range want {
			if got[i].Name != a.Name || !got[i].Balance.Equal(a.Balance) {
				t.Fatalf("%s: record %d differs: %+v vs %+v", ext, i, got[i], a)
			}
		}
	}
}

func TestRoundTripOperations(t *testing.T) {
	want := sampleOperations()
	for _, ext := range formats {
		path := filepath.Join(t.TempDir(), "operations"+ext)

		exp, err := NewExporter(path)
		if err != nil {
			t.Fatalf("%s: %v", ext, err)
		}
		for _, o := range want {
			exp.VisitOperation(o)
		}
		if err := exp.SaveToFile(path); err != nil {
			t.Fatalf("%s: save: %v", ext, err)
		}

		imp, err := NewImporter[domain.OperationRequest](path)
		if err != nil {
			t.Fatalf("%s: %v", ext, err)
		}
		got, err := imp.Import(path)
		if err != nil {
			t.Fatalf("%s: import: %v", ext, err)
		}
		if len(got) != len(want) {
			t.Fatalf("%s: expected %d records, got %d", ext, len(want), len(got))
		}
		for i, o := range want {
			r := got[i]
			if r.Kind != o.Kind || r.BankAccount != o.BankAccount ||
				!r.Amount.Equal(o.Amount) || r.Description != o.Description ||
				r.Category != o.Category {
				t.Fatalf("%s: record %d differs: %+v vs %+v", ext, i, r, o)
			}
		}
	}
}

func TestMixedEntitiesKeepVisitOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixed.csv")
	exp, err := NewExporter(path)
	if err != nil {
		t.Fatal(err)
	}
	exp.VisitBankAccount(sampleAccounts()[0])
	exp.VisitCategory(sampleCategories()[0])
	exp.VisitOperation(sampleOperations()[0])
	if err := exp.SaveToFile(path); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if lines[0] != "Type,Data" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	for i, kind := range []string{"BankAccount", "Category", "Operation"} {
		if !strings.HasPrefix(lines[i+1], kind+",") {
			t.Fatalf("row %d: expected kind %s, got %q", i+1, kind, lines[i+1])
		}
	}
}

func TestUnsupportedExtension(t *testing.T) {
	if _, err := NewImporter[domain.CategoryRequest]("data.xml"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("importer: expected ErrUnsupportedFormat, got %v", err)
	} else if !strings.Contains(err.Error(), ".xml") {
		t.Fatalf("error must name the extension: %v", err)
	}
	if _, err := NewExporter("data.txt"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("exporter: expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestCSVImportRequiresDataColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.csv")
	content := "Foo,Bar\n" + `x,"{""name"":""Main""}"` + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	imp, err := NewImporter[domain.BankAccountRequest](path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := imp.Import(path); !errors.Is(err, ErrMissingDataColumn) {
		t.Fatalf("expected ErrMissingDataColumn, got %v", err)
	}
}

func TestCSVImportAcceptsLoneDataColumn(t *testing.T) {
	// hand-written files only need the Data column, no Type
	path := filepath.Join(t.TempDir(), "lone.csv")
	content := "Data\n" + `"{""name"":""Main"",""balance"":""10""}"` + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	imp, err := NewImporter[domain.BankAccountRequest](path)
	if err != nil {
		t.Fatal(err)
	}
	got, err := imp.Import(path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Main" || !got[0].Balance.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestYAMLRoundTripKeepsLargeAmounts(t *testing.T) {
	// more significant digits than float64 holds exactly; survives only if
	// amounts travel as strings end to end
	huge := decimal.RequireFromString("92233720368547758.07")
	path := filepath.Join(t.TempDir(), "big.yaml")

	exp, err := NewExporter(path)
	if err != nil {
		t.Fatal(err)
	}
	exp.VisitBankAccount(domain.BankAccount{ID: "acc-big", Name: "Vault", Balance: huge})
	if err := exp.SaveToFile(path); err != nil {
		t.Fatal(err)
	}

	imp, err := NewImporter[domain.BankAccountRequest](path)
	if err != nil {
		t.Fatal(err)
	}
	got, err := imp.Import(path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(got) != 1 || !got[0].Balance.Equal(huge) {
		t.Fatalf("amount corrupted in transit: %+v", got)
	}
}

func TestYAMLImportToleratesUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cats.yaml")
	content := `- id: cat-1
  type: 1
  name: Salary
  color: green
  priority: 3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	imp, err := NewImporter[domain.CategoryRequest](path)
	if err != nil {
		t.Fatal(err)
	}
	got, err := imp.Import(path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(got) != 1 || got[0].ID != "cat-1" || got[0].Kind != domain.KindIncome || got[0].Name != "Salary" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestJSONImportAcceptsCompactFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cats.json")
	content := `[{"id":"cat-1","type":-1,"name":"Food"}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	imp, err := NewImporter[domain.CategoryRequest](path)
	if err != nil {
		t.Fatal(err)
	}
	got, err := imp.Import(path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(got) != 1 || got[0].Kind != domain.KindExpense {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestImportMissingFile(t *testing.T) {
	imp, err := NewImporter[domain.CategoryRequest]("nope.json")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := imp.Import(filepath.Join(t.TempDir(), "nope.json")); !os.IsNotExist(err) {
		t.Fatalf("expected the raw os error, got %v", err)
	}
}
