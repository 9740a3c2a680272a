package menu

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"finledger/domain"
)

var stdin = bufio.NewReader(os.Stdin)

func readLine(prompt string) string {
	fmt.Print(prompt)
	s, _ := stdin.ReadString('\n')
	return strings.TrimSpace(s)
}

func ReadIndex(count int) (int, error) {
	s := readLine(fmt.Sprintf("Choice (1..%d): ", count))
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > count {
		return 0, fmt.Errorf("invalid choice")
	}
	return n, nil
}

func WaitEnter() {
	fmt.Print("\nPress Enter to continue...")
	_, _ = stdin.ReadString('\n')
}

func readAmount(prompt string) (decimal.Decimal, error) {
	raw := strings.ReplaceAll(readLine(prompt), ",", ".")
	amt, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", raw)
	}
	return amt, nil
}

func readDateRange() (time.Time, time.Time, error) {
	const layout = "2006-01-02"
	from, err := time.Parse(layout, readLine("From (YYYY-MM-DD): "))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.Parse(layout, readLine("To (YYYY-MM-DD): "))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	// make the upper bound inclusive for the whole day
	return from, to.Add(24*time.Hour - time.Nanosecond), nil
}

func readKind() (domain.Kind, error) {
	switch readLine("Kind (1 = income, 2 = expense): ") {
	case "1":
		return domain.KindIncome, nil
	case "2":
		return domain.KindExpense, nil
	}
	return 0, fmt.Errorf("invalid kind")
}

func chooseAccount(d *Deps) (domain.AccountID, error) {
	accs := d.Ledger.GetAllBankAccounts()
	if len(accs) == 0 {
		return "", fmt.Errorf("no accounts yet")
	}
	fmt.Println("=== Accounts ===")
	for i, a := range accs {
		fmt.Printf("%d) %s | %s | %s\n", i+1, a.ID, a.Name, a.Balance.StringFixed(2))
	}
	n, err := ReadIndex(len(accs))
	if err != nil {
		return "", err
	}
	return accs[n-1].ID, nil
}

func chooseCategory(d *Deps) (domain.CategoryID, error) {
	cats := d.Ledger.GetAllCategories()
	if len(cats) == 0 {
		return "", fmt.Errorf("no categories yet")
	}
	fmt.Println("=== Categories ===")
	for i, c := range cats {
		fmt.Printf("%d) %s | %s | %s\n", i+1, c.ID, c.Kind.String(), c.Name)
	}
	n, err := ReadIndex(len(cats))
	if err != nil {
		return "", err
	}
	return cats[n-1].ID, nil
}

func chooseOperation(d *Deps) (domain.OperationID, error) {
	ops := d.Ledger.GetAllOperations()
	if len(ops) == 0 {
		return "", fmt.Errorf("no operations yet")
	}
	fmt.Println("=== Operations ===")
	for i, o := range ops {
		fmt.Printf("%d) %s | %s | %s | %s | %s\n",
			i+1, o.ID, o.Date.Format("2006-01-02"), o.Kind.String(),
			o.Amount.StringFixed(2), o.Description)
	}
	n, err := ReadIndex(len(ops))
	if err != nil {
		return "", err
	}
	return ops[n-1].ID, nil
}
