package menu

import (
	"context"
	"fmt"
	"path/filepath"

	"finledger/domain"
	"finledger/state"
)

// Execute runs one menu action against the ledger.
func Execute(ctx context.Context, key string, d *Deps) error {
	switch key {
	case "create_account":
		name := readLine("Account name: ")
		balance, err := readAmount("Initial balance: ")
		if err != nil {
			return err
		}
		acc, err := d.Ledger.CreateBankAccount(domain.BankAccountRequest{Name: name, Balance: balance})
		if err != nil {
			return err
		}
		d.ActiveAccount = acc.ID
		if err := state.Save(d.Cfg.StatePath, acc.ID); err != nil {
			d.Log.WithError(err).Warn("could not persist session state")
		}
		fmt.Printf("Created account %s (%s)\n", acc.Name, acc.ID)
		return nil

	case "select_account":
		id, err := chooseAccount(d)
		if err != nil {
			return err
		}
		d.ActiveAccount = id
		if err := state.Save(d.Cfg.StatePath, id); err != nil {
			d.Log.WithError(err).Warn("could not persist session state")
		}
		fmt.Println("Active account:", id)
		return nil

	case "rename_account":
		id, err := chooseAccount(d)
		if err != nil {
			return err
		}
		_, err = d.Ledger.EditBankAccount(domain.EditBankAccountRequest{
			BankAccount: id,
			Name:        readLine("New name: "),
		})
		return err

	case "delete_account":
		id, err := chooseAccount(d)
		if err != nil {
			return err
		}
		_, err = d.Ledger.DeleteBankAccount(id)
		if d.ActiveAccount == id {
			d.ActiveAccount = ""
		}
		return err

	case "list_accounts":
		for _, a := range d.Ledger.GetAllBankAccounts() {
			fmt.Printf("%s | %s | %s\n", a.ID, a.Name, a.Balance.StringFixed(2))
		}
		return nil

	case "add_category":
		name := readLine("Category name: ")
		kind, err := readKind()
		if err != nil {
			return err
		}
		cat, err := d.Ledger.CreateCategory(domain.CategoryRequest{Name: name, Kind: kind})
		if err != nil {
			return err
		}
		fmt.Printf("Created category %s (%s)\n", cat.Name, cat.ID)
		return nil

	case "rename_category":
		id, err := chooseCategory(d)
		if err != nil {
			return err
		}
		_, err = d.Ledger.EditCategory(domain.EditCategoryRequest{
			Category: id,
			Name:     readLine("New name: "),
		})
		return err

	case "delete_category":
		id, err := chooseCategory(d)
		if err != nil {
			return err
		}
		_, err = d.Ledger.DeleteCategory(id)
		return err

	case "list_categories":
		for _, c := range d.Ledger.GetAllCategories() {
			fmt.Printf("%s | %s | %s\n", c.ID, c.Kind.String(), c.Name)
		}
		return nil

	case "add_operation":
		accID := d.ActiveAccount
		if accID == "" {
			id, err := chooseAccount(d)
			if err != nil {
				return err
			}
			accID = id
		}
		catID, err := chooseCategory(d)
		if err != nil {
			return err
		}
		amount, err := readAmount("Amount: ")
		if err != nil {
			return err
		}
		op, err := d.Ledger.CreateOperation(domain.OperationRequest{
			BankAccount: accID,
			Category:    catID,
			Amount:      amount,
			Description: readLine("Description: "),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created %s operation %s\n", op.Kind.String(), op.ID)
		return nil

	case "edit_operation":
		opID, err := chooseOperation(d)
		if err != nil {
			return err
		}
		catID, err := chooseCategory(d)
		if err != nil {
			return err
		}
		_, err = d.Ledger.EditOperation(domain.EditOperationRequest{Operation: opID, Category: catID})
		return err

	case "delete_operation":
		opID, err := chooseOperation(d)
		if err != nil {
			return err
		}
		d.Ledger.DeleteOperation(opID)
		return nil

	case "list_operations":
		for _, o := range d.Ledger.GetAllOperations() {
			fmt.Printf("%s | %s | %s | %s | %s\n",
				o.Date.Format("2006-01-02"), o.Kind.String(),
				o.Amount.StringFixed(2), o.Description, o.ID)
		}
		return nil

	case "recalc_balance":
		id := d.ActiveAccount
		if id == "" {
			chosen, err := chooseAccount(d)
			if err != nil {
				return err
			}
			id = chosen
		}
		balance, err := d.Ledger.RecalculateBalance(id)
		if err != nil {
			return err
		}
		fmt.Println("Balance:", balance.StringFixed(2))
		return nil

	case "balance_diff":
		from, to, err := readDateRange()
		if err != nil {
			return err
		}
		diff := d.Ledger.BalanceDifference(d.Ledger.Snapshot(), from, to)
		fmt.Println("Balance difference:", diff.StringFixed(2))
		return nil

	case "group_by_category":
		groups := d.Ledger.GroupByCategory(d.Ledger.Snapshot())
		for catID, ops := range groups {
			name := string(catID)
			if cat, err := d.Ledger.GetCategory(catID); err == nil {
				name = cat.Name
			}
			fmt.Printf("%s: %d operation(s)\n", name, len(ops))
		}
		return nil

	case "import_file":
		return runImport(d)

	case "export_file":
		return runExport(d)
	}
	return fmt.Errorf("unknown menu action %q", key)
}

func runImport(d *Deps) error {
	path := filepath.Join(d.Cfg.ImportDir, readLine("File name (in import dir): "))
	switch readLine("Import what? (1 accounts, 2 categories, 3 operations): ") {
	case "1":
		accs, err := d.Ledger.ImportBankAccountsFromFile(path)
		fmt.Printf("Imported %d account(s)\n", len(accs))
		return err
	case "2":
		cats, err := d.Ledger.ImportCategoriesFromFile(path)
		fmt.Printf("Imported %d categorie(s)\n", len(cats))
		return err
	case "3":
		ops, err := d.Ledger.ImportOperationsFromFile(path)
		fmt.Printf("Imported %d operation(s)\n", len(ops))
		return err
	}
	return fmt.Errorf("invalid choice")
}

func runExport(d *Deps) error {
	path := filepath.Join(d.Cfg.ExportDir, readLine("File name (in export dir): "))
	switch readLine("Export what? (1 accounts, 2 categories, 3 operations): ") {
	case "1":
		return d.Ledger.ExportBankAccountsToFile(path)
	case "2":
		return d.Ledger.ExportCategoriesToFile(path)
	case "3":
		return d.Ledger.ExportOperationsToFile(path)
	}
	return fmt.Errorf("invalid choice")
}
