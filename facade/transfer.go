package facade

import (
	"finledger/domain"
	"finledger/files"
)

// Import entry points. Every imported record goes through the regular create
// path, so validation and referential checks apply to file content exactly as
// they do to interactive input. An error mid-file leaves the records created
// so far committed; the partial result is returned alongside the error.

func (l *Ledger) ImportBankAccountsFromFile(path string) ([]domain.BankAccount, error) {
	imp, err := files.NewImporter[domain.BankAccountRequest](path)
	if err != nil {
		return nil, err
	}
	reqs, err := imp.Import(path)
	if err != nil {
		return nil, err
	}
	out := make([]domain.BankAccount, 0, len(reqs))
	for _, req := range reqs {
		acc, err := l.CreateBankAccount(req)
		if err != nil {
			return out, err
		}
		out = append(out, acc)
	}
	return out, nil
}

func (l *Ledger) ImportCategoriesFromFile(path string) ([]domain.Category, error) {
	imp, err := files.NewImporter[domain.CategoryRequest](path)
	if err != nil {
		return nil, err
	}
	reqs, err := imp.Import(path)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Category, 0, len(reqs))
	for _, req := range reqs {
		cat, err := l.CreateCategory(req)
		if err != nil {
			return out, err
		}
		out = append(out, cat)
	}
	return out, nil
}

func (l *Ledger) ImportOperationsFromFile(path string) ([]domain.Operation, error) {
	imp, err := files.NewImporter[domain.OperationRequest](path)
	if err != nil {
		return nil, err
	}
	reqs, err := imp.Import(path)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Operation, 0, len(reqs))
	for _, req := range reqs {
		op, err := l.CreateOperation(req)
		if err != nil {
			return out, err
		}
		out = append(out, op)
	}
	return out, nil
}

// Export entry points: pick the exporter by extension, feed it every entity
// of the requested type, let it write the file.

func (l *Ledger) ExportBankAccountsToFile(path string) error {
	exp, err := files.NewExporter(path)
	if err != nil {
		return err
	}
	for _, a := range l.accounts.GetAll() {
		exp.VisitBankAccount(a)
	}
	return l.saveExport(exp, path, "bank accounts")
}

func (l *Ledger) ExportCategoriesToFile(path string) error {
	exp, err := files.NewExporter(path)
	if err != nil {
		return err
	}
	for _, c := range l.categories.GetAll() {
		exp.VisitCategory(c)
	}
	return l.saveExport(exp, path, "categories")
}

func (l *Ledger) ExportOperationsToFile(path string) error {
	exp, err := files.NewExporter(path)
	if err != nil {
		return err
	}
	for _, o := range l.operations.GetAll() {
		exp.VisitOperation(o)
	}
	return l.saveExport(exp, path, "operations")
}

func (l *Ledger) saveExport(exp files.ExportVisitor, path, what string) error {
	if err := exp.SaveToFile(path); err != nil {
		return err
	}
	l.log.WithField("path", path).Infof("exported %s", what)
	return nil
}
