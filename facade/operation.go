package facade

import (
	"finledger/domain"
	"finledger/repo"
)

type OperationFacade struct {
	factory    domain.Factory
	operations *repo.OperationStore
}

func NewOperationFacade(f domain.Factory, operations *repo.OperationStore) *OperationFacade {
	return &OperationFacade{factory: f, operations: operations}
}

// Create assumes the referential checks already happened in Ledger.
func (f *OperationFacade) Create(req domain.OperationRequest) (domain.Operation, error) {
	op, err := f.factory.NewOperation(req)
	if err != nil {
		return domain.Operation{}, err
	}
	return f.operations.Create(op), nil
}

func (f *OperationFacade) GetByID(id domain.OperationID) (domain.Operation, error) {
	if !f.operations.Exists(id) {
		return domain.Operation{}, operationNotFound(id)
	}
	return f.operations.GetByID(id)
}

// Edit reassigns the category; nothing else is mutable after creation.
func (f *OperationFacade) Edit(req domain.EditOperationRequest) bool {
	return f.operations.Update(req.Operation, func(o *domain.Operation) {
		o.Category = req.Category
	})
}

func (f *OperationFacade) Delete(id domain.OperationID) bool {
	return f.operations.Delete(id)
}

func (f *OperationFacade) GetAll() []domain.Operation {
	return f.operations.GetAll()
}

func (f *OperationFacade) GetByCondition(pred func(domain.Operation) bool) []domain.Operation {
	return f.operations.GetByCondition(pred)
}

func (f *OperationFacade) Exists(id domain.OperationID) bool {
	return f.operations.Exists(id)
}
