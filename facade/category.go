package facade

import (
	"finledger/domain"
	"finledger/repo"
)

type CategoryFacade struct {
	factory    domain.Factory
	categories *repo.CategoryStore
}

func NewCategoryFacade(f domain.Factory, categories *repo.CategoryStore) *CategoryFacade {
	return &CategoryFacade{factory: f, categories: categories}
}

func (f *CategoryFacade) Create(req domain.CategoryRequest) (domain.Category, error) {
	cat, err := f.factory.NewCategory(req)
	if err != nil {
		return domain.Category{}, err
	}
	return f.categories.Create(cat), nil
}

func (f *CategoryFacade) GetByID(id domain.CategoryID) (domain.Category, error) {
	if !f.categories.Exists(id) {
		return domain.Category{}, categoryNotFound(id)
	}
	return f.categories.GetByID(id)
}

// Edit renames only. Kind is immutable after creation.
func (f *CategoryFacade) Edit(req domain.EditCategoryRequest) (bool, error) {
	if !f.categories.Exists(req.Category) {
		return false, categoryNotFound(req.Category)
	}
	var renameErr error
	ok := f.categories.Update(req.Category, func(c *domain.Category) {
		renameErr = c.Rename(req.Name)
	})
	if renameErr != nil {
		return false, renameErr
	}
	return ok, nil
}

func (f *CategoryFacade) Delete(id domain.CategoryID) (bool, error) {
	if !f.categories.Exists(id) {
		return false, categoryNotFound(id)
	}
	return f.categories.Delete(id), nil
}

func (f *CategoryFacade) GetAll() []domain.Category {
	return f.categories.GetAll()
}

func (f *CategoryFacade) Exists(id domain.CategoryID) bool {
	return f.categories.Exists(id)
}
