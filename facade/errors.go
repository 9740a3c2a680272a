package facade

import (
	"errors"
	"fmt"
)

// ErrMissingReference is the common class for every integrity failure: an
// operation pointing at an entity that does not exist, or a get/edit/delete on
// an absent id. Match with errors.Is against either the class or the
// per-entity sentinel.
var (
	ErrMissingReference = errors.New("referenced entity does not exist")

	ErrAccountNotFound   = fmt.Errorf("bank account: %w", ErrMissingReference)
	ErrCategoryNotFound  = fmt.Errorf("category: %w", ErrMissingReference)
	ErrOperationNotFound = fmt.Errorf("operation: %w", ErrMissingReference)
)

func accountNotFound(id any) error   { return fmt.Errorf("%w: id %v", ErrAccountNotFound, id) }
func categoryNotFound(id any) error  { return fmt.Errorf("%w: id %v", ErrCategoryNotFound, id) }
func operationNotFound(id any) error { return fmt.Errorf("%w: id %v", ErrOperationNotFound, id) }
