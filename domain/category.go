package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCategoryID   = errors.New("category id is empty")
	ErrEmptyCategoryName = errors.New("category name is empty")
	ErrInvalidKind       = errors.New("kind must be income or expense")
)

// Category labels operations and fixes their kind: an operation always
// inherits the kind of its category. Kind is immutable after creation, edits
// only change the name.
type Category struct {
	ID   CategoryID `json:"id" yaml:"id"`
	Kind Kind       `json:"type" yaml:"type"`
	Name string     `json:"name" yaml:"name"`
}

func (c Category) Validate() error {
	if strings.TrimSpace(string(c.ID)) == "" {
		return ErrEmptyCategoryID
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCategoryName
	}
	if !c.Kind.Valid() {
		return ErrInvalidKind
	}
	return nil
}

func (c Category) IsIncome() bool  { return c.Kind == KindIncome }
func (c Category) IsExpense() bool { return c.Kind == KindExpense }

func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCategoryName
	}
	c.Name = name
	return nil
}
